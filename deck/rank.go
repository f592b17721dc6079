package deck

// Rank represents a rank in a deck of cards, from Ace (1) to King (13)
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

var rankLabels = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Valid reports whether the rank is between Ace and King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rankNames[r-1]
}

// Label is the short symbol printed on the card face
func (r Rank) Label() string {
	if !r.Valid() {
		return "?"
	}
	return rankLabels[r-1]
}

// Suit represents a suit in a deck of cards
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

var suitSymbols = []string{"♣", "♦", "♥", "♠"}

// Suits lists every suit in a standard deck
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Valid reports whether the suit is one of the four standard suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

func (s Suit) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return suitNames[s]
}

// Symbol returns the suit glyph
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// Colour is the colour of a suit
type Colour int

const (
	Black Colour = iota
	Red
)

func (c Colour) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Colour returns red for hearts and diamonds, black for spades and clubs
func (s Suit) Colour() Colour {
	switch s {
	case Hearts, Diamonds:
		return Red
	default:
		return Black
	}
}
