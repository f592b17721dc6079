package game

// PileID identifies one of the thirteen piles on the table
type PileID int

// NotFound is returned by IndexOf when a card is not in the pile
const NotFound = -1

const (
	StockPile PileID = iota
	WastePile
	firstFoundation
	firstTableau = firstFoundation + numFoundations
)

const (
	numFoundations = 4
	numTableaus    = 7
	numPiles       = 2 + numFoundations + numTableaus
	numCards       = 52
)

// FoundationPile returns the id of foundation i (0..3)
func FoundationPile(i int) PileID {
	return firstFoundation + PileID(i)
}

// TableauPile returns the id of tableau i (0..6)
func TableauPile(i int) PileID {
	return firstTableau + PileID(i)
}

type PileKind int

const (
	Stock PileKind = iota
	Waste
	Foundation
	Tableau
)

var pileKindNames = []string{"stock", "waste", "foundation", "tableau"}

func (k PileKind) String() string {
	if k < Stock || k > Tableau {
		return "unknown"
	}
	return pileKindNames[k]
}

// FanMode is a presentation hint
type FanMode int

const (
	SingleVisible FanMode = iota
	FanAll
)

func (f FanMode) String() string {
	if f == FanAll {
		return "fan_all"
	}
	return "single_visible"
}

// Pile is an ordered stack of cards, bottom first
type Pile struct {
	ID    PileID
	Kind  PileKind
	Fan   FanMode
	cards []CardID
}

func (p *Pile) Len() int {
	return len(p.cards)
}

func (p *Pile) Empty() bool {
	return len(p.cards) == 0
}

// Top returns the last card of the pile, if any
func (p *Pile) Top() (CardID, bool) {
	if len(p.cards) == 0 {
		return 0, false
	}
	return p.cards[len(p.cards)-1], true
}

// IndexOf returns the position of the card in the pile, or NotFound
func (p *Pile) IndexOf(id CardID) int {
	for i, c := range p.cards {
		if c == id {
			return i
		}
	}
	return NotFound
}

// Cards returns a copy of the pile's card ids, bottom first
func (p *Pile) Cards() []CardID {
	out := make([]CardID, len(p.cards))
	copy(out, p.cards)
	return out
}

func (p *Pile) push(ids ...CardID) {
	p.cards = append(p.cards, ids...)
}

func (p *Pile) pop() CardID {
	last := len(p.cards) - 1
	id := p.cards[last]
	p.cards = p.cards[:last]
	return id
}
