package deck

import (
	"math/rand"
	"time"
)

// Deck represents a deck of cards. The top of the deck is the end of the slice.
type Deck []Card

// New creates a deck of 52 cards, one per rank and suit
func New() Deck {
	cards := make(Deck, 0, len(Suits)*int(King))
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}

// Shuffle shuffles the deck in place with an unbiased Fisher-Yates pass.
// A nil source falls back to one seeded from the clock.
func (d Deck) Shuffle(r *rand.Rand) {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for i := len(d) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}
