package deck

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("arguments out of range")

// Card is a rank and a suit.
// It carries no game state; games wrap it with their own flags.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return Card{}, ErrOutOfRange
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// MustCard is NewCard for values known to be in range
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(fmt.Sprintf("deck: %d of %d: %v", rank, suit, err))
	}
	return c
}

// Colour returns the colour of the card's suit
func (c Card) Colour() Colour {
	return c.Suit.Colour()
}

// Label is the short form, e.g. "10♥"
func (c Card) Label() string {
	return c.Rank.Label() + c.Suit.Symbol()
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
