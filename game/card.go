package game

import "github.com/minaorangina/klondike/deck"

// CardID identifies a card within one game. Ids are assigned after the shuffle.
type CardID int

// Card is a playing card on the table
type Card struct {
	deck.Card
	ID       CardID
	Pile     PileID
	FaceUp   bool
	Selected bool
}

func (c *Card) Flip() {
	c.FaceUp = !c.FaceUp
}

func (c *Card) Select() {
	c.Selected = true
}

func (c *Card) Deselect() {
	c.Selected = false
}

// Text is what a player can see of the card
func (c Card) Text() string {
	if !c.FaceUp {
		return "FACE DOWN"
	}
	return c.Rank.Label() + " - " + c.Suit.String()
}
