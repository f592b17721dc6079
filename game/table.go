package game

import (
	"fmt"

	"github.com/minaorangina/klondike/deck"
)

// Table owns every card and pile of one game.
// Cards are addressed by CardID, piles by PileID, and each card records
// the id of the pile holding it.
type Table struct {
	cards    []Card
	piles    []Pile
	observer Observer
}

// NewTable lays out the thirteen empty piles
func NewTable(observer Observer) *Table {
	if observer == nil {
		observer = NopObserver{}
	}

	t := &Table{
		piles:    make([]Pile, numPiles),
		observer: observer,
	}

	t.piles[StockPile] = Pile{ID: StockPile, Kind: Stock, Fan: SingleVisible}
	t.piles[WastePile] = Pile{ID: WastePile, Kind: Waste, Fan: SingleVisible}
	for i := 0; i < numFoundations; i++ {
		id := FoundationPile(i)
		t.piles[id] = Pile{ID: id, Kind: Foundation, Fan: SingleVisible}
	}
	for i := 0; i < numTableaus; i++ {
		id := TableauPile(i)
		t.piles[id] = Pile{ID: id, Kind: Tableau, Fan: FanAll}
	}

	return t
}

// Fill empties every pile and puts the given cards face down on the stock.
// Ids follow the order of cards, so callers shuffle first.
func (t *Table) Fill(cards []deck.Card) {
	for i := range t.piles {
		t.piles[i].cards = nil
	}

	t.cards = make([]Card, len(cards))
	for i, c := range cards {
		id := CardID(i)
		t.cards[id] = Card{Card: c, ID: id, Pile: StockPile}
		t.piles[StockPile].push(id)
	}
}

func (t *Table) hasCard(id CardID) bool {
	return id >= 0 && int(id) < len(t.cards)
}

func (t *Table) hasPile(id PileID) bool {
	return id >= 0 && int(id) < len(t.piles)
}

func (t *Table) card(id CardID) *Card {
	return &t.cards[id]
}

func (t *Table) pile(id PileID) *Pile {
	return &t.piles[id]
}

// DealOne moves the top card of from onto to, face up or down.
// It fails only when from is empty.
func (t *Table) DealOne(from, to PileID, faceUp bool) bool {
	source := t.pile(from)
	if source.Empty() {
		return false
	}

	id := source.pop()
	c := t.card(id)
	c.FaceUp = faceUp
	c.Pile = to
	t.pile(to).push(id)

	return true
}

// MoveRun moves cards [start, end) of from onto to, keeping their order.
// Moved cards end up face up. It fails when from is empty or start > end;
// start == end moves nothing and succeeds.
func (t *Table) MoveRun(from, to PileID, start, end int) bool {
	source := t.pile(from)
	if start > end || source.Empty() {
		return false
	}
	if start < 0 || end > source.Len() {
		return false
	}

	run := make([]CardID, end-start)
	copy(run, source.cards[start:end])
	source.cards = append(source.cards[:start], source.cards[end:]...)

	for _, id := range run {
		c := t.card(id)
		c.FaceUp = true
		c.Pile = to
	}
	t.pile(to).push(run...)

	return true
}

func (t *Table) flip(id CardID) {
	c := t.card(id)
	c.Flip()
	t.observer.CardChanged(*c)
}

func (t *Table) setFaceUp(id CardID, faceUp bool) {
	c := t.card(id)
	if c.FaceUp == faceUp {
		return
	}
	c.Flip()
	t.observer.CardChanged(*c)
}

func (t *Table) selectCard(id CardID) {
	c := t.card(id)
	c.Select()
	t.observer.CardChanged(*c)
}

// deselectAll clears the selected flag on every card
func (t *Table) deselectAll() {
	for i := range t.cards {
		c := &t.cards[i]
		if !c.Selected {
			continue
		}
		c.Deselect()
		t.observer.CardChanged(*c)
	}
}

// isTop reports whether the card is the last card of its pile
func (t *Table) isTop(id CardID) bool {
	top, ok := t.pile(t.card(id).Pile).Top()
	return ok && top == id
}

// Verify checks that every card sits in exactly one pile and that
// the pile it records is the pile holding it.
func (t *Table) Verify() error {
	seen := make([]bool, len(t.cards))
	for _, p := range t.piles {
		for _, id := range p.cards {
			if !t.hasCard(id) {
				return fmt.Errorf("pile %d holds unknown card %d", p.ID, id)
			}
			if seen[id] {
				return fmt.Errorf("card %d appears more than once", id)
			}
			seen[id] = true
			if owner := t.cards[id].Pile; owner != p.ID {
				return fmt.Errorf("card %d is in pile %d but records pile %d", id, p.ID, owner)
			}
		}
	}
	for id, ok := range seen {
		if !ok {
			return fmt.Errorf("card %d is in no pile", id)
		}
	}
	return nil
}
