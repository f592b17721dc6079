package game

import "github.com/minaorangina/klondike/deck"

const (
	aceRank  = deck.Ace
	kingRank = deck.King
)

// rule decides whether a selected card may land on a pile of one kind
type rule struct {
	// empty applies when the target pile has no cards
	empty func(selected Card) bool
	// onto applies when the target pile's top card is top
	onto func(t *Table, selected, top Card) bool
}

// Kinds without a rule never accept a drop.
var rules = map[PileKind]rule{
	Foundation: {
		empty: func(selected Card) bool {
			return selected.Rank == aceRank
		},
		onto: func(t *Table, selected, top Card) bool {
			// foundations take one card at a time
			if !t.isTop(selected.ID) {
				return false
			}
			return selected.Rank-top.Rank == 1 && selected.Suit == top.Suit
		},
	},
	Tableau: {
		empty: func(selected Card) bool {
			return selected.Rank == kingRank
		},
		onto: func(t *Table, selected, top Card) bool {
			return top.Rank-selected.Rank == 1 && alternatingSuits(top.Suit, selected.Suit)
		},
	},
}

// alternatingSuits is true when one suit is red and the other black
func alternatingSuits(a, b deck.Suit) bool {
	return a.Colour() != b.Colour()
}

// validateMove reports whether the selected card, with the run above it,
// may be moved onto target. destination is the card that was clicked, if any.
func (t *Table) validateMove(target PileID, selected CardID, destination *CardID) bool {
	if destination != nil && *destination == selected {
		return true
	}

	r, ok := rules[t.pile(target).Kind]
	if !ok {
		return false
	}

	sel := *t.card(selected)

	top, ok := t.pile(target).Top()
	if !ok {
		return r.empty(sel)
	}

	return r.onto(t, sel, *t.card(top))
}

// validateWin is true once every card is on a foundation
func (t *Table) validateWin() bool {
	count := 0
	for i := 0; i < numFoundations; i++ {
		count += t.pile(FoundationPile(i)).Len()
	}
	return len(t.cards) > 0 && count == len(t.cards)
}
