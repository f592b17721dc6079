package game

// CardView is a card as an adapter may show it.
// Rank and suit are only filled in for face-up cards.
type CardView struct {
	ID       CardID `json:"id"`
	Pile     PileID `json:"pile"`
	FaceUp   bool   `json:"face_up"`
	Selected bool   `json:"selected"`
	Rank     int    `json:"rank,omitempty"`
	Label    string `json:"label,omitempty"`
	Suit     string `json:"suit,omitempty"`
	Symbol   string `json:"symbol,omitempty"`
	Colour   string `json:"colour,omitempty"`
	Text     string `json:"text"`
}

type PileView struct {
	ID    PileID     `json:"id"`
	Kind  string     `json:"kind"`
	Fan   string     `json:"fan"`
	Count int        `json:"count"`
	Cards []CardView `json:"cards"`
}

// Snapshot is a read-only copy of the game for rendering
type Snapshot struct {
	Status   string     `json:"status"`
	Selected *CardID    `json:"selected,omitempty"`
	Piles    []PileView `json:"piles"`
}

func newCardView(c Card) CardView {
	v := CardView{
		ID:       c.ID,
		Pile:     c.Pile,
		FaceUp:   c.FaceUp,
		Selected: c.Selected,
		Text:     c.Text(),
	}
	if c.FaceUp {
		v.Rank = int(c.Rank)
		v.Label = c.Rank.Label()
		v.Suit = c.Suit.String()
		v.Symbol = c.Suit.Symbol()
		v.Colour = c.Colour().String()
	}
	return v
}

// Snapshot captures the current state of every pile
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Status: e.status.String(),
		Piles:  make([]PileView, 0, len(e.table.piles)),
	}

	if id, ok := e.Selected(); ok {
		snap.Selected = &id
	}

	for _, p := range e.table.piles {
		pv := PileView{
			ID:    p.ID,
			Kind:  p.Kind.String(),
			Fan:   p.Fan.String(),
			Count: p.Len(),
			Cards: make([]CardView, 0, p.Len()),
		}
		for _, id := range p.cards {
			pv.Cards = append(pv.Cards, newCardView(e.table.cards[id]))
		}
		snap.Piles = append(snap.Piles, pv)
	}

	return snap
}
