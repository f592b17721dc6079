package game

// Observer is notified when the table changes. Adapters implement it to redraw.
type Observer interface {
	// CardChanged is called after a card's flags change
	CardChanged(Card)
	// Render is called once a gesture has changed the game
	Render()
}

// NopObserver ignores every notification
type NopObserver struct{}

func (NopObserver) CardChanged(Card) {}
func (NopObserver) Render()          {}
