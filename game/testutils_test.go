package game

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/minaorangina/klondike/deck"
	"github.com/stretchr/testify/require"
)

type placed struct {
	card   deck.Card
	faceUp bool
}

func up(r deck.Rank, s deck.Suit) placed {
	return placed{deck.MustCard(r, s), true}
}

func down(r deck.Rank, s deck.Suit) placed {
	return placed{deck.MustCard(r, s), false}
}

type spyObserver struct {
	renders int
	changed []Card
}

func (o *spyObserver) CardChanged(c Card) {
	o.changed = append(o.changed, c)
}

func (o *spyObserver) Render() {
	o.renders++
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// arrangedEngine returns a game in progress with exactly the given cards
// on the given piles, bottom first.
func arrangedEngine(t *testing.T, layout map[PileID][]placed) (*Engine, *spyObserver, map[deck.Card]CardID) {
	t.Helper()

	spy := &spyObserver{}
	e := NewEngine(EngineOpts{Rand: seeded(1), Observer: spy})

	pileIDs := make([]int, 0, len(layout))
	for id := range layout {
		pileIDs = append(pileIDs, int(id))
	}
	sort.Ints(pileIDs)

	all := []deck.Card{}
	for _, id := range pileIDs {
		for _, p := range layout[PileID(id)] {
			all = append(all, p.card)
		}
	}
	e.table.Fill(all)
	e.table.pile(StockPile).cards = nil

	ids := map[deck.Card]CardID{}
	next := CardID(0)
	for _, pid := range pileIDs {
		for _, p := range layout[PileID(pid)] {
			c := e.table.card(next)
			c.Pile = PileID(pid)
			c.FaceUp = p.faceUp
			e.table.pile(PileID(pid)).push(next)
			ids[p.card] = next
			next++
		}
	}

	require.NoError(t, e.table.Verify())
	e.status = InProgress

	return e, spy, ids
}

func cardsOf(e *Engine, id PileID) []CardID {
	return e.table.pile(id).Cards()
}
