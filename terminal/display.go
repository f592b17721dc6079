package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/klondike/game"
	"github.com/pterm/pterm"
)

const (
	helpText = `Commands:
  d, draw          turn over a card from the stock
  c, card <id>     pick up or drop onto a card
  p, pile <id>     drop onto an empty pile
  n, new           deal a new game
  h, help          show this help
  q, quit          leave the game
`
	unknownCommandText = "I don't know %q. Type h for help.\n"
	wonText            = "\nEvery card is home. You win!\n"
	goodbyeText        = "Bye!\n"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

func cardText(c game.CardView) string {
	id := fmt.Sprintf("%d:", c.ID)
	if !c.FaceUp {
		return id + pterm.Gray("##")
	}

	face := c.Label + c.Symbol
	if c.Colour == "red" {
		face = pterm.LightRed(face)
	} else {
		face = pterm.LightWhite(face)
	}

	if c.Selected {
		return "*" + id + face
	}
	return id + face
}

func pileText(p game.PileView) string {
	if p.Count == 0 {
		return fmt.Sprintf("[%d: empty]", p.ID)
	}
	if p.Fan == game.SingleVisible.String() {
		return cardText(p.Cards[len(p.Cards)-1])
	}

	parts := make([]string, 0, len(p.Cards))
	for _, c := range p.Cards {
		parts = append(parts, cardText(c))
	}
	return strings.Join(parts, " ")
}

// buildBoardText lays the table out as text, one line per row of piles
func buildBoardText(snap game.Snapshot) string {
	var b strings.Builder

	stock := snap.Piles[game.StockPile]
	waste := snap.Piles[game.WastePile]
	fmt.Fprintf(&b, "Stock (%d)   Waste: %s\n", stock.Count, pileText(waste))

	b.WriteString("Foundations:")
	for _, p := range snap.Piles {
		if p.Kind == game.Foundation.String() {
			b.WriteString(" " + pileText(p))
		}
	}
	b.WriteString("\n\nTableau:\n")

	n := 0
	for _, p := range snap.Piles {
		if p.Kind != game.Tableau.String() {
			continue
		}
		n++
		fmt.Fprintf(&b, "  %d (pile %d): %s\n", n, p.ID, pileText(p))
	}

	return b.String()
}
