package terminal

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/minaorangina/klondike/game"
	"go.uber.org/zap"
)

var (
	ErrMissingID = errors.New("missing id")
	errQuit      = errors.New("quit")
)

// Player plays one game in a terminal: it reads commands from in and
// redraws the board on out whenever the game changes.
type Player struct {
	engine *game.Engine
	in     *bufio.Scanner
	out    io.Writer
}

// NewPlayer constructs a Player and deals the first game
func NewPlayer(in io.Reader, out io.Writer, r *rand.Rand, logger *zap.Logger) *Player {
	p := &Player{
		in:  bufio.NewScanner(in),
		out: out,
	}
	p.engine = game.NewEngine(game.EngineOpts{
		Rand:     r,
		Observer: p,
		Logger:   logger,
	})
	return p
}

func (p *Player) CardChanged(game.Card) {}

// Render redraws the whole board
func (p *Player) Render() {
	SendText(p.out, "\n%s", buildBoardText(p.engine.Snapshot()))
}

// Run deals a game and plays until input ends, the player quits or ctx is done
func (p *Player) Run(ctx context.Context) error {
	p.engine.NewGame()
	SendText(p.out, helpText)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		SendText(p.out, "> ")
		if !p.in.Scan() {
			return p.in.Err()
		}

		err := p.handle(p.in.Text())
		if errors.Is(err, errQuit) {
			SendText(p.out, goodbyeText)
			return nil
		}
		if err != nil {
			SendText(p.out, "%s\n", err)
		}
	}
}

func (p *Player) handle(line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	before := p.engine.Status()

	var (
		outcome game.Outcome
		err     error
	)

	switch fields[0] {
	case "d", "draw":
		outcome, err = p.engine.Draw()
	case "c", "card":
		var id int
		if id, err = parseID(fields); err == nil {
			outcome, err = p.engine.SelectCard(game.CardID(id))
		}
	case "p", "pile":
		var id int
		if id, err = parseID(fields); err == nil {
			outcome, err = p.engine.SelectPile(game.PileID(id))
		}
	case "n", "new":
		p.engine.NewGame()
		return nil
	case "h", "help":
		SendText(p.out, helpText)
		return nil
	case "q", "quit":
		return errQuit
	default:
		SendText(p.out, unknownCommandText, fields[0])
		return nil
	}

	if err != nil {
		return err
	}

	if outcome == game.Rejected {
		SendText(p.out, "That move isn't allowed.\n")
	}
	if before != game.Won && p.engine.Status() == game.Won {
		SendText(p.out, wonText)
	}

	return nil
}

func parseID(fields []string) (int, error) {
	if len(fields) < 2 {
		return 0, ErrMissingID
	}
	return strconv.Atoi(fields[1])
}
