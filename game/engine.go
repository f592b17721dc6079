package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/minaorangina/klondike/deck"
	"go.uber.org/zap"
)

var (
	ErrGameNotStarted = errors.New("game has not started")
	ErrUnknownCard    = errors.New("unknown card")
	ErrUnknownPile    = errors.New("unknown pile")
)

// Status is where the game is in its lifecycle.
// There is no lost state: running out of moves is not detected.
type Status int

const (
	NotStarted Status = iota
	InProgress
	Won
)

var statusNames = []string{"not_started", "in_progress", "won"}

func (s Status) String() string {
	if s < NotStarted || s > Won {
		return ""
	}
	return statusNames[s]
}

// Outcome describes what a gesture did
type Outcome int

const (
	Ignored Outcome = iota
	Flipped
	Selected
	Reselected
	Moved
	Rejected
	Cancelled
	Drawn
	Recycled
)

var outcomeNames = []string{
	"ignored",
	"flipped",
	"selected",
	"reselected",
	"moved",
	"rejected",
	"cancelled",
	"drawn",
	"recycled",
}

func (o Outcome) String() string {
	if o < Ignored || o > Recycled {
		return ""
	}
	return outcomeNames[o]
}

// Changed reports whether the gesture altered the game
func (o Outcome) Changed() bool {
	switch o {
	case Ignored, Rejected, Reselected:
		return false
	}
	return true
}

type selectionState int

const (
	noSelection selectionState = iota
	sourceSelected
)

type selection struct {
	state selectionState
	card  CardID
}

// EngineOpts configures an Engine. Every field is optional.
type EngineOpts struct {
	Rand     *rand.Rand
	Observer Observer
	Logger   *zap.Logger
}

// Engine runs one game of Klondike.
// It is not safe for concurrent use; callers serialise gestures.
type Engine struct {
	table    *Table
	status   Status
	sel      selection
	rng      *rand.Rand
	observer Observer
	logger   *zap.Logger
}

// NewEngine constructs an engine with no game in progress
func NewEngine(opts EngineOpts) *Engine {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Observer == nil {
		opts.Observer = NopObserver{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Engine{
		table:    NewTable(opts.Observer),
		rng:      opts.Rand,
		observer: opts.Observer,
		logger:   opts.Logger,
	}
}

func (e *Engine) Status() Status {
	return e.status
}

// Selected returns the card at the bottom of the selected run, if any
func (e *Engine) Selected() (CardID, bool) {
	if e.sel.state != sourceSelected {
		return 0, false
	}
	return e.sel.card, true
}

// NewGame shuffles a fresh deck and deals the tableau
func (e *Engine) NewGame() {
	cards := deck.New()
	cards.Shuffle(e.rng)

	e.table.Fill(cards)
	e.sel = selection{}
	e.dealTableau()
	e.status = InProgress

	e.logger.Info("new game", zap.Int("stock", e.table.pile(StockPile).Len()))
	e.observer.Render()
}

// dealTableau deals the triangle: round i gives one face-down card to
// tableau 0..6-i, then turns up the top of tableau 6-i, which is then complete.
func (e *Engine) dealTableau() {
	for round := 0; round < numTableaus; round++ {
		last := numTableaus - 1 - round
		for j := 0; j <= last; j++ {
			e.table.DealOne(StockPile, TableauPile(j), false)
		}
		if top, ok := e.table.pile(TableauPile(last)).Top(); ok {
			e.table.flip(top)
		}
	}
}

// Draw turns one card from the stock onto the waste, or turns the waste
// back over onto the stock once the stock is empty.
func (e *Engine) Draw() (Outcome, error) {
	if e.status == NotStarted {
		return Ignored, ErrGameNotStarted
	}

	hadSelection := e.sel.state == sourceSelected
	e.clearSelection()

	outcome := Drawn
	if e.table.pile(StockPile).Empty() {
		outcome = e.recycleWaste()
	} else {
		e.table.DealOne(StockPile, WastePile, true)
	}
	if outcome == Ignored && hadSelection {
		outcome = Cancelled
	}

	e.done("draw", outcome)
	return outcome, nil
}

func (e *Engine) recycleWaste() Outcome {
	waste := e.table.pile(WastePile)
	if waste.Empty() {
		return Ignored
	}
	for !waste.Empty() {
		id := waste.pop()
		e.table.setFaceUp(id, false)
		e.table.card(id).Pile = StockPile
		e.table.pile(StockPile).push(id)
	}
	return Recycled
}

// SelectPile handles a click on an empty pile
func (e *Engine) SelectPile(id PileID) (Outcome, error) {
	if e.status == NotStarted {
		return Ignored, ErrGameNotStarted
	}
	if !e.table.hasPile(id) {
		return Ignored, ErrUnknownPile
	}

	outcome := e.dropOnPile(id)
	e.done("select pile", outcome, zap.Int("pile", int(id)))
	return outcome, nil
}

func (e *Engine) dropOnPile(id PileID) Outcome {
	if !e.table.pile(id).Empty() {
		return Ignored
	}
	if e.sel.state == noSelection {
		return Ignored
	}
	if !e.table.validateMove(id, e.sel.card, nil) {
		return Rejected
	}
	return e.moveSelection(id)
}

// SelectCard handles a click on a card. With nothing selected the card
// becomes the source; otherwise it is the destination of a move.
func (e *Engine) SelectCard(id CardID) (Outcome, error) {
	if e.status == NotStarted {
		return Ignored, ErrGameNotStarted
	}
	if !e.table.hasCard(id) {
		return Ignored, ErrUnknownCard
	}

	var outcome Outcome
	switch e.sel.state {
	case noSelection:
		outcome = e.pickSource(id)
	case sourceSelected:
		outcome = e.dropOnCard(id)
	}

	e.done("select card", outcome, zap.Int("card", int(id)))
	return outcome, nil
}

func (e *Engine) pickSource(id CardID) Outcome {
	c := e.table.card(id)
	source := e.table.pile(c.Pile)

	switch source.Kind {
	case Foundation, Stock:
		return Ignored
	}

	if !c.FaceUp {
		if !e.table.isTop(id) {
			return Ignored
		}
		e.table.flip(id)
		return Flipped
	}

	if source.Fan == SingleVisible && !e.table.isTop(id) {
		return Ignored
	}

	e.sel = selection{state: sourceSelected, card: id}
	for _, runID := range source.cards[source.IndexOf(id):] {
		e.table.selectCard(runID)
	}

	return Selected
}

func (e *Engine) dropOnCard(id CardID) Outcome {
	target := e.table.card(id).Pile

	if e.table.pile(target).Kind == Waste {
		e.clearSelection()
		return Cancelled
	}

	if id == e.sel.card {
		return Reselected
	}

	if !e.table.validateMove(target, e.sel.card, &id) {
		return Rejected
	}

	return e.moveSelection(target)
}

// moveSelection moves the selected run onto target, then checks for a win
func (e *Engine) moveSelection(target PileID) Outcome {
	from := e.table.card(e.sel.card).Pile
	if from == target {
		return Rejected
	}

	source := e.table.pile(from)
	start := source.IndexOf(e.sel.card)
	if !e.table.MoveRun(from, target, start, source.Len()) {
		return Rejected
	}

	e.clearSelection()

	if e.table.validateWin() {
		e.status = Won
		e.logger.Info("game won")
	}

	return Moved
}

func (e *Engine) clearSelection() {
	e.table.deselectAll()
	e.sel = selection{}
}

func (e *Engine) done(gesture string, outcome Outcome, fields ...zap.Field) {
	fields = append(fields, zap.String("outcome", outcome.String()))
	e.logger.Debug(gesture, fields...)

	if outcome.Changed() {
		if err := e.table.Verify(); err != nil {
			e.logger.DPanic("table is corrupt", zap.Error(err))
		}
		e.observer.Render()
	}
}
