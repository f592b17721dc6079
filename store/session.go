package store

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/minaorangina/klondike/game"
	"github.com/minaorangina/klondike/protocol"
	"go.uber.org/zap"
)

const subscriberBuffer = 16

// Session is one game being played through an adapter.
// The engine is single-threaded, so every call goes through the session lock.
type Session struct {
	id         string
	mu         sync.Mutex
	engine     *game.Engine
	subs       map[chan protocol.OutboundMessage]struct{}
	dirty      bool
	lastActive time.Time
	logger     *zap.Logger
}

// NewSession constructs a session and deals its first game
func NewSession(id string, r *rand.Rand, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		id:     id,
		subs:   map[chan protocol.OutboundMessage]struct{}{},
		logger: logger.With(zap.String("game_id", id)),
	}
	s.engine = game.NewEngine(game.EngineOpts{
		Rand:     r,
		Observer: s,
		Logger:   s.logger,
	})

	s.mu.Lock()
	s.engine.NewGame()
	s.dirty = false
	s.lastActive = time.Now()
	s.mu.Unlock()

	return s
}

func (s *Session) ID() string {
	return s.id
}

// Snapshot returns the current state of the game
func (s *Session) Snapshot() game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Snapshot()
}

// Apply runs one gesture against the game
func (s *Session) Apply(msg protocol.InboundMessage) (game.Outcome, error) {
	if err := msg.Validate(); err != nil {
		return game.Ignored, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	var (
		outcome game.Outcome
		err     error
	)

	switch msg.Command {
	case protocol.NewGame:
		s.engine.NewGame()
	case protocol.Draw:
		outcome, err = s.engine.Draw()
	case protocol.SelectCard:
		outcome, err = s.engine.SelectCard(*msg.CardID)
	case protocol.SelectPile:
		outcome, err = s.engine.SelectPile(*msg.PileID)
	default:
		return game.Ignored, fmt.Errorf("%w: %s", ErrUnsupportedCommand, msg.Command)
	}

	if s.dirty {
		label := outcome.String()
		if msg.Command == protocol.NewGame {
			label = msg.Command.String()
		}
		s.broadcast(protocol.RenderMessage(s.id, label, s.engine.Snapshot()))
		s.dirty = false
	}

	return outcome, err
}

// Subscribe returns a channel receiving a message after every change.
// The current state is queued straight away.
func (s *Session) Subscribe() chan protocol.OutboundMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan protocol.OutboundMessage, subscriberBuffer)
	s.subs[ch] = struct{}{}
	s.lastActive = time.Now()
	ch <- protocol.RenderMessage(s.id, "", s.engine.Snapshot())

	return ch
}

// Unsubscribe stops and closes a subscription
func (s *Session) Unsubscribe(ch chan protocol.OutboundMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.subs[ch]; !ok {
		return
	}
	delete(s.subs, ch)
	close(ch)
	s.lastActive = time.Now()
}

// Idle reports whether nobody is watching the game and nothing has
// happened to it for at least ttl
func (s *Session) Idle(ttl time.Duration, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs) == 0 && now.Sub(s.lastActive) >= ttl
}

// CardChanged is a no-op: subscribers redraw from the whole snapshot
func (s *Session) CardChanged(game.Card) {}

// Render marks the game as changed. It runs inside Apply, with the
// session lock held; Apply sends the new state once the gesture is done.
func (s *Session) Render() {
	s.dirty = true
}

func (s *Session) broadcast(msg protocol.OutboundMessage) {
	for ch := range s.subs {
		select {
		case ch <- msg:
		default:
			s.logger.Warn("subscriber too slow, dropping render")
		}
	}
}
