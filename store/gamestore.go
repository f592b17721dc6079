package store

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrUnknownGameID      = errors.New("unknown game ID")
	ErrUnsupportedCommand = errors.New("unsupported command")
	ErrFnGameExists       = func(gameID string) error {
		return fmt.Errorf("game with id %q already exists", gameID)
	}
)

type GameStore interface {
	AddGame(s *Session) error
	FindGame(gameID string) *Session
	RemoveGame(gameID string) error
	Sessions() []*Session
	Len() int
}

// RemoveIdle removes every game that has been idle for ttl and returns their ids
func RemoveIdle(gs GameStore, ttl time.Duration, now time.Time) []string {
	removed := []string{}
	for _, s := range gs.Sessions() {
		if !s.Idle(ttl, now) {
			continue
		}
		// another sweep may have got there first
		if err := gs.RemoveGame(s.ID()); errors.Is(err, ErrUnknownGameID) {
			continue
		}
		removed = append(removed, s.ID())
	}
	return removed
}

// InMemoryGameStore maps game id to session
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]*Session
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]*Session{},
	}
}

func (s *InMemoryGameStore) AddGame(session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[session.ID()]; exists {
		return ErrFnGameExists(session.ID())
	}

	s.games[session.ID()] = session
	return nil
}

func (s *InMemoryGameStore) FindGame(gameID string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.games[gameID]
}

func (s *InMemoryGameStore) Sessions() []*Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]*Session, 0, len(s.games))
	for _, session := range s.games {
		sessions = append(sessions, session)
	}
	return sessions
}

func (s *InMemoryGameStore) RemoveGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return ErrUnknownGameID
	}
	delete(s.games, gameID)
	return nil
}

func (s *InMemoryGameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.games)
}
