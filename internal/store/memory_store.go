package store

import (
	"sync"

	"gamewatch/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the latest aggregated games in
// memory. The notification gate refreshes it each cycle; the HTTP layer reads
// from it instead of re-fetching upstream.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]domain.Game
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string]domain.Game),
	}
}

// ListGames returns a copy of the current games slice.
func (s *MemoryStore) ListGames() []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Game, 0, len(s.games))
	for _, g := range s.games {
		result = append(result, g)
	}
	return result
}

// GetGame retrieves a game by its (league, gameID) key.
func (s *MemoryStore) GetGame(league domain.League, gameID string) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[domain.Game{League: league, GameID: gameID}.Key()]
	return g, ok
}

// SetGames replaces the existing games with a new snapshot.
func (s *MemoryStore) SetGames(games []domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]domain.Game, len(games))
	for _, g := range games {
		s.games[g.Key()] = g
	}
}
