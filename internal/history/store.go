package history

import (
	"sync"

	"chart-prophet/internal/models"
)

// Store is the in-memory trade cache backing the dashboard. It is replaced
// wholesale after each successful load and is the sole source for
// populating the edit form; there is no single-item fetch.
type Store struct {
	mu     sync.RWMutex
	trades []models.Trade
	byID   map[int64]int
}

// NewStore creates an empty trade store.
func NewStore() *Store {
	return &Store{byID: make(map[int64]int)}
}

// Replace swaps the entire cache for the given trades atomically.
func (s *Store) Replace(trades []models.Trade) {
	byID := make(map[int64]int, len(trades))
	for i, t := range trades {
		byID[t.ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trades = trades
	s.byID = byID
}

// Get looks up a trade by ID. A miss is an expected condition: the ID may
// come from a row rendered before the last reload.
func (s *Store) Get(id int64) (models.Trade, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return models.Trade{}, false
	}
	return s.trades[i], true
}

// All returns a copy of the cached trades in received order.
func (s *Store) All() []models.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Trade, len(s.trades))
	copy(out, s.trades)
	return out
}

// Len returns the number of cached trades.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trades)
}
