// Package memory is the fixture backend: the same repository surface as the
// Postgres adapter, backed by process-local maps. Selected at construction
// time when no database is configured.
package memory

import (
	"sync"

	"liferpg/internal/domain/hero"
)

type Store struct {
	mu      sync.Mutex
	heroes  map[string]hero.Hero
	history map[string][]hero.HistoryEntry
	nextID  int64
}

func NewStore() *Store {
	return &Store{
		heroes:  make(map[string]hero.Hero),
		history: make(map[string][]hero.HistoryEntry),
	}
}

// SeedHero installs a hero directly, bypassing the version check. Test and
// demo wiring only.
func (s *Store) SeedHero(h hero.Hero) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heroes[h.UserID] = h
}
