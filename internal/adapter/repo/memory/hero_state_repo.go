package memory

import (
	"context"

	"liferpg/internal/app/ports"
	"liferpg/internal/domain/hero"
)

type HeroStateRepo struct {
	store *Store
}

func NewHeroStateRepo(store *Store) HeroStateRepo {
	return HeroStateRepo{store: store}
}

func (r HeroStateRepo) GetByUserID(_ context.Context, userID string) (hero.Hero, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	h, ok := r.store.heroes[userID]
	if !ok {
		return hero.Hero{}, ports.ErrNotFound
	}
	return h, nil
}

// SaveWithVersion holds the store lock for the whole check-and-set, so the
// version comparison and the map write are one atomic step.
func (r HeroStateRepo) SaveWithVersion(_ context.Context, h hero.Hero, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.heroes[h.UserID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.heroes[h.UserID] = h
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.heroes[h.UserID] = h
	return nil
}
