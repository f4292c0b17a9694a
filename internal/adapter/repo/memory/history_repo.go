package memory

import (
	"context"
	"time"

	"liferpg/internal/domain/hero"
)

type HistoryRepo struct {
	store *Store
}

func NewHistoryRepo(store *Store) HistoryRepo {
	return HistoryRepo{store: store}
}

func (r HistoryRepo) Append(_ context.Context, userID string, entry hero.HistoryEntry) (hero.HistoryEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextID++
	entry.ID = r.store.nextID
	r.store.history[userID] = append(r.store.history[userID], entry)
	return entry, nil
}

func (r HistoryRepo) List(_ context.Context, userID string, limit int, before *time.Time) ([]hero.HistoryEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	all := r.store.history[userID]
	out := make([]hero.HistoryEntry, 0, len(all))
	// Entries append in arrival order; walk backwards for most recent first.
	for i := len(all) - 1; i >= 0; i-- {
		entry := all[i]
		if before != nil && !entry.Timestamp.Before(*before) {
			continue
		}
		out = append(out, entry)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
