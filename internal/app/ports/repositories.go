package ports

import (
	"context"
	"time"

	"liferpg/internal/domain/hero"
)

// HeroStateRepository owns the canonical hero record. SaveWithVersion is an
// optimistic write: it fails with ErrConflict unless the stored version
// still equals expectedVersion (0 means create).
type HeroStateRepository interface {
	GetByUserID(ctx context.Context, userID string) (hero.Hero, error)
	SaveWithVersion(ctx context.Context, h hero.Hero, expectedVersion int64) error
}

// HistoryRepository is the append-only ledger. Append assigns the entry id;
// List returns entries most recent first, optionally only those strictly
// before a timestamp.
type HistoryRepository interface {
	Append(ctx context.Context, userID string, entry hero.HistoryEntry) (hero.HistoryEntry, error)
	List(ctx context.Context, userID string, limit int, before *time.Time) ([]hero.HistoryEntry, error)
}

// SnapshotCache fronts hero reads with a fixed TTL. Put overwrites the
// cached snapshot with a fresh one, restarting the TTL.
type SnapshotCache interface {
	Get(ctx context.Context, userID string) (hero.Hero, bool, error)
	Put(ctx context.Context, userID string, h hero.Hero) error
}
