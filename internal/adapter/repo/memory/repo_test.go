package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"liferpg/internal/app/ports"
	"liferpg/internal/domain/hero"
)

var testNow = time.Unix(1700000000, 0)

func TestHeroStateRepo_CreateThenGet(t *testing.T) {
	repo := NewHeroStateRepo(NewStore())
	ctx := context.Background()

	if _, err := repo.GetByUserID(ctx, "user-1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	h := hero.New("user-1", testNow)
	if err := repo.SaveWithVersion(ctx, h, 0); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.GetByUserID(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Version != h.Version {
		t.Fatalf("version = %d, want %d", got.Version, h.Version)
	}
}

func TestHeroStateRepo_VersionConflicts(t *testing.T) {
	repo := NewHeroStateRepo(NewStore())
	ctx := context.Background()

	h := hero.New("user-1", testNow)
	if err := repo.SaveWithVersion(ctx, h, 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Creating an existing user again must conflict.
	if err := repo.SaveWithVersion(ctx, h, 0); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("re-create: expected ErrConflict, got %v", err)
	}
	// Creating a missing user with a non-zero expectation must conflict.
	other := hero.New("user-2", testNow)
	if err := repo.SaveWithVersion(ctx, other, 3); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("phantom update: expected ErrConflict, got %v", err)
	}

	// A stale writer loses.
	updated := h
	updated.XPTotal = 10
	updated.Version = h.Version + 1
	if err := repo.SaveWithVersion(ctx, updated, h.Version); err != nil {
		t.Fatalf("update: %v", err)
	}
	stale := h
	stale.XPTotal = 999
	if err := repo.SaveWithVersion(ctx, stale, h.Version); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("stale write: expected ErrConflict, got %v", err)
	}
	got, _ := repo.GetByUserID(ctx, "user-1")
	if got.XPTotal != 10 {
		t.Fatalf("xp = %d, stale writer must not win", got.XPTotal)
	}
}

// Distinct users bypass the per-session guard, so the repo itself must be
// safe against parallel first-access create-and-read on a shared store.
func TestHeroStateRepo_ConcurrentFirstAccess(t *testing.T) {
	repo := NewHeroStateRepo(NewStore())
	ctx := context.Background()
	const users = 32

	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", i)
			if err := repo.SaveWithVersion(ctx, hero.New(userID, testNow), 0); err != nil {
				t.Errorf("create %s: %v", userID, err)
				return
			}
			if _, err := repo.GetByUserID(ctx, userID); err != nil {
				t.Errorf("get %s: %v", userID, err)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < users; i++ {
		if _, err := repo.GetByUserID(ctx, fmt.Sprintf("user-%d", i)); err != nil {
			t.Fatalf("user-%d missing after concurrent creates: %v", i, err)
		}
	}
}

func TestHistoryRepo_ConcurrentAppendAssignsUniqueIDs(t *testing.T) {
	repo := NewHistoryRepo(NewStore())
	ctx := context.Background()
	const writers = 16

	ids := make(chan int64, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entry, err := repo.Append(ctx, fmt.Sprintf("user-%d", i), hero.HistoryEntry{
				EventType: hero.EventWater,
				Timestamp: testNow,
			})
			if err != nil {
				t.Errorf("append: %v", err)
				return
			}
			ids <- entry.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate ledger id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != writers {
		t.Fatalf("appended %d entries, want %d", len(seen), writers)
	}
}

func seedHistory(t *testing.T, repo HistoryRepo, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		entry := hero.HistoryEntry{
			EventType:   hero.EventWater,
			Description: "Drank water",
			XPDelta:     5,
			Timestamp:   testNow.Add(time.Duration(i) * time.Minute),
		}
		if _, err := repo.Append(ctx, "user-1", entry); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
}

func TestHistoryRepo_AppendAssignsSequentialIDs(t *testing.T) {
	repo := NewHistoryRepo(NewStore())
	ctx := context.Background()

	first, err := repo.Append(ctx, "user-1", hero.HistoryEntry{EventType: hero.EventWater, Timestamp: testNow})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	second, err := repo.Append(ctx, "user-1", hero.HistoryEntry{EventType: hero.EventTask, Timestamp: testNow})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if first.ID == 0 || second.ID != first.ID+1 {
		t.Fatalf("ids = %d, %d, want sequential non-zero", first.ID, second.ID)
	}
}

func TestHistoryRepo_ListMostRecentFirst(t *testing.T) {
	repo := NewHistoryRepo(NewStore())
	seedHistory(t, repo, 3)

	out, err := repo.List(context.Background(), "user-1", 10, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].Timestamp.After(out[i-1].Timestamp) {
			t.Fatalf("entries not ordered most recent first: %v", out)
		}
	}
}

func TestHistoryRepo_LimitAndBefore(t *testing.T) {
	repo := NewHistoryRepo(NewStore())
	seedHistory(t, repo, 5)
	ctx := context.Background()

	out, err := repo.List(ctx, "user-1", 2, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("limited len = %d, want 2", len(out))
	}

	cutoff := testNow.Add(3 * time.Minute)
	out, err = repo.List(ctx, "user-1", 10, &cutoff)
	if err != nil {
		t.Fatalf("list before: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("before len = %d, want 3", len(out))
	}
	for _, entry := range out {
		if !entry.Timestamp.Before(cutoff) {
			t.Fatalf("entry at %v not before cutoff %v", entry.Timestamp, cutoff)
		}
	}
}

func TestHistoryRepo_UsersAreIsolated(t *testing.T) {
	repo := NewHistoryRepo(NewStore())
	ctx := context.Background()
	if _, err := repo.Append(ctx, "user-1", hero.HistoryEntry{EventType: hero.EventWater, Timestamp: testNow}); err != nil {
		t.Fatalf("append: %v", err)
	}

	out, err := repo.List(ctx, "user-2", 10, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("user-2 sees user-1 entries: %v", out)
	}
}
