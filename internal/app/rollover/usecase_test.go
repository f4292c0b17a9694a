package rollover

import (
	"context"
	"errors"
	"testing"
	"time"

	"liferpg/internal/app/ports"
	"liferpg/internal/domain/hero"
)

var testNow = time.Unix(1700000000, 0)

type stubStateRepo struct {
	byUser map[string]hero.Hero
}

func (s *stubStateRepo) GetByUserID(_ context.Context, userID string) (hero.Hero, error) {
	h, ok := s.byUser[userID]
	if !ok {
		return hero.Hero{}, ports.ErrNotFound
	}
	return h, nil
}

func (s *stubStateRepo) SaveWithVersion(_ context.Context, h hero.Hero, expectedVersion int64) error {
	current, ok := s.byUser[h.UserID]
	if !ok || current.Version != expectedVersion {
		return ports.ErrConflict
	}
	s.byUser[h.UserID] = h
	return nil
}

type stubLedger struct {
	entries []hero.HistoryEntry
}

func (l *stubLedger) Append(_ context.Context, _ string, entry hero.HistoryEntry) (hero.HistoryEntry, error) {
	entry.ID = int64(len(l.entries) + 1)
	l.entries = append(l.entries, entry)
	return entry, nil
}

func (l *stubLedger) List(_ context.Context, _ string, _ int, _ *time.Time) ([]hero.HistoryEntry, error) {
	return l.entries, nil
}

type stubCache struct {
	byUser map[string]hero.Hero
}

func (c *stubCache) Get(_ context.Context, userID string) (hero.Hero, bool, error) {
	h, ok := c.byUser[userID]
	return h, ok, nil
}

func (c *stubCache) Put(_ context.Context, userID string, h hero.Hero) error {
	c.byUser[userID] = h
	return nil
}

type stubTxManager struct{}

func (stubTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestUseCase(state *stubStateRepo, ledger *stubLedger, cache *stubCache) UseCase {
	return UseCase{
		TxManager: stubTxManager{},
		StateRepo: state,
		Ledger:    ledger,
		Cache:     cache,
		Now:       func() time.Time { return testNow },
	}
}

func activeHero() hero.Hero {
	h := hero.New("user-1", testNow)
	h.Streak = 2
	h.WaterCount = 4
	h.CompletedTasks = []string{"walk"}
	return h
}

func TestRolloverDay_ActiveDayPersistsAndRefreshesCache(t *testing.T) {
	state := &stubStateRepo{byUser: map[string]hero.Hero{"user-1": activeHero()}}
	ledger := &stubLedger{}
	cache := &stubCache{byUser: map[string]hero.Hero{}}
	uc := newTestUseCase(state, ledger, cache)

	out, err := uc.RolloverDay(context.Background(), DayRequest{UserID: "user-1"})
	if err != nil {
		t.Fatalf("rollover error: %v", err)
	}
	if out.Hero.Streak != 3 || out.Hero.WaterCount != 0 {
		t.Fatalf("hero = streak %d water %d", out.Hero.Streak, out.Hero.WaterCount)
	}
	if got := state.byUser["user-1"]; got.Streak != 3 {
		t.Fatalf("persisted streak = %d, want 3", got.Streak)
	}
	if len(ledger.entries) != 0 {
		t.Fatalf("active day must not write a penalty entry")
	}
	if cache.byUser["user-1"].Streak != 3 {
		t.Fatalf("cache not refreshed after rollover")
	}
}

func TestRolloverDay_IdleDayAppendsPenalty(t *testing.T) {
	idle := hero.New("user-1", testNow)
	idle.HP = 60
	state := &stubStateRepo{byUser: map[string]hero.Hero{"user-1": idle}}
	ledger := &stubLedger{}
	uc := newTestUseCase(state, ledger, &stubCache{byUser: map[string]hero.Hero{}})

	out, err := uc.RolloverDay(context.Background(), DayRequest{UserID: "user-1", MissedDays: 2})
	if err != nil {
		t.Fatalf("rollover error: %v", err)
	}
	if got, want := out.Hero.HP, 60-2*hero.MissedDayHPPenalty; got != want {
		t.Fatalf("hp = %d, want %d", got, want)
	}
	if len(ledger.entries) != 1 || ledger.entries[0].EventType != hero.EventPenalty {
		t.Fatalf("expected one penalty entry, got %+v", ledger.entries)
	}
}

func TestRolloverDay_UnknownUser(t *testing.T) {
	uc := newTestUseCase(&stubStateRepo{byUser: map[string]hero.Hero{}}, &stubLedger{}, nil)
	if _, err := uc.RolloverDay(context.Background(), DayRequest{UserID: "ghost"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRolloverDay_InvalidRequest(t *testing.T) {
	uc := newTestUseCase(&stubStateRepo{byUser: map[string]hero.Hero{}}, &stubLedger{}, nil)
	if _, err := uc.RolloverDay(context.Background(), DayRequest{UserID: ""}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for empty user, got %v", err)
	}
	if _, err := uc.RolloverDay(context.Background(), DayRequest{UserID: "user-1", MissedDays: -1}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for negative missed days, got %v", err)
	}
}

func TestRolloverMonth_ResetsCurrency(t *testing.T) {
	h := hero.New("user-1", testNow)
	h.XPTotal = 300
	h.MonthCurrency = 120
	state := &stubStateRepo{byUser: map[string]hero.Hero{"user-1": h}}
	cache := &stubCache{byUser: map[string]hero.Hero{}}
	uc := newTestUseCase(state, &stubLedger{}, cache)

	out, err := uc.RolloverMonth(context.Background(), MonthRequest{UserID: "user-1"})
	if err != nil {
		t.Fatalf("rollover error: %v", err)
	}
	if out.Hero.MonthCurrency != 0 {
		t.Fatalf("month currency = %d, want 0", out.Hero.MonthCurrency)
	}
	if out.Hero.XPTotal != 300 {
		t.Fatalf("lifetime xp changed: %d", out.Hero.XPTotal)
	}
	if cache.byUser["user-1"].MonthCurrency != 0 {
		t.Fatalf("cache not refreshed after month rollover")
	}
}
