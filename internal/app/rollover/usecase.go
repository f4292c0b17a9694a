package rollover

import (
	"context"
	"errors"
	"strings"
	"time"

	"liferpg/internal/app/ports"
	"liferpg/internal/domain/hero"
)

var ErrInvalidRequest = errors.New("invalid rollover request")

type DayRequest struct {
	UserID string
	// MissedDays is how many whole days beyond the first passed since the
	// last rollover; 0 for a normal nightly run.
	MissedDays int
}

type MonthRequest struct {
	UserID string
}

type Response struct {
	Hero hero.Hero `json:"hero"`
}

// UseCase is the daily/monthly reset collaborator invoked by an external
// scheduler. It shares the store discipline of the action pipeline:
// transactional, optimistic save, ledger append for penalties.
type UseCase struct {
	TxManager ports.TxManager
	StateRepo ports.HeroStateRepository
	Ledger    ports.HistoryRepository
	Cache     ports.SnapshotCache
	Now       func() time.Time
}

func (u UseCase) RolloverDay(ctx context.Context, req DayRequest) (Response, error) {
	if strings.TrimSpace(req.UserID) == "" || req.MissedDays < 0 {
		return Response{}, ErrInvalidRequest
	}
	now := u.now()

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := u.StateRepo.GetByUserID(txCtx, req.UserID)
		if err != nil {
			return err
		}
		next, entry := hero.RolloverDay(current, req.MissedDays, now)
		if err := u.StateRepo.SaveWithVersion(txCtx, next, current.Version); err != nil {
			return err
		}
		if entry != nil {
			if _, err := u.Ledger.Append(txCtx, req.UserID, *entry); err != nil {
				return err
			}
		}
		out = Response{Hero: next}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	u.refresh(ctx, req.UserID, out.Hero)
	return out, nil
}

func (u UseCase) RolloverMonth(ctx context.Context, req MonthRequest) (Response, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return Response{}, ErrInvalidRequest
	}
	now := u.now()

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := u.StateRepo.GetByUserID(txCtx, req.UserID)
		if err != nil {
			return err
		}
		next := hero.RolloverMonth(current, now)
		if err := u.StateRepo.SaveWithVersion(txCtx, next, current.Version); err != nil {
			return err
		}
		out = Response{Hero: next}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	u.refresh(ctx, req.UserID, out.Hero)
	return out, nil
}

func (u UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func (u UseCase) refresh(ctx context.Context, userID string, h hero.Hero) {
	if u.Cache != nil {
		_ = u.Cache.Put(ctx, userID, h)
	}
}
