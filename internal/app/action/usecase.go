package action

import (
	"context"
	"errors"
	"strings"
	"time"

	"liferpg/internal/app/ports"
	"liferpg/internal/domain/hero"
)

var ErrInvalidRequest = errors.New("invalid action request")

// UseCase runs one mutating action end to end: session guard, transactional
// load-process-save, ledger append, cache refresh, metrics. The processor
// itself never sees storage.
type UseCase struct {
	Guard     *SessionGuard
	TxManager ports.TxManager
	StateRepo ports.HeroStateRepository
	Ledger    ports.HistoryRepository
	Cache     ports.SnapshotCache
	Metrics   ports.ActionMetrics
	Processor hero.Processor
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	if req.UserID == "" || req.Action.Type == "" {
		return Response{}, ErrInvalidRequest
	}

	if u.Guard != nil {
		if !u.Guard.TryAcquire(req.UserID) {
			if u.Metrics != nil {
				u.Metrics.RecordDropped()
			}
			return Response{Dropped: true}, nil
		}
		defer u.Guard.Release(req.UserID)
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := u.StateRepo.GetByUserID(txCtx, req.UserID)
		if errors.Is(err, ports.ErrNotFound) {
			current = hero.New(req.UserID, now)
			if err := u.StateRepo.SaveWithVersion(txCtx, current, 0); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		current.EnsureCatalogs()

		outcome, err := u.Processor.Apply(current, req.Action, now)
		if err != nil {
			return err
		}

		if err := u.StateRepo.SaveWithVersion(txCtx, outcome.Hero, current.Version); err != nil {
			return err
		}
		if outcome.Entry != nil {
			if _, err := u.Ledger.Append(txCtx, req.UserID, *outcome.Entry); err != nil {
				return err
			}
		}

		out = Response{Hero: outcome.Hero, Delta: outcome.Delta}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if isDomainRejection(err) {
				u.Metrics.RecordRejected(req.Action.Type)
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}

	if u.Cache != nil {
		// Write-through so the next read sees the mutation even inside the
		// TTL window. The cache is advisory: a failed put must not undo a
		// committed transition.
		_ = u.Cache.Put(ctx, req.UserID, out.Hero)
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(req.Action.Type)
	}
	return out, nil
}

func isDomainRejection(err error) bool {
	return hero.IsValidation(err) ||
		hero.IsConflict(err) ||
		hero.IsNotFound(err) ||
		hero.IsInsufficient(err)
}
