package snapshot

import (
	"context"
	"errors"
	"strings"
	"time"

	"liferpg/internal/app/ports"
	"liferpg/internal/domain/hero"
)

var ErrInvalidRequest = errors.New("invalid snapshot request")

type Request struct {
	UserID string
	// Force bypasses the cache and always reads the store.
	Force bool
}

type Response struct {
	Hero hero.Hero `json:"hero"`
}

// UseCase serves hero reads through the snapshot cache, creating the
// default hero on first access for an identity.
type UseCase struct {
	StateRepo ports.HeroStateRepository
	Cache     ports.SnapshotCache
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return Response{}, ErrInvalidRequest
	}

	if u.Cache != nil && !req.Force {
		if cached, ok, err := u.Cache.Get(ctx, req.UserID); err == nil && ok {
			return Response{Hero: cached}, nil
		}
	}

	h, err := u.StateRepo.GetByUserID(ctx, req.UserID)
	if errors.Is(err, ports.ErrNotFound) {
		nowFn := u.Now
		if nowFn == nil {
			nowFn = time.Now
		}
		h = hero.New(req.UserID, nowFn())
		if err := u.StateRepo.SaveWithVersion(ctx, h, 0); err != nil {
			return Response{}, err
		}
	} else if err != nil {
		return Response{}, err
	}
	h.EnsureCatalogs()

	if u.Cache != nil {
		_ = u.Cache.Put(ctx, req.UserID, h)
	}
	return Response{Hero: h}, nil
}
