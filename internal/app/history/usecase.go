package history

import (
	"context"
	"errors"
	"strings"
	"time"

	"liferpg/internal/app/ports"
	"liferpg/internal/domain/hero"
)

var ErrInvalidRequest = errors.New("invalid history request")

const defaultLimit = 50

type Request struct {
	UserID string
	Limit  int
	Before *time.Time
}

type Response struct {
	History []hero.HistoryEntry `json:"history"`
}

type UseCase struct {
	Ledger ports.HistoryRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	entries, err := u.Ledger.List(ctx, req.UserID, limit, req.Before)
	if err != nil {
		return Response{}, err
	}
	if entries == nil {
		entries = []hero.HistoryEntry{}
	}
	return Response{History: entries}, nil
}
