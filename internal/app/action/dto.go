package action

import "liferpg/internal/domain/hero"

type Request struct {
	UserID string
	Action hero.Action
}

// Response carries the post-mutation snapshot and the delta summary.
// Dropped is set when the session guard rejected the call; no state changed
// and no error is reported, the in-flight call resolves the user's intent.
type Response struct {
	Hero    hero.Hero  `json:"hero"`
	Delta   hero.Delta `json:"delta"`
	Dropped bool       `json:"dropped,omitempty"`
}
