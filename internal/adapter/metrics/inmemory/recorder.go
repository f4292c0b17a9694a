package inmemory

import (
	"sync"

	"liferpg/internal/domain/hero"
)

type Snapshot struct {
	ActionTotal    uint64            `json:"action_total"`
	ActionSuccess  uint64            `json:"action_success"`
	ActionRejected uint64            `json:"action_rejected"`
	ActionDropped  uint64            `json:"action_dropped"`
	ActionFailure  uint64            `json:"action_failure"`
	ByActionKind   map[string]uint64 `json:"by_action_kind"`
}

type Recorder struct {
	mu       sync.Mutex
	success  uint64
	rejected uint64
	dropped  uint64
	failure  uint64
	byKind   map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{byKind: map[string]uint64{}}
}

func (r *Recorder) RecordSuccess(kind hero.ActionType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.success++
	r.byKind[string(kind)]++
}

func (r *Recorder) RecordRejected(kind hero.ActionType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
	r.byKind[string(kind)]++
}

func (r *Recorder) RecordDropped() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dropped++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionSuccess:  r.success,
		ActionRejected: r.rejected,
		ActionDropped:  r.dropped,
		ActionFailure:  r.failure,
		ActionTotal:    r.success + r.rejected + r.dropped + r.failure,
		ByActionKind:   make(map[string]uint64, len(r.byKind)),
	}
	for k, v := range r.byKind {
		out.ByActionKind[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
