package action

import "sync"

// SessionGuard serializes mutating actions per session: at most one call is
// in flight per user, later calls are dropped immediately rather than
// queued. Release must run on every exit path of the protected call.
type SessionGuard struct {
	mu       sync.Mutex
	inflight map[string]bool
}

func NewSessionGuard() *SessionGuard {
	return &SessionGuard{inflight: make(map[string]bool)}
}

func (g *SessionGuard) TryAcquire(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.inflight[userID] {
		return false
	}
	g.inflight[userID] = true
	return true
}

func (g *SessionGuard) Release(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, userID)
}
