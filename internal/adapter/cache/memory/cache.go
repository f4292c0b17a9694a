// Package memory holds the single-process snapshot cache used when no
// Redis endpoint is configured.
package memory

import (
	"context"
	"sync"
	"time"

	"liferpg/internal/domain/hero"
)

type entry struct {
	hero     hero.Hero
	storedAt time.Time
}

type Cache struct {
	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time
	byU map[string]entry
}

func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = hero.SnapshotTTL
	}
	return &Cache{ttl: ttl, now: time.Now, byU: make(map[string]entry)}
}

// WithClock overrides the time source. Tests only.
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.now = now
	return c
}

func (c *Cache) Get(_ context.Context, userID string) (hero.Hero, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.byU[userID]
	if !ok {
		return hero.Hero{}, false, nil
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.byU, userID)
		return hero.Hero{}, false, nil
	}
	return e.hero, true, nil
}

func (c *Cache) Put(_ context.Context, userID string, h hero.Hero) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byU[userID] = entry{hero: h, storedAt: c.now()}
	return nil
}
