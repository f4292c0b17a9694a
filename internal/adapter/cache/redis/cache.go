// Package redis holds the shared snapshot cache for multi-instance
// deployments; the TTL is enforced server-side by key expiry.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"liferpg/internal/domain/hero"
)

const keyPrefix = "hero:snapshot:"

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(addr string, ttl time.Duration) (*Cache, error) {
	if addr == "" {
		return nil, errors.New("redis: addr is required")
	}
	if ttl <= 0 {
		ttl = hero.SnapshotTTL
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &Cache{client: client, ttl: ttl}, nil
}

// NewCacheWithClient wraps an existing client. Tests use this with
// miniredis.
func NewCacheWithClient(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = hero.SnapshotTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, userID string) (hero.Hero, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return hero.Hero{}, false, nil
	}
	if err != nil {
		return hero.Hero{}, false, fmt.Errorf("snapshot cache get: %w", err)
	}
	var h hero.Hero
	if err := json.Unmarshal(raw, &h); err != nil {
		// A corrupt snapshot behaves like a miss; the store is authoritative.
		return hero.Hero{}, false, nil
	}
	return h, true, nil
}

func (c *Cache) Put(ctx context.Context, userID string, h hero.Hero) error {
	raw, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("snapshot cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+userID, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("snapshot cache put: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}
