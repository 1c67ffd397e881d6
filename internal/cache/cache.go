// Package cache caches rendered markup keyed by draft fingerprint.
//
// Assembly is deterministic, so a fingerprint hit is always safe to
// serve. The cache is best-effort: misses and backend failures degrade
// to re-rendering, never to errors the user sees.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RenderCache stores rendered markup by fingerprint.
type RenderCache interface {
	// Get returns the cached markup and whether it was present.
	Get(ctx context.Context, fingerprint string) (string, bool)
	// Set stores markup for a fingerprint.
	Set(ctx context.Context, fingerprint, markup string) error
}

// RedisCache is the production RenderCache backed by Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis at addr. Entries expire after ttl;
// a zero ttl keeps them until evicted.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

const keyPrefix = "lexdraft:render:"

// Get implements RenderCache. Backend errors read as cache misses.
func (r *RedisCache) Get(ctx context.Context, fingerprint string) (string, bool) {
	val, err := r.client.Get(ctx, keyPrefix+fingerprint).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set implements RenderCache.
func (r *RedisCache) Set(ctx context.Context, fingerprint, markup string) error {
	return r.client.Set(ctx, keyPrefix+fingerprint, markup, r.ttl).Err()
}

// Close releases the Redis connection.
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// MemoryCache is an in-process RenderCache for tests and single-user
// CLI runs.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

// Get implements RenderCache.
func (m *MemoryCache) Get(_ context.Context, fingerprint string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	markup, ok := m.entries[fingerprint]
	return markup, ok
}

// Set implements RenderCache.
func (m *MemoryCache) Set(_ context.Context, fingerprint, markup string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[fingerprint] = markup
	return nil
}
