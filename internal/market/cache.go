// Package market supplies comparable prices and price history to the
// negotiation engine. Marketplace lookups are cached per query with a
// wall-clock TTL and de-duplicated while in flight.
package market

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/haggle/internal/metrics"
)

// DefaultTTL is used when a non-positive TTL is configured.
const DefaultTTL = time.Hour

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a TTL cache keyed by case-insensitive query text. At most one
// load per key runs at a time; concurrent callers share its result.
// Failed loads are not cached.
type Cache[V any] struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]entry[V]
}

// CacheOption configures a Cache.
type CacheOption[V any] func(*Cache[V])

// WithClock overrides the cache clock.
func WithClock[V any](now func() time.Time) CacheOption[V] {
	return func(c *Cache[V]) {
		c.now = now
	}
}

// NewCache creates an empty cache whose entries live for ttl.
func NewCache[V any](ttl time.Duration, opts ...CacheOption[V]) *Cache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache[V]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[V]),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key normalises query text into a cache key.
func Key(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Get returns the live value for key.
func (c *Cache[V]) Get(key string) (V, bool) {
	key = Key(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !c.now().Before(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key for one TTL.
func (c *Cache[V]) Set(key string, value V) {
	key = Key(key)

	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, expiresAt: c.now().Add(c.ttl)}
	n := len(c.entries)
	c.mu.Unlock()

	metrics.CacheEntries.Set(float64(n))
}

// GetOrLoad returns the cached value for key or runs load once across all
// concurrent callers. The load runs with the context of the caller that
// started it.
func (c *Cache[V]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	key = Key(key)
	if v, ok := c.Get(key); ok {
		metrics.CacheHitsTotal.Inc()
		return v, nil
	}
	metrics.CacheMissesTotal.Inc()

	v, err, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := load(ctx)
		if err != nil {
			return v, err
		}
		c.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Purge drops expired entries and returns how many were removed.
func (c *Cache[V]) Purge() int {
	c.mu.Lock()
	now := c.now()
	removed := 0
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
			removed++
		}
	}
	n := len(c.entries)
	c.mu.Unlock()

	metrics.CacheEntries.Set(float64(n))
	return removed
}

// Len returns the number of stored entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
