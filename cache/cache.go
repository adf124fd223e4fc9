package cache

import "sync"

// Cache is a small thread-safe memoization cache. It backs the probe
// resolver so expensive lookups (VCS metadata, platform facts) run once
// per process even when consulted at both init and finalize.
type Cache[K comparable, V any] struct {
	mu    sync.RWMutex
	store map[K]V
}

// NewCache creates an empty Cache.
func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{store: make(map[K]V)}
}

// Get returns the value for k and whether it was present.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.store[k]
	return v, ok
}

// Set stores v under k, replacing any existing value.
func (c *Cache[K, V]) Set(k K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[k] = v
}

// GetOrSet returns the cached value for k, computing and storing it via
// compute on first use. A compute error is returned without caching, so a
// transient failure does not poison the cache.
func (c *Cache[K, V]) GetOrSet(k K, compute func() (V, error)) (V, error) {
	if v, ok := c.Get(k); ok {
		return v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.store[k]; ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}
	c.store[k] = v
	return v, nil
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}
