// Package cache provides a small concurrency-safe in-memory cache, used to
// avoid refetching slow-moving catalog data like the genre list.
package cache

import (
	"sync"
)

type Cache[K comparable, V any] struct {
	entries map[K]V
	mu      sync.RWMutex
}

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]V),
	}
}

func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	return entry, ok
}

func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *Cache[K, V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetOrFill returns the cached value for key, calling fill and storing its
// result on a miss. A fill error is returned without caching.
func (c *Cache[K, V]) GetOrFill(key K, fill func() (V, error)) (V, error) {
	if entry, ok := c.Get(key); ok {
		return entry, nil
	}

	value, err := fill()
	if err != nil {
		return value, err
	}

	c.Set(key, value)
	return value, nil
}
