// Package cache provides a minimal in-process TTL cache for read-mostly
// reference data such as the topic list.
package cache

import (
	"sync"
	"time"
)

// TTL caches a single value for a fixed duration.
type TTL[T any] struct {
	mu      sync.Mutex
	value   T
	expires time.Time
	ttl     time.Duration
	set     bool
}

// NewTTL creates a cache whose entries live for ttl.
func NewTTL[T any](ttl time.Duration) *TTL[T] {
	return &TTL[T]{ttl: ttl}
}

// Get returns the cached value and whether it is still fresh.
func (c *TTL[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.set || time.Now().After(c.expires) {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Set stores a value and resets its expiry.
func (c *TTL[T]) Set(value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = value
	c.expires = time.Now().Add(c.ttl)
	c.set = true
}

// Invalidate discards the cached value.
func (c *TTL[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set = false
}
