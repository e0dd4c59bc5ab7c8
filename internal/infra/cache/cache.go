// Package cache provides the in-memory TTL cache backing entity snapshots.
// Snapshots are cheap to refetch, so eviction is purely time based; a Redis
// backend could replace this without touching callers.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Snapshot is a thread-safe in-memory cache with TTL. Keys follow the
// "<resource>:<scope>" convention so a whole resource can be invalidated
// after a mutation.
type Snapshot[T any] struct {
	mu     sync.RWMutex
	items  map[string]entry[T]
	ttl    time.Duration
	hits   uint64
	misses uint64
}

// New creates a snapshot cache with the given TTL.
func New[T any](ttl time.Duration) *Snapshot[T] {
	c := &Snapshot[T]{
		items: make(map[string]entry[T]),
		ttl:   ttl,
	}
	go c.sweep()
	return c
}

// Get retrieves a value. Returns false if absent or expired.
func (c *Snapshot[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok || time.Now().After(e.expiresAt) {
		c.misses++
		var zero T
		return zero, false
	}
	c.hits++
	return e.value, true
}

// Set stores a value with the configured TTL.
func (c *Snapshot[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = entry[T]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Delete removes one key.
func (c *Snapshot[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// InvalidatePrefix drops every key under a resource prefix. Mutations call
// this so the next list fetch sees the write: creating a payment drops all
// "payments:" snapshots regardless of scope.
func (c *Snapshot[T]) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
		}
	}
}

// Stats reports cumulative hit and miss counts since startup.
func (c *Snapshot[T]) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// sweep periodically removes expired entries so abandoned scopes don't
// accumulate.
func (c *Snapshot[T]) sweep() {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for k, v := range c.items {
			if now.After(v.expiresAt) {
				delete(c.items, k)
			}
		}
		c.mu.Unlock()
	}
}
