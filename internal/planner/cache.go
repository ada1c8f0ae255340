package planner

import (
	"sync"
	"time"
)

// layoutCache is a process-wide TTL cache of validated layouts keyed by the
// canonicalized message hash. A stale entry is dropped on read. Concurrent
// misses for the same key may each call the model; the duplicate work is
// accepted in exchange for not holding a lock across a network call.
type layoutCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

type cacheEntry struct {
	layout  Layout
	expires time.Time
}

func newLayoutCache(ttl time.Duration) *layoutCache {
	return &layoutCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

func (c *layoutCache) get(key string) (Layout, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return Layout{}, false
	}
	if time.Now().After(entry.expires) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return Layout{}, false
	}
	return entry.layout, true
}

func (c *layoutCache) put(key string, layout Layout) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{layout: layout, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *layoutCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
