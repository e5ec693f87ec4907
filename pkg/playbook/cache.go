// Package playbook fetches operator response playbooks by finding kind and
// hands excerpts to the deep-analysis prompt. Everything here is
// best-effort: a missing or unreachable playbook never blocks an event.
package playbook

import (
	"sync"
	"time"
)

// cacheEntry holds cached content with a timestamp for TTL expiration.
type cacheEntry struct {
	content   string
	fetchedAt time.Time
}

// cache is a thread-safe in-memory TTL cache. Expired entries are cleaned
// up lazily on get — no background goroutine.
type cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// get returns cached content if present and not expired.
func (c *cache) get(key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Expired — clean up lazily. Re-check under write lock: a
		// concurrent set() may have replaced the entry with a fresh one
		// between RUnlock and Lock.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return "", false
	}

	return entry.content, true
}

// set stores content with the current timestamp.
func (c *cache) set(key string, content string) {
	c.mu.Lock()
	c.entries[key] = &cacheEntry{
		content:   content,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}
