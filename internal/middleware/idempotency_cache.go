package middleware

import (
	"sync"
	"time"
)

// cachedResponse is a stored HTTP response replayed for duplicate requests.
type cachedResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	storedAt   time.Time
}

// idempotencyCache is an in-memory TTL cache keyed by request fingerprint.
type idempotencyCache struct {
	mu    sync.RWMutex
	items map[string]*cachedResponse
	ttl   time.Duration
}

func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	c := &idempotencyCache{
		items: make(map[string]*cachedResponse),
		ttl:   ttl,
	}
	go c.cleanupLoop()
	return c
}

// Get returns a cached response if present and not expired.
func (c *idempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok || time.Since(resp.storedAt) > c.ttl {
		return nil, false
	}
	return resp, true
}

// Set stores a response under the given fingerprint.
func (c *idempotencyCache) Set(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.storedAt = time.Now()
	c.items[key] = resp
}

// Len reports the number of cached entries, expired included.
func (c *idempotencyCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *idempotencyCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.evictExpired()
	}
}

func (c *idempotencyCache) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, resp := range c.items {
		if now.Sub(resp.storedAt) > c.ttl {
			delete(c.items, key)
		}
	}
}
