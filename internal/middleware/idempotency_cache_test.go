package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIdempotencyCacheSetGet(t *testing.T) {
	cache := newIdempotencyCache(time.Minute)

	resp := &cachedResponse{StatusCode: http.StatusOK, Body: []byte(`{"ok":true}`)}
	cache.Set("fp-1", resp)

	got, ok := cache.Get("fp-1")
	assert.True(t, ok)
	assert.Equal(t, http.StatusOK, got.StatusCode)
	assert.Equal(t, []byte(`{"ok":true}`), got.Body)
}

func TestIdempotencyCacheMiss(t *testing.T) {
	cache := newIdempotencyCache(time.Minute)

	_, ok := cache.Get("missing")
	assert.False(t, ok)
}

func TestIdempotencyCacheExpiry(t *testing.T) {
	cache := newIdempotencyCache(10 * time.Millisecond)

	cache.Set("fp-2", &cachedResponse{StatusCode: http.StatusOK})
	time.Sleep(30 * time.Millisecond)

	_, ok := cache.Get("fp-2")
	assert.False(t, ok)
}

func TestIdempotencyCacheEviction(t *testing.T) {
	cache := newIdempotencyCache(10 * time.Millisecond)

	cache.Set("fp-3", &cachedResponse{StatusCode: http.StatusOK})
	time.Sleep(30 * time.Millisecond)
	cache.evictExpired()

	assert.Equal(t, 0, cache.Len())
}
