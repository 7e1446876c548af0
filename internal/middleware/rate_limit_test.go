package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewShardedRateLimiter(t *testing.T) {
	tests := []struct {
		name       string
		shardCount int
		wantShards int
	}{
		{name: "default shards when zero", shardCount: 0, wantShards: defaultShardCount},
		{name: "default shards when negative", shardCount: -1, wantShards: defaultShardCount},
		{name: "custom shard count", shardCount: 8, wantShards: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(10, time.Minute, tt.shardCount)
			defer rl.Stop()

			assert.Len(t, rl.shards, tt.wantShards)
		})
	}
}

func TestRateLimitAllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.RateLimit())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitRejectsOverLimit(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.RateLimit())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)
	}

	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", last.Header().Get("Retry-After"))
	assert.Contains(t, last.Body.String(), "rate_limit_exceeded")
}

func TestRateLimitIndependentPerIP(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.RateLimit())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	for _, addr := range []string{"10.0.1.1:1", "10.0.1.2:1", "10.0.1.3:1"} {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitWindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 20*time.Millisecond)
	defer rl.Stop()

	allowed, _ := rl.take("client")
	assert.True(t, allowed)

	allowed, _ = rl.take("client")
	assert.False(t, allowed)

	time.Sleep(30 * time.Millisecond)

	allowed, remaining := rl.take("client")
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestRateLimiterStats(t *testing.T) {
	rl := NewShardedRateLimiter(5, time.Minute, 4)
	defer rl.Stop()

	for _, id := range []string{"a", "b", "c"} {
		rl.take(id)
	}

	total, perShard := rl.Stats()
	assert.Equal(t, 3, total)
	assert.Len(t, perShard, 4)
}

func TestRateLimiterEvictExpired(t *testing.T) {
	rl := NewShardedRateLimiter(5, 10*time.Millisecond, 2)
	defer rl.Stop()

	rl.take("stale")
	time.Sleep(30 * time.Millisecond)
	rl.evictExpired()

	total, _ := rl.Stats()
	assert.Equal(t, 0, total)
}

func TestRateLimiterStopIdempotent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	rl.Stop()
	assert.NotPanics(t, func() { rl.Stop() })
}
