package middleware

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ScriptVenture/checkout-service/internal/domain/dto"
	"github.com/ScriptVenture/checkout-service/internal/i18n"
)

// defaultShardCount is used when no shard count is specified.
const defaultShardCount = 16

// bucket tracks the remaining token budget for one client within a window.
type bucket struct {
	tokens  int
	resetAt time.Time
}

// limiterShard holds a slice of the client buckets behind its own lock.
type limiterShard struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

// ShardedRateLimiter is a fixed-window per-IP rate limiter. Clients are
// spread over multiple shards hashed by FNV-1a to keep lock contention low
// under concurrent traffic.
type ShardedRateLimiter struct {
	shards     []*limiterShard
	shardCount uint32
	limit      int
	window     time.Duration
	stopCh     chan struct{}
	stopOnce   sync.Once
}

// NewRateLimiter creates a sharded rate limiter with the default shard count.
func NewRateLimiter(limit int, window time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(limit, window, defaultShardCount)
}

// NewShardedRateLimiter creates a rate limiter with an explicit shard count.
func NewShardedRateLimiter(limit int, window time.Duration, shardCount int) *ShardedRateLimiter {
	if shardCount <= 0 {
		shardCount = defaultShardCount
	}

	shards := make([]*limiterShard, shardCount)
	for i := range shards {
		shards[i] = &limiterShard{buckets: make(map[string]*bucket)}
	}

	rl := &ShardedRateLimiter{
		shards:     shards,
		shardCount: uint32(shardCount),
		limit:      limit,
		window:     window,
		stopCh:     make(chan struct{}),
	}

	go rl.cleanupLoop()
	return rl
}

func (rl *ShardedRateLimiter) shardFor(clientID string) *limiterShard {
	h := fnv.New32a()
	h.Write([]byte(clientID))
	return rl.shards[h.Sum32()%rl.shardCount]
}

// take consumes one token for the client, returning whether the request is
// allowed and how many tokens remain in the current window.
func (rl *ShardedRateLimiter) take(clientID string) (allowed bool, remaining int) {
	shard := rl.shardFor(clientID)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := time.Now()
	b, ok := shard.buckets[clientID]
	if !ok || now.After(b.resetAt) {
		shard.buckets[clientID] = &bucket{tokens: rl.limit - 1, resetAt: now.Add(rl.window)}
		return true, rl.limit - 1
	}

	if b.tokens <= 0 {
		return false, 0
	}

	b.tokens--
	return true, b.tokens
}

// RateLimit returns a middleware that limits requests per client IP.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := rl.take(c.ClientIP())

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			locale := i18n.GetLocale(c)
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			resp := dto.NewError(dto.ErrCodeRateLimit, i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, locale)).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, resp)
			return
		}

		c.Next()
	}
}

// cleanupLoop periodically drops buckets whose window expired long ago.
func (rl *ShardedRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictExpired()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *ShardedRateLimiter) evictExpired() {
	cutoff := time.Now().Add(-rl.window)
	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, b := range shard.buckets {
			if b.resetAt.Before(cutoff) {
				delete(shard.buckets, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop terminates the background cleanup goroutine.
func (rl *ShardedRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats reports the number of tracked clients, total and per shard.
func (rl *ShardedRateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.buckets)
		total += perShard[i]
		shard.mu.Unlock()
	}
	return total, perShard
}
