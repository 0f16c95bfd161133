package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// bucketTTL is how long an idle bucket survives before opportunistic
// eviction. gcEvery is the lookup count between eviction sweeps.
const (
	bucketTTL = 10 * time.Minute
	gcEvery   = 5000
)

// keyFunc maps a request to the identity that owns a token bucket.
type keyFunc func(*gin.Context) string

// KeyByUserOrIP keys buckets by the authenticated session user when one
// is bound, falling back to the client IP. Prefixes keep the two
// namespaces from colliding.
func KeyByUserOrIP() keyFunc {
	return func(c *gin.Context) string {
		if user := UserFrom(c); user != "" {
			return "user:" + user
		}
		return "ip:" + c.ClientIP()
	}
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a process-local token-bucket limiter with one bucket
// per identity. Buckets are created on demand and idle ones are evicted
// during lookups, so memory stays bounded without a background goroutine.
// For horizontally scaled deployments a shared limiter would be needed;
// this one covers the single-process case the service ships as.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	keyFn keyFunc

	mu      sync.Mutex
	buckets map[string]*bucket
	lookups uint64
}

// NewRateLimiter builds a limiter replenishing rps tokens per second
// with the given burst size (coerced to at least 1).
func NewRateLimiter(rps float64, burst int, keyFn keyFunc) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		keyFn:   keyFn,
		buckets: make(map[string]*bucket),
	}
}

// bucketFor returns the limiter for key, creating it if absent. Every
// gcEvery lookups it sweeps idle buckets first, so a stale bucket for
// the requested key is evicted rather than refreshed.
func (rl *RateLimiter) bucketFor(key string) *rate.Limiter {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.lookups++
	if rl.lookups >= gcEvery {
		for k, b := range rl.buckets {
			if now.Sub(b.lastSeen) >= bucketTTL {
				delete(rl.buckets, k)
			}
		}
		rl.lookups = 0
	}

	if b, ok := rl.buckets[key]; ok {
		b.lastSeen = now
		return b.limiter
	}

	lim := rate.NewLimiter(rl.rps, rl.burst)
	rl.buckets[key] = &bucket{limiter: lim, lastSeen: now}
	return lim
}

// Handler enforces the per-key limit, answering 429 with the standard
// error envelope and a Retry-After hint when the bucket is empty.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.bucketFor(rl.keyFn(c)).Allow() {
			c.Next()
			return
		}

		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"request_id": c.Writer.Header().Get(requestIDHeader),
			"code":       "rate_limited",
			"message":    "rate limit exceeded",
		})
	}
}
