package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func TestKeyByUserOrIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = net.JoinHostPort("203.0.113.9", "12345")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	// Anonymous requests key by client IP.
	if key := KeyByUserOrIP()(c); !strings.HasPrefix(key, "ip:") || !strings.Contains(key, "203.0.113.9") {
		t.Fatalf("expected ip-based key, got %q", key)
	}

	// A bound session wins over the IP.
	c.Set(ctxKeyUserID, "alice")
	if key := KeyByUserOrIP()(c); key != "user:alice" {
		t.Fatalf("expected user-based key, got %q", key)
	}
}

func TestRateLimiter_BucketReuse(t *testing.T) {
	rl := NewRateLimiter(2.0, 0, KeyByUserOrIP())
	if rl.burst != 1 {
		t.Fatalf("burst <= 0 must coerce to 1, got %d", rl.burst)
	}

	lim := rl.bucketFor("k1")
	if lim == nil {
		t.Fatalf("expected limiter")
	}
	if got := rl.bucketFor("k1"); got != lim {
		t.Fatalf("same key must reuse its bucket")
	}
}

func TestRateLimiter_IdleEviction(t *testing.T) {
	rl := NewRateLimiter(1.0, 1, KeyByUserOrIP())

	rl.mu.Lock()
	rl.buckets["stale"] = &bucket{
		limiter:  rate.NewLimiter(1, 1),
		lastSeen: time.Now().Add(-2 * bucketTTL),
	}
	// Next lookup crosses the sweep threshold.
	rl.lookups = gcEvery - 1
	rl.mu.Unlock()

	_ = rl.bucketFor("fresh")

	rl.mu.Lock()
	_, staleKept := rl.buckets["stale"]
	_, freshKept := rl.buckets["fresh"]
	rl.mu.Unlock()

	if staleKept {
		t.Fatalf("idle bucket survived the sweep")
	}
	if !freshKept {
		t.Fatalf("fresh bucket missing after sweep")
	}
}

func TestRateLimiter_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// rps=1, burst=1: first request passes, immediate second is denied.
	rl := NewRateLimiter(1.0, 1, KeyByUserOrIP())

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Header(requestIDHeader, "rid-1"); c.Next() })
	r.Use(rl.Handler())
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("first request = %d; want 200", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request = %d; want 429", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("Retry-After = %q", got)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("429 body not JSON: %v", err)
	}
	if body["code"] != "rate_limited" || body["request_id"] != "rid-1" {
		t.Fatalf("429 envelope = %v", body)
	}
}
