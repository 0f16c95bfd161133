// Package middleware holds the Gin middleware shared by the HTTP layer:
// request correlation, structured logging, panic recovery, token auth,
// Prometheus metrics, rate limiting, and security headers.
package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// requestIDKey is the Gin context key holding the correlation ID.
	requestIDKey = "requestID"
	// requestIDHeader carries the correlation ID on requests and responses.
	requestIDHeader = "X-Request-ID"
	// maxQueryLogLength caps how much of the raw query string is logged.
	maxQueryLogLength = 2048
)

// RequestID reuses the caller's X-Request-ID when present, otherwise
// generates a UUIDv4. The ID is stored in the Gin context and echoed on
// the response so clients can correlate logs. Install it first so every
// later middleware and handler sees the ID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(requestIDHeader, rid)
		c.Next()
	}
}

// Logger emits a structured access log per request and stores a
// request-scoped zerolog.Logger under the "logger" context key for
// handlers to enrich. Level follows the outcome: error for 5xx or when
// Gin collected errors, warn for 4xx, info otherwise.
//
// RedactingLogger is the variant wired into the router; Logger is the
// plain form for deployments that do not need header scrubbing.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rid, _ := c.Get(requestIDKey)
		uid, _ := c.Get(ctxKeyUserID)
		path := c.FullPath()
		if path == "" {
			// Unmatched route, fall back to the raw path.
			path = c.Request.URL.Path
		}

		l := log.With().
			Str("request_id", ctxString(rid)).
			Str("user", ctxString(uid)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("remote_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("query", clip(c.Request.URL.RawQuery, maxQueryLogLength)).
			Int64("bytes_in", c.Request.ContentLength).
			Logger()

		c.Set("logger", &l)

		c.Next()

		out := l.With().
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Int("bytes_out", c.Writer.Size()).
			Logger()

		switch {
		case len(c.Errors) > 0:
			out.Error().Str("errors", c.Errors.String()).Msg("request")
		case c.Writer.Status() >= 500:
			out.Error().Msg("request")
		case c.Writer.Status() >= 400:
			out.Warn().Msg("request")
		default:
			out.Info().Msg("request")
		}
	}
}

// Recovery turns panics into the standard JSON 500 envelope, keeping the
// correlation ID on the response and logging the stack trace.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				rid, _ := c.Get(requestIDKey)
				log.Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("request_id", ctxString(rid)).
					Msg("panic recovered")

				if !c.Writer.Written() {
					c.Header("Content-Type", "application/json")
					c.Header(requestIDHeader, ctxString(rid))
					c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
						"request_id": ctxString(rid),
						"code":       "internal_error",
						"message":    "internal server error",
					})
					return
				}
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped logger attached by Logger, or a
// bare fallback when none was attached. Never nil.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get("logger"); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Logger()
	return &l
}

// ctxString unwraps a context value as a string, empty when absent or
// of another type.
func ctxString(v any) string {
	s, _ := v.(string)
	return s
}

// clip truncates s to max bytes with an ellipsis. max <= 0 disables it.
func clip(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
