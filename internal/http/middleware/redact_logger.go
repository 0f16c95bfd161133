package middleware

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Patterns scrubbed from query strings and header values before they
// reach the logs. UUIDs go first so the loose phone pattern cannot eat
// the digit runs inside them.
var (
	scrubUUID  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	scrubEmail = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	scrubPhone = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

// Header names whose values are always replaced wholesale. The session
// token header is included so issued bearer tokens never land in logs.
var maskedByDefault = []string{"authorization", "cookie", "set-cookie", strings.ToLower(HeaderToken)}

// RedactOptions adds extra header names to the built-in mask set.
// Matching is case-insensitive.
type RedactOptions struct {
	MaskHeaders []string
}

func scrub(s string) string {
	if s == "" {
		return s
	}
	s = scrubUUID.ReplaceAllString(s, "[REDACTED:id]")
	s = scrubEmail.ReplaceAllString(s, "[REDACTED:email]")
	s = scrubPhone.ReplaceAllString(s, "[REDACTED:phone]")
	return s
}

// RedactingLogger logs each request with PII scrubbed from query
// strings and headers, and masked values for sensitive headers. Bodies
// are never logged. Level follows the status: info, warn for 4xx,
// error for 5xx.
//
// Scrubbing reduces but does not eliminate leak risk; clients should
// still keep PII out of query strings where possible.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	masked := make(map[string]struct{}, len(maskedByDefault)+len(opts.MaskHeaders))
	for _, h := range maskedByDefault {
		masked[h] = struct{}{}
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			masked[h] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		safeQuery := scrub(c.Request.URL.RawQuery)

		safeHeaders := make(map[string]string, len(c.Request.Header))
		for k, vv := range c.Request.Header {
			if _, ok := masked[strings.ToLower(k)]; ok {
				safeHeaders[k] = "[REDACTED]"
				continue
			}
			safeHeaders[k] = scrub(strings.Join(vv, ", "))
		}

		c.Next()

		status := c.Writer.Status()
		rid := c.Writer.Header().Get(requestIDHeader)
		if rid == "" {
			rid = c.GetHeader(requestIDHeader)
		}

		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		}

		ev.
			Str("request_id", rid).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", safeQuery).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Interface("headers", safeHeaders).
			Msg("http_request")
	}
}
