// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the bearer-token guard. The token travels in the
// custom X-MBTQ-Token header; its raw string value is passed unmodified to
// the token authority. A missing, unknown, or expired token yields a 401
// with the standard error envelope; the guard never distinguishes between
// those cases to the client.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// HeaderToken is the custom header carrying the bearer token.
	HeaderToken = "X-MBTQ-Token"

	// ctxKeyUserID is the Gin context key under which the authenticated
	// username is stored for handlers and downstream middleware.
	ctxKeyUserID = "userID"
)

// TokenVerifier resolves a raw bearer token to a username. ok is false for
// unknown and expired tokens alike.
type TokenVerifier interface {
	VerifyToken(token string) (username string, ok bool)
}

// RequireToken returns a guard that rejects requests without a valid
// X-MBTQ-Token header. On success the bound username is stored in the Gin
// context under "userID".
func RequireToken(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(HeaderToken)
		if token == "" {
			unauthorized(c, "token required")
			return
		}
		user, ok := v.VerifyToken(token)
		if !ok {
			unauthorized(c, "invalid or expired token")
			return
		}
		c.Set(ctxKeyUserID, user)
		c.Next()
	}
}

// OptionalToken resolves the token when one is presented but never rejects
// the request. Open endpoints use it so actions can still be attributed to
// a user when possible.
func OptionalToken(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := c.GetHeader(HeaderToken); token != "" {
			if user, ok := v.VerifyToken(token); ok {
				c.Set(ctxKeyUserID, user)
			}
		}
		c.Next()
	}
}

// UserFrom returns the authenticated username stored by the guard, or ""
// when the request is anonymous.
func UserFrom(c *gin.Context) string {
	if v, ok := c.Get(ctxKeyUserID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get("X-Request-ID"),
		"code":       "unauthorized",
		"message":    msg,
	})
}
