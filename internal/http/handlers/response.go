// Package handlers implements the public HTTP API: session auth,
// catalog browsing, code generation, deployments, and the reputation
// ledger. Every endpoint answers JSON; failures share one envelope so
// clients never have to guess the shape of an error.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mbtq-dev/go-autoapi-backend/internal/http/middleware"
)

// ErrorResponse is the error envelope every endpoint returns. Code is a
// stable machine-readable string (see errors.go), Message is safe to
// show to users, and RequestID echoes X-Request-ID for log correlation.
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	Code      string `json:"code" example:"not_found"`
	Message   string `json:"message" example:"resource not found"`
}

// fail aborts the request with the standard envelope. Server-side
// failures (5xx) are additionally logged with the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	})
}

// Fail exposes fail to the router for NoRoute and NoMethod fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
