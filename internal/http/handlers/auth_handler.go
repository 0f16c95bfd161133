// Authentication HTTP handlers.
//
// This file exposes the login/logout endpoints backed by the token
// authority:
//   - POST /auth/login   (issue a bearer token)
//   - POST /auth/logout  (revoke the presented token)
//
// Login never verifies the password; any value or absence is accepted.
// Successful logins and rejected usernames are both reported to the
// activity ledger (authentication / authentication_error).
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mbtq-dev/go-autoapi-backend/internal/domain"
	"github.com/mbtq-dev/go-autoapi-backend/internal/http/middleware"
	"github.com/mbtq-dev/go-autoapi-backend/internal/services"
)

// LoginRequest is the JSON payload for issuing a token.
type LoginRequest struct {
	// Username identifies the caller; letters, digits, '_' and '-' only.
	Username string `json:"username" binding:"required,min=1,max=100" example:"alice"`
	// Password is accepted but not verified (external identity system owns
	// credential checks).
	Password string `json:"password,omitempty" example:"hunter2"`
}

// LoginResponse is the JSON payload returned on successful login.
type LoginResponse struct {
	Success   bool   `json:"success" example:"true"`
	Token     string `json:"token"`
	Username  string `json:"username" example:"alice"`
	ExpiresAt string `json:"expires_at" example:"2026-01-02T15:04:05Z"`
	Message   string `json:"message" example:"authentication successful"`
}

// Login godoc
// @ID          login
// @Summary     Issue a bearer token
// @Description Issues a 24h bearer token for the given username. The password is not verified.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object} handlers.LoginResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid username"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username required (1-100 chars)")
		return
	}

	rec, err := h.auth.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmptyUsername) || errors.Is(err, services.ErrInvalidUsername) {
			// Attribute the failed attempt to the claimed name when it is at
			// least non-empty, so repeated abuse shows up in the ledger.
			if name := strings.TrimSpace(req.Username); name != "" {
				h.logEvent(c, domain.ActionAuthenticationError,
					map[string]any{"reason": err.Error()}, name)
			}
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeLoginFailed, err.Error())
		return
	}

	h.logEvent(c, domain.ActionAuthentication,
		map[string]any{"username": rec.Username}, rec.Username)

	ok(c, http.StatusOK, LoginResponse{
		Success:   true,
		Token:     rec.Token,
		Username:  rec.Username,
		ExpiresAt: rec.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
		Message:   "authentication successful",
	})
}

// Logout godoc
// @ID          logout
// @Summary     Revoke the presented token
// @Description Revokes the X-MBTQ-Token the request authenticated with. Idempotent.
// @Tags        Auth
// @Produce     json
//
// @Param       X-MBTQ-Token  header  string  true  "Bearer token"
//
// @Success     204  {string} string "No Content"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid token"
// @Router      /auth/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	// The guard already validated the token; revocation of an absent token
	// is still a successful logout.
	h.auth.RevokeToken(c.GetHeader(middleware.HeaderToken))
	noContent(c)
}
