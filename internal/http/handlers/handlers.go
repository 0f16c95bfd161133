// Handler wiring.
//
// This file declares the service contracts the HTTP layer consumes and the
// Handlers aggregate that binds them. Handlers are transport-thin: they
// validate input, call application services, report outcomes to the activity
// ledger, and translate results into HTTP responses. Depending on abstract
// interfaces keeps transport concerns separate from business logic and lets
// tests substitute stubs.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/mbtq-dev/go-autoapi-backend/internal/catalog"
	"github.com/mbtq-dev/go-autoapi-backend/internal/domain"
	"github.com/mbtq-dev/go-autoapi-backend/internal/http/middleware"
	"github.com/mbtq-dev/go-autoapi-backend/internal/services"
)

//
// Service contracts
//

// AuthService defines the token authority operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use.
type AuthService interface {
	// Authenticate issues a fresh token for username; the password is a
	// placeholder and not verified.
	Authenticate(username, password string) (*domain.TokenRecord, error)
	// RevokeToken removes a token, reporting whether a removal occurred.
	RevokeToken(token string) bool
}

// Ledger defines the activity/reputation operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use.
type Ledger interface {
	// LogEvent appends an event to user's activity log.
	LogEvent(action string, metadata map[string]any, user string) (*domain.ActivityEntry, error)
	// UserLogs returns user's entries newest first, truncated to limit.
	UserLogs(username string, limit int) ([]domain.ActivityEntry, error)
	// Reputation returns the derived reputation view for username.
	Reputation(username string) domain.ReputationView
	// Leaderboard returns all known users by descending score.
	Leaderboard(limit int) []domain.LeaderboardEntry
}

// Generator renders integration scaffolds for catalog entries.
type Generator interface {
	Generate(in services.GenerateInput) (string, error)
}

// Deployer runs the simulated deployment pipeline and manages records.
// Implementations must honor the provided context for cancellation.
type Deployer interface {
	Deploy(ctx context.Context, apiName, code string, config map[string]string, user string) (*domain.Deployment, error)
	Status(ctx context.Context, id string) (*services.DeploymentSummary, error)
	UserDeployments(ctx context.Context, user string, limit int) ([]services.DeploymentSummary, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for authentication, the catalog, code
// generation, deployments, and reputation reporting.
type Handlers struct {
	auth   AuthService
	ledger Ledger
	cat    *catalog.Catalog
	gen    Generator
	dep    Deployer
}

// New constructs a Handlers instance bound to the given services.
func New(auth AuthService, ledger Ledger, cat *catalog.Catalog, gen Generator, dep Deployer) *Handlers {
	return &Handlers{auth: auth, ledger: ledger, cat: cat, gen: gen, dep: dep}
}

// userID extracts the authenticated username set by the token guard.
// Guarded routes always have it; open routes may not.
func userID(c *gin.Context) string {
	return middleware.UserFrom(c)
}

// logEvent reports an outcome to the ledger, logging (but not failing the
// request) when the ledger rejects it. Ledger bookkeeping must never break
// the user-visible operation.
func (h *Handlers) logEvent(c *gin.Context, action string, metadata map[string]any, user string) {
	if user == "" {
		return
	}
	if _, err := h.ledger.LogEvent(action, metadata, user); err != nil {
		middleware.LoggerFrom(c).Warn().
			Err(err).
			Str("action", action).
			Msg("ledger rejected event")
	}
}
