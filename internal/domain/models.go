// Package domain defines the core data model for the Auto-API backend:
// bearer tokens, activity log entries, reputation aggregates, curated
// catalog entries, and deployment records. Tokens and the activity ledger
// are pure in-memory entities; only Deployment is mapped with GORM.
package domain

import (
	"time"
)

// Action tags recognized by the reputation ledger. Unrecognized tags are
// accepted but carry zero reputation impact.
const (
	ActionAuthentication          = "authentication"
	ActionAuthenticationError     = "authentication_error"
	ActionAPIEntriesFetch         = "api_entries_fetch"
	ActionCodeGenerationStarted   = "code_generation_started"
	ActionCodeGenerationCompleted = "code_generation_completed"
	ActionCodeGenerationError     = "code_generation_error"
	ActionDeploymentStarted       = "deployment_started"
	ActionDeploymentCompleted     = "deployment_completed"
	ActionDeploymentError         = "deployment_error"
)

// TokenRecord is an issued bearer token bound to a username. Records are
// immutable after creation; they disappear on revocation or expiry.
//
// A token is valid iff it is present in the store and the current time is
// before ExpiresAt. Expired records are treated as absent on lookup.
type TokenRecord struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// User is a known identity, upserted on each successful login.
type User struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`
}

// ActivityEntry is a single immutable event in a user's activity log.
// Metadata is an open JSON-like mapping preserved opaquely by the ledger.
// ReputationImpact is fixed at log time from the static action table.
type ActivityEntry struct {
	ID               string         `json:"id"`
	Action           string         `json:"action"`
	Metadata         map[string]any `json:"metadata"`
	User             string         `json:"user"`
	Timestamp        time.Time      `json:"timestamp"`
	ReputationImpact int            `json:"reputation_impact"`
}

// ReputationEvent is the compact per-action record kept in a user's recent
// reputation history (action, signed impact, time).
type ReputationEvent struct {
	Action    string    `json:"action"`
	Impact    int       `json:"impact"`
	Timestamp time.Time `json:"timestamp"`
}

// ReputationView is the read-side projection of a user's activity log:
// the accumulated score, the level derived from it, and activity counters.
// For a user with no history all fields are zero-valued and Level is
// "Novice"; unknown users are a normal case, not an error.
type ReputationView struct {
	Username      string            `json:"username"`
	Score         int               `json:"score"`
	Level         string            `json:"level"`
	TotalActions  int               `json:"total_actions"`
	LastActivity  *time.Time        `json:"last_activity,omitempty"`
	RecentHistory []ReputationEvent `json:"recent_history,omitempty"`
}

// LeaderboardEntry is one row of the reputation leaderboard.
type LeaderboardEntry struct {
	Username     string `json:"username"`
	Score        int    `json:"score"`
	Level        string `json:"level"`
	TotalActions int    `json:"total_actions"`
}

// APIEntry describes one third-party API in the curated catalog.
// Endpoints is only populated for entries that enumerate REST routes
// (the GitHub endpoint groups).
type APIEntry struct {
	API         string   `json:"API"`
	Description string   `json:"Description"`
	Auth        string   `json:"Auth"`
	HTTPS       bool     `json:"HTTPS"`
	Cors        string   `json:"Cors"`
	Link        string   `json:"Link"`
	Category    string   `json:"Category"`
	SubCategory string   `json:"SubCategory,omitempty"`
	Endpoints   []string `json:"Endpoints,omitempty"`
}

// DeploymentStep is one line of the scripted deployment log.
type DeploymentStep struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Type      string `json:"type"` // info, success, error
}

// Deployment is a simulated deployment record. It is the only persisted
// entity in the system; tokens and the activity ledger live in memory only.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - APIName / Slug: the deployed API and its URL-safe slug.
//   - URL: the public URL the deployment claims to serve.
//   - Status: terminal state of the scripted run (currently "deployed").
//   - UserID: owner of the deployment; indexed for per-user listings.
//   - Code: the generated integration code that was "deployed".
//   - Config / Steps: JSON-serialized request config and step log.
type Deployment struct {
	ID        string            `json:"deployment_id" gorm:"type:char(36);primaryKey"`
	APIName   string            `json:"api_name"      gorm:"type:varchar(255);not null"`
	Slug      string            `json:"api_slug"      gorm:"type:varchar(255);not null;index"`
	URL       string            `json:"url"           gorm:"type:varchar(512);not null"`
	Status    string            `json:"status"        gorm:"type:varchar(32);not null"`
	UserID    string            `json:"user"          gorm:"type:varchar(100);not null;index:idx_user_deployments"`
	Code      string            `json:"-"             gorm:"type:text"`
	Config    map[string]string `json:"config,omitempty" gorm:"serializer:json;type:text"`
	Steps     []DeploymentStep  `json:"logs"          gorm:"serializer:json;type:text"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// TableName returns the database table name for Deployment.
func (Deployment) TableName() string { return "deployments" }
