// Package services – DeployService
//
// This file implements the simulated deployment pipeline. A deployment is a
// scripted sequence of log lines with a small delay between steps to mimic a
// multi-step build; no build, network call, or external system interaction
// occurs. The finished record is persisted through the deployment repository
// so it can be queried and deleted later.
//
// Callers must not hold any ledger or token-store lock across Deploy: the
// simulated delay is deliberate and would serialize unrelated requests.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mbtq-dev/go-autoapi-backend/internal/domain"
	"github.com/mbtq-dev/go-autoapi-backend/internal/repo"
)

// DeploymentSummary is the compact read model returned by Status and
// UserDeployments; it omits the stored code and step log.
type DeploymentSummary struct {
	DeploymentID string    `json:"deployment_id"`
	APIName      string    `json:"api_name"`
	URL          string    `json:"url"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DeployService runs the scripted deployment simulation and manages the
// persisted deployment records.
type DeployService struct {
	// DB is the GORM handle used for deployment persistence.
	DB *gorm.DB

	// StepDelay is the pause between scripted steps. Tests set it to zero.
	StepDelay time.Duration

	// BaseURL is the host the deployment claims to serve from.
	BaseURL string
}

// NewDeployService constructs a DeployService with production pacing.
func NewDeployService(db *gorm.DB, stepDelay time.Duration, baseURL string) *DeployService {
	if baseURL == "" {
		baseURL = "https://mbtq.dev"
	}
	return &DeployService{DB: db, StepDelay: stepDelay, BaseURL: baseURL}
}

// Deploy runs the scripted pipeline for apiName on behalf of user and
// persists the resulting record. The context cancels the simulation between
// steps; a canceled run persists nothing.
//
// Errors:
//   - ErrEmptyAPIName / ErrEmptyCode for missing inputs.
//   - ctx.Err() when the context is canceled mid-run.
//   - The underlying DB error if persisting the record fails.
func (s *DeployService) Deploy(ctx context.Context, apiName, code string, config map[string]string, user string) (*domain.Deployment, error) {
	apiName = strings.TrimSpace(apiName)
	if apiName == "" {
		return nil, ErrEmptyAPIName
	}
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyCode
	}

	slug := Slugify(apiName)
	url := fmt.Sprintf("%s/api/%s", strings.TrimRight(s.BaseURL, "/"), slug)
	component := componentName(apiName)

	script := []domain.DeploymentStep{
		{Message: "Initiating deployment", Type: "info"},
		{Message: "Creating API endpoint files", Type: "info"},
		{Message: fmt.Sprintf("Created api/%s.js", slug), Type: "success"},
		{Message: "Generating React component", Type: "info"},
		{Message: fmt.Sprintf("Created components/%s.jsx", component), Type: "success"},
		{Message: "Writing configuration files", Type: "info"},
		{Message: "Configuration files ready", Type: "success"},
		{Message: "Pushing to GitHub", Type: "info"},
		{Message: "Code committed to repository", Type: "success"},
		{Message: "Triggering deployment", Type: "info"},
		{Message: "Building production bundle", Type: "info"},
		{Message: "Build completed successfully", Type: "success"},
		{Message: fmt.Sprintf("Deploying to %s", s.BaseURL), Type: "info"},
		{Message: fmt.Sprintf("Live at %s", url), Type: "success"},
		{Message: "Deployment complete", Type: "success"},
	}

	steps := make([]domain.DeploymentStep, 0, len(script))
	for i, st := range script {
		if i > 0 && s.StepDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.StepDelay):
			}
		}
		st.Timestamp = time.Now().UTC().Format("15:04:05")
		steps = append(steps, st)
	}

	dep := &domain.Deployment{
		ID:      uuid.NewString(),
		APIName: apiName,
		Slug:    slug,
		URL:     url,
		Status:  "deployed",
		UserID:  user,
		Code:    code,
		Config:  config,
		Steps:   steps,
	}
	if err := repo.CreateDeployment(ctx, s.DB, dep); err != nil {
		return nil, err
	}

	log.Info().
		Str("user", user).
		Str("api_name", apiName).
		Str("deployment_id", dep.ID).
		Str("url", url).
		Msg("deployment recorded")
	return dep, nil
}

// Status returns the summary of a deployment by id.
//
// Errors:
//   - ErrDeploymentNotFound when no record exists for id.
func (s *DeployService) Status(ctx context.Context, id string) (*DeploymentSummary, error) {
	dep, err := repo.GetDeployment(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrDeploymentNotFound
		}
		return nil, err
	}
	return summarize(dep), nil
}

// UserDeployments returns user's deployments newest first, truncated to
// limit. Non-positive limits fall back to 10, matching the public API
// default.
func (s *DeployService) UserDeployments(ctx context.Context, user string, limit int) ([]DeploymentSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	deps, err := repo.ListDeploymentsByUser(ctx, s.DB, user, limit)
	if err != nil {
		return nil, err
	}
	out := make([]DeploymentSummary, 0, len(deps))
	for i := range deps {
		out = append(out, *summarize(&deps[i]))
	}
	return out, nil
}

// Delete removes a deployment record, reporting whether a removal occurred.
// Deleting an absent deployment returns false, never an error.
func (s *DeployService) Delete(ctx context.Context, id string) (bool, error) {
	return repo.DeleteDeployment(ctx, s.DB, id)
}

// Count returns the total number of deployment records.
func (s *DeployService) Count(ctx context.Context) (int64, error) {
	return repo.CountDeployments(ctx, s.DB)
}

func summarize(d *domain.Deployment) *DeploymentSummary {
	return &DeploymentSummary{
		DeploymentID: d.ID,
		APIName:      d.APIName,
		URL:          d.URL,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
