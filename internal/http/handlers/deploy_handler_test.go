package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mbtq-dev/go-autoapi-backend/internal/domain"
	"github.com/mbtq-dev/go-autoapi-backend/internal/services"
)

func TestDeploy_Success(t *testing.T) {
	f := newFixture()
	f.dep.deploy = func(ctx context.Context, apiName, code string, config map[string]string, user string) (*domain.Deployment, error) {
		return &domain.Deployment{
			ID:      "dep-1",
			APIName: apiName,
			Slug:    "some-api",
			URL:     "https://mbtq.dev/api/some-api",
			Status:  "deployed",
			UserID:  user,
			Config:  config,
		}, nil
	}

	r := newRouter()
	r.POST("/deploy", asUser("alice"), f.h.Deploy)

	body := bytes.NewBufferString(`{"api_name":"Some API","code":"// c","config":{"region":"eu"}}`)
	req := httptest.NewRequest(http.MethodPost, "/deploy", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["deployment_id"] != "dep-1" || resp["url"] != "https://mbtq.dev/api/some-api" {
		t.Fatalf("resp = %v", resp)
	}

	// started then completed
	if len(f.ledger.events) != 2 ||
		f.ledger.events[0] != domain.ActionDeploymentStarted ||
		f.ledger.events[1] != domain.ActionDeploymentCompleted {
		t.Fatalf("events = %v", f.ledger.events)
	}
}

func TestDeploy_MissingFields(t *testing.T) {
	f := newFixture()

	r := newRouter()
	r.POST("/deploy", asUser("alice"), f.h.Deploy)

	req := httptest.NewRequest(http.MethodPost, "/deploy", bytes.NewBufferString(`{"api_name":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if len(f.ledger.events) != 1 || f.ledger.events[0] != domain.ActionDeploymentError {
		t.Fatalf("events = %v", f.ledger.events)
	}
}

func TestDeploy_PipelineFailure(t *testing.T) {
	f := newFixture()
	f.dep.deploy = func(ctx context.Context, apiName, code string, config map[string]string, user string) (*domain.Deployment, error) {
		return nil, errors.New("disk full")
	}

	r := newRouter()
	r.POST("/deploy", asUser("alice"), f.h.Deploy)

	body := bytes.NewBufferString(`{"api_name":"Some API","code":"// c"}`)
	req := httptest.NewRequest(http.MethodPost, "/deploy", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var env map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	if env["code"] != ErrCodeDeployFailed {
		t.Fatalf("envelope = %v", env)
	}
	if len(f.ledger.events) != 2 || f.ledger.events[1] != domain.ActionDeploymentError {
		t.Fatalf("events = %v", f.ledger.events)
	}
}

func TestDeployments_ListAndLimit(t *testing.T) {
	f := newFixture()
	var gotUser string
	var gotLimit int
	f.dep.list = func(ctx context.Context, user string, limit int) ([]services.DeploymentSummary, error) {
		gotUser, gotLimit = user, limit
		return []services.DeploymentSummary{{DeploymentID: "dep-1"}}, nil
	}

	r := newRouter()
	r.GET("/deployments", asUser("alice"), f.h.Deployments)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deployments?limit=3", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotUser != "alice" || gotLimit != 3 {
		t.Fatalf("list called with (%q, %d)", gotUser, gotLimit)
	}
	var resp DeploymentsResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Count != 1 || resp.Deployments[0].DeploymentID != "dep-1" {
		t.Fatalf("resp = %+v", resp)
	}

	// Malformed limit
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deployments?limit=-2", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative limit status = %d", w.Code)
	}
}

func TestDeploymentStatus_NotFound(t *testing.T) {
	f := newFixture()
	f.dep.status = func(ctx context.Context, id string) (*services.DeploymentSummary, error) {
		return nil, services.ErrDeploymentNotFound
	}

	r := newRouter()
	r.GET("/deployments/:id", asUser("alice"), f.h.DeploymentStatus)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deployments/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestDeleteDeployment(t *testing.T) {
	f := newFixture()
	found := true
	f.dep.deleteF = func(ctx context.Context, id string) (bool, error) {
		was := found
		found = false
		return was, nil
	}

	r := newRouter()
	r.DELETE("/deployments/:id", asUser("alice"), f.h.DeleteDeployment)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/deployments/dep-1", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}

	// Second delete: gone.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/deployments/dep-1", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", w.Code)
	}
}
