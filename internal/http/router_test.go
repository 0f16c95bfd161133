package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mbtq-dev/go-autoapi-backend/internal/catalog"
	"github.com/mbtq-dev/go-autoapi-backend/internal/config"
	"github.com/mbtq-dev/go-autoapi-backend/internal/domain"
	"github.com/mbtq-dev/go-autoapi-backend/internal/http/middleware"
	"github.com/mbtq-dev/go-autoapi-backend/internal/services"
)

// --- test DB helper (pure-Go sqlite, no CGO) ---
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Deployment{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testConfig() config.Config {
	return config.Config{
		APIBasePath:     "/api/v1",
		RateRPS:         1000,
		RateBurst:       1000,
		TokenTTL:        time.Hour,
		DeployStepDelay: 0, // no pacing in tests
		DeployBaseURL:   "https://mbtq.dev",
		CORS:            config.CORSConfig{AllowedOrigins: nil},
		Security:        config.SecurityConfig{EnableHSTS: false},
		OTEL:            config.OTELConfig{ServiceName: "test-svc"},
	}
}

func newTestRouter(t *testing.T) (*gin.Engine, *services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := services.NewAuthService(time.Hour)
	ledger := services.NewReputationService()
	RegisterRoutes(r, newTestDB(t), auth, ledger, catalog.New(), testConfig())
	return r, auth
}

func TestRegisterRoutes_HealthMetricsFallbacksCORS(t *testing.T) {
	r, _ := newTestRouter(t)

	// /health works
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	// CORS (AllowAllOrigins) → header "*"
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}

	// /metrics is wired
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || w.Body.Len() == 0 {
		t.Fatalf("GET /metrics bad: code=%d len=%d", w.Code, w.Body.Len())
	}

	// Service banner at /
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d", w.Code)
	}

	// NoRoute → 404 with envelope
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope = %d", w.Code)
	}
	var env map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("404 body not JSON: %v", err)
	}
	if env["code"] != "not_found" {
		t.Fatalf("404 envelope = %v", env)
	}

	// NoMethod → 405
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/health", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("DELETE /health = %d", w.Code)
	}
}

func TestRegisterRoutes_GuardedRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/generate"},
		{http.MethodPost, "/api/v1/deploy"},
		{http.MethodGet, "/api/v1/deployments"},
		{http.MethodGet, "/api/v1/logs"},
		{http.MethodGet, "/api/v1/reputation"},
		{http.MethodGet, "/api/v1/reputation/leaderboard"},
		{http.MethodPost, "/api/v1/auth/logout"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(route.method, route.path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token = %d; want 401", route.method, route.path, w.Code)
		}
	}

	// Catalog routes stay open.
	for _, path := range []string{"/api/v1/entries", "/api/v1/categories", "/api/v1/github/endpoints"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s anonymous = %d; want 200", path, w.Code)
		}
	}
}

// Full user session: login, browse, generate, deploy, inspect reputation.
func TestRegisterRoutes_UserSession(t *testing.T) {
	r, _ := newTestRouter(t)

	do := func(method, path, token, body string) *httptest.ResponseRecorder {
		t.Helper()
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		if token != "" {
			req.Header.Set(middleware.HeaderToken, token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// Login
	w := do(http.MethodPost, "/api/v1/auth/login", "", `{"username":"alice","password":"x"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d body=%s", w.Code, w.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil || login.Token == "" {
		t.Fatalf("login body: %v %s", err, w.Body.String())
	}

	// Browse catalog with the token (earns ledger credit).
	if w = do(http.MethodGet, "/api/v1/entries?search=gitlab", login.Token, ""); w.Code != http.StatusOK {
		t.Fatalf("entries = %d", w.Code)
	}

	// Generate code for a known entry.
	w = do(http.MethodPost, "/api/v1/generate", login.Token, `{"api_name":"GitLab API"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("generate = %d body=%s", w.Code, w.Body.String())
	}
	var gen struct {
		Code string `json:"code"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &gen)
	if gen.Code == "" {
		t.Fatalf("no code generated")
	}

	// Deploy it.
	dep, _ := json.Marshal(map[string]any{"api_name": "GitLab API", "code": gen.Code})
	w = do(http.MethodPost, "/api/v1/deploy", login.Token, string(dep))
	if w.Code != http.StatusOK {
		t.Fatalf("deploy = %d body=%s", w.Code, w.Body.String())
	}
	var deployed struct {
		ID  string `json:"deployment_id"`
		URL string `json:"url"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &deployed)
	if deployed.ID == "" || deployed.URL != "https://mbtq.dev/api/gitlab-api" {
		t.Fatalf("deployment = %+v", deployed)
	}

	// The record is queryable.
	if w = do(http.MethodGet, "/api/v1/deployments/"+deployed.ID, login.Token, ""); w.Code != http.StatusOK {
		t.Fatalf("deployment status = %d", w.Code)
	}
	if w = do(http.MethodGet, "/api/v1/deployments", login.Token, ""); w.Code != http.StatusOK {
		t.Fatalf("deployments list = %d", w.Code)
	}

	// Reputation reflects the session:
	// authentication +5, entries fetch +1, generation started +10 and
	// completed +20, deployment started +15 and completed +50.
	w = do(http.MethodGet, "/api/v1/reputation", login.Token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("reputation = %d", w.Code)
	}
	var view domain.ReputationView
	_ = json.Unmarshal(w.Body.Bytes(), &view)
	if view.Score != 101 || view.Level != "Apprentice" || view.TotalActions != 6 {
		t.Fatalf("view = %+v", view)
	}

	// Logs are newest first.
	w = do(http.MethodGet, "/api/v1/logs?limit=2", login.Token, "")
	var logs struct {
		Logs []domain.ActivityEntry `json:"logs"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &logs)
	if len(logs.Logs) != 2 || logs.Logs[0].Action != domain.ActionDeploymentCompleted {
		t.Fatalf("logs = %+v", logs.Logs)
	}

	// Leaderboard has alice on top.
	w = do(http.MethodGet, "/api/v1/reputation/leaderboard", login.Token, "")
	var board struct {
		Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &board)
	if len(board.Leaderboard) != 1 || board.Leaderboard[0].Username != "alice" {
		t.Fatalf("leaderboard = %+v", board.Leaderboard)
	}

	// Logout revokes the token; further guarded calls fail.
	if w = do(http.MethodPost, "/api/v1/auth/logout", login.Token, ""); w.Code != http.StatusNoContent {
		t.Fatalf("logout = %d", w.Code)
	}
	if w = do(http.MethodGet, "/api/v1/reputation", login.Token, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("post-logout reputation = %d; want 401", w.Code)
	}
}

func TestRegisterRoutes_CORSAllowlist(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := testConfig()
	cfg.CORS.AllowedOrigins = []string{"https://app.example"}
	auth := services.NewAuthService(time.Hour)
	RegisterRoutes(r, newTestDB(t), auth, services.NewReputationService(), catalog.New(), cfg)

	// Allowed origin is echoed.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("allowlisted origin = %q", got)
	}

	// Unknown origin is not.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got == "https://evil.example" {
		t.Fatalf("unknown origin must not be echoed")
	}
}
