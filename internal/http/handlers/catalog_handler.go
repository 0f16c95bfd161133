// Catalog HTTP handlers.
//
// Read-only endpoints over the curated API catalog:
//   - GET /entries          (filtered catalog listing)
//   - GET /categories       (distinct categories)
//   - GET /github/endpoints (GitHub REST endpoint groups)
//
// The catalog is baked into the binary; no upstream calls happen here.
// Fetches by an authenticated caller earn an api_entries_fetch ledger event.
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mbtq-dev/go-autoapi-backend/internal/catalog"
	"github.com/mbtq-dev/go-autoapi-backend/internal/domain"
	"github.com/mbtq-dev/go-autoapi-backend/internal/utils"
)

// EntriesResponse is the JSON payload for the catalog listing.
type EntriesResponse struct {
	Count   int               `json:"count" example:"37"`
	Entries []domain.APIEntry `json:"entries"`
}

// CategoriesResponse is the JSON payload for the category listing.
type CategoriesResponse struct {
	Count      int      `json:"count" example:"2"`
	Categories []string `json:"categories"`
}

// Entries godoc
// @ID          listEntries
// @Summary     List catalog entries
// @Description Returns curated API entries, optionally filtered by category, free-text search, auth scheme, or HTTPS support.
// @Tags        Catalog
// @Produce     json
//
// @Param       category  query  string  false  "Category name; 'All' matches everything"
// @Param       search    query  string  false  "Case-insensitive substring over name and description"
// @Param       auth      query  string  false  "Auth scheme (e.g. apiKey, OAuth, none)"
// @Param       https     query  bool    false  "Require HTTPS support"
// @Param       limit     query  int     false  "Maximum entries to return (default 100)"
//
// @Success     200  {object} handlers.EntriesResponse
// @Failure     400  {object} handlers.ErrorResponse "Malformed query parameter"
// @Router      /entries [get]
func (h *Handlers) Entries(c *gin.Context) {
	f := catalog.Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if v := strings.TrimSpace(c.Query("auth")); v != "" {
		f.Auth = &v
	}
	if raw := strings.TrimSpace(c.Query("https")); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "https must be a boolean")
			return
		}
		f.HTTPS = &b
	}
	limit, err := utils.ParseLimit(c.Query("limit"), 0)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	f.Limit = limit

	entries := h.cat.Entries(f)

	if user := userID(c); user != "" {
		h.logEvent(c, domain.ActionAPIEntriesFetch,
			map[string]any{"count": len(entries), "category": f.Category}, user)
	}

	ok(c, http.StatusOK, EntriesResponse{Count: len(entries), Entries: entries})
}

// Categories godoc
// @ID          listCategories
// @Summary     List catalog categories
// @Description Returns the distinct catalog categories, with "All" first.
// @Tags        Catalog
// @Produce     json
//
// @Success     200  {object} handlers.CategoriesResponse
// @Router      /categories [get]
func (h *Handlers) Categories(c *gin.Context) {
	cats := h.cat.Categories()
	ok(c, http.StatusOK, CategoriesResponse{Count: len(cats), Categories: cats})
}

// GitHubEndpoints godoc
// @ID          listGitHubEndpoints
// @Summary     List GitHub REST endpoint groups
// @Description Returns the curated GitHub endpoint groups, optionally narrowed by a search term.
// @Tags        Catalog
// @Produce     json
//
// @Param       search  query  string  false  "Case-insensitive substring over group name and description"
//
// @Success     200  {object} handlers.EntriesResponse
// @Router      /github/endpoints [get]
func (h *Handlers) GitHubEndpoints(c *gin.Context) {
	groups := h.cat.GitHubEndpoints(c.Query("search"))

	if user := userID(c); user != "" {
		h.logEvent(c, domain.ActionAPIEntriesFetch,
			map[string]any{"count": len(groups), "source": "github"}, user)
	}

	ok(c, http.StatusOK, EntriesResponse{Count: len(groups), Entries: groups})
}
