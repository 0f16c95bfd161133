// Package catalog holds the static, curated collection of third-party API
// descriptions the service lets callers browse: the GitHub REST endpoint
// groups and a set of enriched development APIs. The data is compiled in;
// filtering is a linear scan with case-folded string containment. The
// catalog is immutable after construction and safe for concurrent reads.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mbtq-dev/go-autoapi-backend/internal/domain"
)

// Filter narrows an Entries scan. Zero values mean "no constraint";
// Category "All" (any case) also matches everything. Limit <= 0 falls back
// to DefaultLimit.
type Filter struct {
	Category string
	Search   string
	Auth     *string
	HTTPS    *bool
	Limit    int
}

// DefaultLimit bounds Entries results when the caller does not set one.
const DefaultLimit = 100

// Catalog is the in-memory API collection.
type Catalog struct {
	github   []domain.APIEntry
	enriched []domain.APIEntry
}

// New builds the catalog from the compiled-in data.
func New() *Catalog {
	return &Catalog{
		github:   githubEndpointGroups(),
		enriched: enrichedAPIs(),
	}
}

// Entries returns all catalog entries (GitHub groups first, then enriched
// APIs) matching f, truncated to f.Limit. The scan is read-only and
// restartable.
func (c *Catalog) Entries(f Filter) []domain.APIEntry {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	search := fold(strings.TrimSpace(f.Search))

	out := make([]domain.APIEntry, 0, limit)
	for _, e := range c.all() {
		if !c.matches(e, f, search) {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Categories returns the distinct categories in ascending order, prefixed
// with the synthetic "All" entry the UI uses to clear the filter.
func (c *Catalog) Categories() []string {
	seen := map[string]struct{}{}
	for _, e := range c.all() {
		if e.Category != "" {
			seen[e.Category] = struct{}{}
		}
	}
	cats := make([]string, 0, len(seen))
	for k := range seen {
		cats = append(cats, k)
	}
	sort.Strings(cats)
	return append([]string{"All"}, cats...)
}

// GitHubEndpoints returns the GitHub endpoint groups, optionally narrowed
// by a case-folded containment search over name and description.
func (c *Catalog) GitHubEndpoints(search string) []domain.APIEntry {
	search = fold(strings.TrimSpace(search))
	if search == "" {
		return append([]domain.APIEntry(nil), c.github...)
	}
	out := make([]domain.APIEntry, 0, len(c.github))
	for _, e := range c.github {
		if strings.Contains(fold(e.API), search) ||
			strings.Contains(fold(e.Description), search) {
			out = append(out, e)
		}
	}
	return out
}

// Lookup returns the entry whose name matches (case-folded) exactly, or nil.
// The generator uses it to fill in fields the client omitted.
func (c *Catalog) Lookup(apiName string) *domain.APIEntry {
	want := fold(strings.TrimSpace(apiName))
	for _, e := range c.all() {
		if fold(e.API) == want {
			cp := e
			return &cp
		}
	}
	return nil
}

// Len reports the total number of entries.
func (c *Catalog) Len() int { return len(c.github) + len(c.enriched) }

func (c *Catalog) all() []domain.APIEntry {
	all := make([]domain.APIEntry, 0, len(c.github)+len(c.enriched))
	all = append(all, c.github...)
	return append(all, c.enriched...)
}

// fold case-folds s for caseless containment matching. A cases.Caser is
// stateful, so a fresh one is built per call rather than shared.
func fold(s string) string { return cases.Fold().String(s) }

func (c *Catalog) matches(e domain.APIEntry, f Filter, foldedSearch string) bool {
	if cat := strings.TrimSpace(f.Category); cat != "" && !strings.EqualFold(cat, "All") {
		if e.Category != cat {
			return false
		}
	}
	if foldedSearch != "" {
		if !strings.Contains(fold(e.API), foldedSearch) &&
			!strings.Contains(fold(e.Description), foldedSearch) {
			return false
		}
	}
	if f.Auth != nil && e.Auth != *f.Auth {
		return false
	}
	if f.HTTPS != nil && e.HTTPS != *f.HTTPS {
		return false
	}
	return true
}
