// Package services – ReputationService
//
// This file implements the activity and reputation ledger. Every significant
// user action is recorded as an immutable, append-only log entry carrying a
// signed reputation impact taken from a static action table. The per-user
// aggregate (score, action count, last activity, recent history) is
// maintained incrementally in the same critical section as the append, so
// the cached score always equals the exact sum of the user's logged impacts.
package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mbtq-dev/go-autoapi-backend/internal/domain"
)

// reputationImpacts is the static action→points table. Actions absent from
// the table are logged with zero impact; new action kinds do not need to be
// registered before they can be logged.
var reputationImpacts = map[string]int{
	domain.ActionAuthentication:          5,
	domain.ActionAPIEntriesFetch:         1,
	domain.ActionCodeGenerationStarted:   10,
	domain.ActionCodeGenerationCompleted: 20,
	domain.ActionDeploymentStarted:       15,
	domain.ActionDeploymentCompleted:     50,
	domain.ActionAuthenticationError:     -5,
	domain.ActionCodeGenerationError:     -10,
	domain.ActionDeploymentError:         -25,
}

// levelThresholds maps ascending score lower bounds to level names. The
// slice is scanned from the top so the first bound not exceeding the score
// wins.
var levelThresholds = []struct {
	min  int
	name string
}{
	{1000, "Grandmaster"},
	{500, "Master"},
	{300, "Expert"},
	{150, "Adept"},
	{50, "Apprentice"},
}

// defaultLevel is the level of every score below the lowest threshold,
// including negative scores.
const defaultLevel = "Novice"

// recentHistorySize bounds the history slice returned in reputation views.
const recentHistorySize = 10

// ImpactFor returns the reputation delta of an action tag, zero for
// unrecognized tags.
func ImpactFor(action string) int { return reputationImpacts[action] }

// LevelFor derives the level name for a score using the fixed ascending
// threshold table. The level is a pure function of the score and is never
// stored independently of it.
func LevelFor(score int) string {
	for _, t := range levelThresholds {
		if score >= t.min {
			return t.name
		}
	}
	return defaultLevel
}

// account holds one user's slice of the ledger together with the cached
// aggregate. All fields are guarded by the account's own mutex, so appends
// for different users never contend with each other.
type account struct {
	mu           sync.Mutex
	entries      []domain.ActivityEntry
	history      []domain.ReputationEvent
	score        int
	lastActivity time.Time
}

// ReputationService records discrete action events per user and derives
// reputation from them. The registry of accounts is guarded by an RWMutex;
// each account serializes its own appends, guaranteeing no lost score
// updates for a user regardless of call interleaving.
type ReputationService struct {
	mu       sync.RWMutex
	accounts map[string]*account

	// now returns the current time; replaceable in tests.
	now func() time.Time
}

// NewReputationService constructs an empty ledger.
func NewReputationService() *ReputationService {
	return &ReputationService{
		accounts: make(map[string]*account),
		now:      time.Now,
	}
}

// account returns the account for user, creating it on first use.
func (s *ReputationService) account(user string) *account {
	s.mu.RLock()
	acc, ok := s.accounts[user]
	s.mu.RUnlock()
	if ok {
		return acc
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if acc, ok = s.accounts[user]; ok {
		return acc
	}
	acc = &account{}
	s.accounts[user] = acc
	return acc
}

// LogEvent appends an event to user's activity log and updates the cached
// aggregate in the same critical section. Metadata is preserved opaquely.
// The returned entry is the stored one; entries are immutable once created.
//
// Errors:
//   - ErrEmptyUser when user is empty or whitespace; state is unchanged.
func (s *ReputationService) LogEvent(action string, metadata map[string]any, user string) (*domain.ActivityEntry, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return nil, ErrEmptyUser
	}

	impact := ImpactFor(action)
	entry := domain.ActivityEntry{
		ID:               uuid.NewString(),
		Action:           action,
		Metadata:         metadata,
		User:             user,
		Timestamp:        s.now().UTC(),
		ReputationImpact: impact,
	}

	acc := s.account(user)
	acc.mu.Lock()
	acc.entries = append(acc.entries, entry)
	acc.score += impact
	acc.lastActivity = entry.Timestamp
	acc.history = append(acc.history, domain.ReputationEvent{
		Action:    action,
		Impact:    impact,
		Timestamp: entry.Timestamp,
	})
	if len(acc.history) > recentHistorySize {
		acc.history = acc.history[len(acc.history)-recentHistorySize:]
	}
	score := acc.score
	acc.mu.Unlock()

	log.Debug().
		Str("user", user).
		Str("action", action).
		Int("impact", impact).
		Int("score", score).
		Msg("activity logged")
	return &entry, nil
}

// UserLogs returns user's entries newest first, truncated to limit.
// A limit of zero yields an empty slice; a limit beyond the history size
// yields the full history. Negative limits are rejected with
// ErrNegativeLimit. The read has no side effects.
func (s *ReputationService) UserLogs(username string, limit int) ([]domain.ActivityEntry, error) {
	if limit < 0 {
		return nil, ErrNegativeLimit
	}

	s.mu.RLock()
	acc, ok := s.accounts[username]
	s.mu.RUnlock()
	if !ok || limit == 0 {
		return []domain.ActivityEntry{}, nil
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()

	n := len(acc.entries)
	if limit > n {
		limit = n
	}
	out := make([]domain.ActivityEntry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, acc.entries[i])
	}
	return out, nil
}

// Reputation returns the derived reputation view for username. Users with
// no history get a zero-valued view with level Novice; this is a normal
// case, not an error.
func (s *ReputationService) Reputation(username string) domain.ReputationView {
	view := domain.ReputationView{
		Username: username,
		Level:    defaultLevel,
	}

	s.mu.RLock()
	acc, ok := s.accounts[username]
	s.mu.RUnlock()
	if !ok {
		return view
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()

	view.Score = acc.score
	view.Level = LevelFor(acc.score)
	view.TotalActions = len(acc.entries)
	if !acc.lastActivity.IsZero() {
		t := acc.lastActivity
		view.LastActivity = &t
	}
	if len(acc.history) > 0 {
		view.RecentHistory = append([]domain.ReputationEvent(nil), acc.history...)
	}
	return view
}

// Leaderboard returns all known users sorted by descending score, ties
// broken by username ascending, truncated to limit. Non-positive limits
// mean no truncation. The result is a point-in-time snapshot; appends
// racing with the read may or may not be reflected.
func (s *ReputationService) Leaderboard(limit int) []domain.LeaderboardEntry {
	s.mu.RLock()
	rows := make([]domain.LeaderboardEntry, 0, len(s.accounts))
	for name, acc := range s.accounts {
		acc.mu.Lock()
		rows = append(rows, domain.LeaderboardEntry{
			Username:     name,
			Score:        acc.score,
			Level:        LevelFor(acc.score),
			TotalActions: len(acc.entries),
		})
		acc.mu.Unlock()
	}
	s.mu.RUnlock()

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].Username < rows[j].Username
	})

	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
