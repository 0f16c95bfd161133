package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mbtq-dev/go-autoapi-backend/internal/domain"
)

func TestImpactFor(t *testing.T) {
	cases := []struct {
		action string
		want   int
	}{
		{domain.ActionAuthentication, 5},
		{domain.ActionAPIEntriesFetch, 1},
		{domain.ActionCodeGenerationStarted, 10},
		{domain.ActionCodeGenerationCompleted, 20},
		{domain.ActionDeploymentStarted, 15},
		{domain.ActionDeploymentCompleted, 50},
		{domain.ActionAuthenticationError, -5},
		{domain.ActionCodeGenerationError, -10},
		{domain.ActionDeploymentError, -25},
		{"something_else", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := ImpactFor(tc.action); got != tc.want {
			t.Fatalf("ImpactFor(%q) = %d; want %d", tc.action, got, tc.want)
		}
	}
}

func TestLevelFor_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{-100, "Novice"},
		{0, "Novice"},
		{49, "Novice"},
		{50, "Apprentice"},
		{149, "Apprentice"},
		{150, "Adept"},
		{299, "Adept"},
		{300, "Expert"},
		{499, "Expert"},
		{500, "Master"},
		{999, "Master"},
		{1000, "Grandmaster"},
		{5000, "Grandmaster"},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.score); got != tc.want {
			t.Fatalf("LevelFor(%d) = %q; want %q", tc.score, got, tc.want)
		}
	}
}

func TestLogEvent_AppendsAndScores(t *testing.T) {
	s := NewReputationService()

	entry, err := s.LogEvent(domain.ActionAuthentication, map[string]any{"ip": "127.0.0.1"}, "alice")
	if err != nil {
		t.Fatalf("LogEvent: %v", err)
	}
	if entry.ID == "" || entry.User != "alice" || entry.ReputationImpact != 5 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Metadata["ip"] != "127.0.0.1" {
		t.Fatalf("metadata not preserved: %+v", entry.Metadata)
	}

	// Unrecognized action: logged, zero impact.
	entry, err = s.LogEvent("custom_thing", nil, "alice")
	if err != nil {
		t.Fatalf("LogEvent: %v", err)
	}
	if entry.ReputationImpact != 0 {
		t.Fatalf("unrecognized action should carry zero impact, got %d", entry.ReputationImpact)
	}

	view := s.Reputation("alice")
	if view.Score != 5 || view.TotalActions != 2 {
		t.Fatalf("view = %+v; want score 5, 2 actions", view)
	}

	// Empty user is rejected, state untouched.
	if _, err := s.LogEvent(domain.ActionAuthentication, nil, "   "); !errors.Is(err, ErrEmptyUser) {
		t.Fatalf("err = %v; want ErrEmptyUser", err)
	}
}

func TestLogEvent_ConcurrentAppendsLoseNothing(t *testing.T) {
	s := NewReputationService()

	const goroutines = 8
	const perG = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				if _, err := s.LogEvent(domain.ActionAPIEntriesFetch, nil, "alice"); err != nil {
					t.Errorf("LogEvent: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	view := s.Reputation("alice")
	want := goroutines * perG
	if view.TotalActions != want || view.Score != want {
		t.Fatalf("after %d concurrent appends: actions=%d score=%d", want, view.TotalActions, view.Score)
	}

	logs, err := s.UserLogs("alice", want+10)
	if err != nil {
		t.Fatalf("UserLogs: %v", err)
	}
	if len(logs) != want {
		t.Fatalf("len(logs) = %d; want %d", len(logs), want)
	}
}

func TestUserLogs_OrderAndLimits(t *testing.T) {
	s := NewReputationService()

	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		ts = ts.Add(time.Second)
		return ts
	}

	actions := []string{
		domain.ActionAuthentication,
		domain.ActionCodeGenerationStarted,
		domain.ActionCodeGenerationCompleted,
	}
	for _, a := range actions {
		if _, err := s.LogEvent(a, nil, "alice"); err != nil {
			t.Fatalf("LogEvent: %v", err)
		}
	}

	// Newest first.
	logs, err := s.UserLogs("alice", 10)
	if err != nil {
		t.Fatalf("UserLogs: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("len = %d; want 3", len(logs))
	}
	if logs[0].Action != domain.ActionCodeGenerationCompleted || logs[2].Action != domain.ActionAuthentication {
		t.Fatalf("logs not newest-first: %v, %v", logs[0].Action, logs[2].Action)
	}
	for i := 1; i < len(logs); i++ {
		if logs[i].Timestamp.After(logs[i-1].Timestamp) {
			t.Fatalf("timestamps out of order at %d", i)
		}
	}

	// Truncation keeps the newest entries.
	logs, _ = s.UserLogs("alice", 2)
	if len(logs) != 2 || logs[0].Action != domain.ActionCodeGenerationCompleted {
		t.Fatalf("limit 2 should keep the two newest, got %+v", logs)
	}

	// Zero limit: empty, not an error.
	logs, err = s.UserLogs("alice", 0)
	if err != nil || len(logs) != 0 {
		t.Fatalf("limit 0 = (%v, %v); want empty, nil", logs, err)
	}

	// Negative limit: rejected.
	if _, err := s.UserLogs("alice", -1); !errors.Is(err, ErrNegativeLimit) {
		t.Fatalf("err = %v; want ErrNegativeLimit", err)
	}

	// Unknown user: empty, not an error.
	logs, err = s.UserLogs("nobody", 10)
	if err != nil || len(logs) != 0 {
		t.Fatalf("unknown user = (%v, %v); want empty, nil", logs, err)
	}
}

func TestReputation_UnknownUserZeroView(t *testing.T) {
	s := NewReputationService()

	view := s.Reputation("ghost")
	if view.Username != "ghost" || view.Score != 0 || view.Level != "Novice" || view.TotalActions != 0 {
		t.Fatalf("unexpected zero view: %+v", view)
	}
	if view.LastActivity != nil || view.RecentHistory != nil {
		t.Fatalf("zero view must not carry activity: %+v", view)
	}
}

func TestReputation_RecentHistoryBounded(t *testing.T) {
	s := NewReputationService()

	for i := 0; i < 15; i++ {
		if _, err := s.LogEvent(domain.ActionAPIEntriesFetch, nil, "alice"); err != nil {
			t.Fatalf("LogEvent: %v", err)
		}
	}

	view := s.Reputation("alice")
	if len(view.RecentHistory) != 10 {
		t.Fatalf("recent history = %d entries; want 10", len(view.RecentHistory))
	}
	if view.TotalActions != 15 || view.Score != 15 {
		t.Fatalf("aggregate must cover all entries: %+v", view)
	}
	if view.LastActivity == nil {
		t.Fatalf("last activity missing")
	}
}

func TestLeaderboard_OrderingAndTies(t *testing.T) {
	s := NewReputationService()

	// carol 50, alice 15, bob 15, dave -5
	_, _ = s.LogEvent(domain.ActionDeploymentCompleted, nil, "carol")
	_, _ = s.LogEvent(domain.ActionDeploymentStarted, nil, "alice")
	_, _ = s.LogEvent(domain.ActionDeploymentStarted, nil, "bob")
	_, _ = s.LogEvent(domain.ActionAuthenticationError, nil, "dave")

	board := s.Leaderboard(0)
	if len(board) != 4 {
		t.Fatalf("len = %d; want 4", len(board))
	}
	want := []string{"carol", "alice", "bob", "dave"}
	for i, name := range want {
		if board[i].Username != name {
			t.Fatalf("board[%d] = %q; want %q (full: %+v)", i, board[i].Username, name, board)
		}
	}
	if board[0].Level != "Apprentice" || board[3].Level != "Novice" {
		t.Fatalf("levels not derived: %+v", board)
	}

	// Truncation.
	board = s.Leaderboard(2)
	if len(board) != 2 || board[0].Username != "carol" || board[1].Username != "alice" {
		t.Fatalf("limit 2 = %+v", board)
	}
}

// End-to-end ledger walk for one user across a realistic session.
func TestLedger_SessionScenario(t *testing.T) {
	s := NewReputationService()

	steps := []string{
		domain.ActionAuthentication,          // +5
		domain.ActionCodeGenerationStarted,   // +10
		domain.ActionCodeGenerationCompleted, // +20
		domain.ActionDeploymentError,         // -25
	}
	for _, a := range steps {
		if _, err := s.LogEvent(a, nil, "alice"); err != nil {
			t.Fatalf("LogEvent(%s): %v", a, err)
		}
	}

	view := s.Reputation("alice")
	if view.Score != 10 {
		t.Fatalf("score = %d; want 10", view.Score)
	}
	if view.Level != "Novice" {
		t.Fatalf("level = %q; want Novice", view.Level)
	}
	if view.TotalActions != 4 {
		t.Fatalf("total actions = %d; want 4", view.TotalActions)
	}

	logs, err := s.UserLogs("alice", 2)
	if err != nil {
		t.Fatalf("UserLogs: %v", err)
	}
	if len(logs) != 2 ||
		logs[0].Action != domain.ActionDeploymentError ||
		logs[1].Action != domain.ActionCodeGenerationCompleted {
		t.Fatalf("unexpected tail of log: %+v", logs)
	}
}
