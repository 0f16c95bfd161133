// Package services – AuthService
//
// This file implements the token authority. It issues opaque bearer tokens
// on login, validates them against a fixed expiry window, and revokes them.
// Passwords are deliberately not verified: credential checking belongs to an
// external identity system, and this service only manages token possession.
// All state is held in memory and does not survive a process restart.
package services

import (
	"crypto/rand"
	"encoding/base64"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mbtq-dev/go-autoapi-backend/internal/domain"
)

// tokenBytes is the amount of random material per token (256 bits).
const tokenBytes = 32

// maxUsernameLen caps accepted usernames by byte length.
const maxUsernameLen = 100

// usernameRE restricts usernames to letters, digits, '_' and '-'.
var usernameRE = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// AuthService issues, verifies, and revokes opaque bearer tokens. It also
// keeps a registry of known users, upserted on each successful login.
//
// The service never fails for expected conditions: a missing or expired
// token is reported as "absent" from VerifyToken, not as an error. Callers
// own the decision to reject unauthenticated requests.
//
// Safe for concurrent use; all operations are short in-memory critical
// sections under a single RWMutex.
type AuthService struct {
	mu     sync.RWMutex
	tokens map[string]domain.TokenRecord
	users  map[string]domain.User

	// TokenTTL is the fixed validity window applied at issue time.
	TokenTTL time.Duration

	// now returns the current time; replaceable in tests to simulate expiry.
	now func() time.Time
}

// NewAuthService constructs an AuthService with the given token lifetime.
// Non-positive lifetimes fall back to 24 hours.
func NewAuthService(ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		tokens:   make(map[string]domain.TokenRecord),
		users:    make(map[string]domain.User),
		TokenTTL: ttl,
		now:      time.Now,
	}
}

// Authenticate issues a fresh token bound to username. The password is
// accepted as-is and not verified (placeholder for an external credential
// check). It never fails for a syntactically valid username.
//
// Errors:
//   - ErrEmptyUsername when username is empty or whitespace.
//   - ErrInvalidUsername when username violates the allowed charset/length.
func (s *AuthService) Authenticate(username, _ string) (*domain.TokenRecord, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if len(username) > maxUsernameLen || !usernameRE.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	token, err := newToken()
	if err != nil {
		// crypto/rand failing means the process is in serious trouble;
		// surface it rather than issuing a weak token.
		return nil, err
	}

	issued := s.now().UTC()
	rec := domain.TokenRecord{
		Token:     token,
		Username:  username,
		IssuedAt:  issued,
		ExpiresAt: issued.Add(s.TokenTTL),
	}

	s.mu.Lock()
	s.tokens[token] = rec
	if u, ok := s.users[username]; ok {
		u.LastLogin = issued
		s.users[username] = u
	} else {
		s.users[username] = domain.User{
			Username:  username,
			CreatedAt: issued,
			LastLogin: issued,
		}
	}
	s.mu.Unlock()

	log.Info().Str("user", username).Time("expires_at", rec.ExpiresAt).Msg("token issued")
	return &rec, nil
}

// VerifyToken returns the username bound to token when the token exists and
// has not expired. Expired or unknown tokens report ok=false; the two cases
// are indistinguishable to callers. The lookup is side-effect free.
func (s *AuthService) VerifyToken(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	s.mu.RLock()
	rec, ok := s.tokens[token]
	s.mu.RUnlock()

	if !ok || !s.now().Before(rec.ExpiresAt) {
		return "", false
	}
	return rec.Username, true
}

// RevokeToken removes the record for token if present, reporting whether a
// removal occurred. Revoking an absent token returns false and never fails.
func (s *AuthService) RevokeToken(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[token]; !ok {
		return false
	}
	delete(s.tokens, token)
	log.Info().Msg("token revoked")
	return true
}

// GetUser returns the registry entry for username, or nil if the user has
// never logged in.
func (s *AuthService) GetUser(username string) *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[username]; ok {
		cp := u
		return &cp
	}
	return nil
}

// Sweep removes expired token records and returns how many were evicted.
// VerifyToken already treats expired tokens as absent, so sweeping only
// bounds memory; cmd/server runs it on a ticker.
func (s *AuthService) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for t, rec := range s.tokens {
		if !now.Before(rec.ExpiresAt) {
			delete(s.tokens, t)
			n++
		}
	}
	if n > 0 {
		log.Debug().Int("evicted", n).Msg("expired tokens swept")
	}
	return n
}

// newToken returns a URL-safe opaque token with 256 bits of entropy.
func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
