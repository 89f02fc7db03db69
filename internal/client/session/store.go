package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/elivanov/inkwell/internal/client/models"
)

// ErrSessionExpired is returned by RestoreFrom when the persisted token
// carries an expiry that has already passed.
var ErrSessionExpired = errors.New("session expired, please log in again")

// Store holds the authenticated user/token pair together with the
// loading/error state of the most recent auth action.
//
// Invariant: user and token are both present or both absent, never one
// without the other. Transitions:
//
//	Start   — an auth call began; loading set, error cleared.
//	Succeed — user+token set, loading/error cleared. The caller persists
//	          the pair to the credential store.
//	Fail    — error set, loading cleared; user/token untouched.
//	Logout  — user+token cleared. The caller clears the credential store.
//	Restore — user+token set directly from persisted values; used once
//	          at boot, no network involved.
type Store struct {
	user    *models.User
	token   string
	loading bool
	err     error
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Start() {
	s.loading = true
	s.err = nil
}

func (s *Store) Succeed(user *models.User, token string) {
	s.user = user
	s.token = token
	s.loading = false
	s.err = nil
}

func (s *Store) Fail(err error) {
	s.loading = false
	s.err = err
}

func (s *Store) Logout() {
	s.user = nil
	s.token = ""
}

func (s *Store) Restore(user *models.User, token string) {
	s.user = user
	s.token = token
	s.loading = false
	s.err = nil
}

func (s *Store) User() *models.User { return s.user }
func (s *Store) Token() string      { return s.token }
func (s *Store) Loading() bool      { return s.loading }
func (s *Store) Err() error         { return s.err }

// LoggedIn reports whether an authenticated pair is present.
func (s *Store) LoggedIn() bool {
	return s.user != nil && s.token != ""
}

// UserID returns the authenticated user's id, or "" when logged out.
func (s *Store) UserID() string {
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

// RestoreFrom rehydrates the store from the credential store, once, at
// application boot. A token whose JWT expiry is already in the past is
// discarded (and wiped from disk) instead of being restored. When nothing
// is persisted the store is left logged out and no error is returned.
func (s *Store) RestoreFrom(ctx context.Context, creds *CredentialStore) error {
	user, token, err := creds.Load(ctx)
	if err != nil {
		return err
	}
	if user == nil || token == "" {
		return nil
	}
	if tokenExpired(token, time.Now()) {
		_ = creds.Clear(ctx)
		return ErrSessionExpired
	}
	s.Restore(user, token)
	return nil
}

// tokenExpired inspects the token's registered claims without verifying the
// signature; verification is the backend's job, this only avoids restoring
// a session the backend is guaranteed to reject. Opaque or claim-less
// tokens are treated as not expired.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
