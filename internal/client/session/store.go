// Package session owns the client-side authentication lifecycle: the current
// user, the bearer token, and the transitions between the anonymous and
// authenticated states.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/SkitsONe/blogctl/internal/client/api"
	"github.com/SkitsONe/blogctl/internal/client/models"
	"github.com/SkitsONe/blogctl/internal/client/token"
	"github.com/SkitsONe/blogctl/internal/logging"
)

// Store holds the session state. It is constructed with its collaborators
// and passed to whoever needs it; there is no ambient global session.
//
// The session is authenticated only while both the token and the user record
// are present: a persisted token alone (before restoration resolves it to a
// user) does not count. Loading is an orthogonal busy flag covering any
// in-flight auth operation; overlapping operations overwrite it last-write-
// wins, so callers wanting determinism must serialize.
type Store struct {
	api    api.Auth
	tokens token.Store
	log    logging.Logger

	mu      sync.Mutex
	user    *models.UserRecord
	token   string
	loading bool
}

func New(authAPI api.Auth, tokens token.Store, log logging.Logger) *Store {
	return &Store{api: authAPI, tokens: tokens, log: log.With("component", "session")}
}

// IsAuthenticated reports whether both token and user are present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

// User returns the current user record, or nil when anonymous.
func (s *Store) User() *models.UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the in-memory bearer token, or "" when absent.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Loading reports whether an auth operation is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Initialize restores a persisted session at process start. If a stored
// token exists it is seeded into memory and resolved to a user via GetMe;
// any failure tears the session down completely (a token that cannot resolve
// to a user is invalid and is never retried). No error escapes.
func (s *Store) Initialize(ctx context.Context) {
	tok, err := s.tokens.Load()
	if err != nil {
		s.log.Warn(ctx, "loading persisted token failed", "error", err)
		return
	}
	if tok == "" {
		s.log.Debug(ctx, "no persisted token, staying anonymous")
		return
	}

	s.mu.Lock()
	s.token = tok
	s.mu.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	if _, err := s.GetMe(ctx); err != nil {
		// GetMe already performed the full logout.
		s.log.Warn(ctx, "session restore failed", "error", err)
		return
	}
	s.log.Info(ctx, "session restored")
}

// Login authenticates against the backend. On success the token and user are
// stored in memory, the token is persisted, and the auth payload is returned.
// Failures are returned to the caller untouched; Login does not self-heal.
func (s *Store) Login(ctx context.Context, creds api.Credentials) (*api.AuthPayload, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	payload, err := s.api.Login(ctx, creds)
	if err != nil {
		s.log.Error(ctx, "login failed", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.token = payload.AccessToken
	s.user = payload.User
	s.mu.Unlock()

	if err := s.tokens.Save(payload.AccessToken); err != nil {
		s.log.Warn(ctx, "persisting token failed", "error", err)
	}

	s.log.Info(ctx, "login succeeded")
	return payload, nil
}

// Register creates an account and establishes a session, symmetric to Login.
// Failures are re-wrapped into *api.Error when the transport produced
// something else, so the message always survives to the caller.
func (s *Store) Register(ctx context.Context, data api.RegisterData) (*api.AuthPayload, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	payload, err := s.api.Register(ctx, data)
	if err != nil {
		s.log.Error(ctx, "registration failed", "error", err)
		var aerr *api.Error
		if !errors.As(err, &aerr) {
			return nil, &api.Error{Message: err.Error(), Status: api.StatusLocal}
		}
		return nil, aerr
	}

	s.mu.Lock()
	s.token = payload.AccessToken
	s.user = payload.User
	s.mu.Unlock()

	if err := s.tokens.Save(payload.AccessToken); err != nil {
		s.log.Warn(ctx, "persisting token failed", "error", err)
	}

	s.log.Info(ctx, "registration succeeded")
	return payload, nil
}

// Logout ends the session. The backend call is best-effort: its failure is
// logged and discarded, and the in-memory and persisted state is cleared
// unconditionally either way. Logout cannot fail from the caller's
// perspective.
func (s *Store) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn(ctx, "backend logout failed", "error", err)
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.tokens.Clear(); err != nil {
		s.log.Warn(ctx, "clearing persisted token failed", "error", err)
	}

	s.log.Info(ctx, "logged out")
}

// GetMe refreshes the current user record. Without a token it is a no-op
// (nil, nil). Any failure escalates to a full Logout before the original
// error is returned.
func (s *Store) GetMe(ctx context.Context) (*models.UserRecord, error) {
	s.mu.Lock()
	tok := s.token
	s.mu.Unlock()
	if tok == "" {
		return nil, nil
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		s.Logout(ctx)
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user, nil
}
