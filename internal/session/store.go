// Package session owns the client's authenticated identity: a token and
// username held in memory, mirrored to a persisted record, with an
// explicit hydrate/login/register/logout lifecycle.
package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/fittrack/internal/domain"
	"github.com/spec-kit/fittrack/internal/events"
	"github.com/spec-kit/fittrack/internal/persistence"
)

// Persisted record keys. The two entries are independent; both must be
// present for a session to be restored, and both are cleared together.
const (
	recordKeyToken    = "token"
	recordKeyUsername = "username"
)

// AuthService exchanges credentials against the backend's auth endpoints.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) (*domain.User, error)
}

// Deps bundles the store's collaborators.
type Deps struct {
	Record    persistence.RecordStore
	Auth      AuthService
	Navigator Navigator
	Events    *events.Dispatcher
	Logger    *zap.Logger
}

// Store is the single authoritative copy of the session. Token and
// username are set and cleared together, never one without the other.
// Mutations are serialized by the internal mutex; requests already in
// flight when the session is cleared are not cancelled.
type Store struct {
	record persistence.RecordStore
	auth   AuthService
	nav    Navigator
	events *events.Dispatcher
	logger *zap.Logger

	mu        sync.RWMutex
	token     string
	username  string
	hydrating bool
}

// NewStore builds a Store. Hydrate must be called before the session is
// consulted for routing decisions.
func NewStore(deps Deps) *Store {
	nav := deps.Navigator
	if nav == nil {
		nav = NavigatorFunc(func(string) {})
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		record:    deps.Record,
		auth:      deps.Auth,
		nav:       nav,
		events:    deps.Events,
		logger:    logger,
		hydrating: true,
	}
}

// Hydrate restores a persisted session if both entries are present and the
// token is not expired; otherwise any leftover state is cleared. Runs once
// at startup, before any authenticated operation.
func (s *Store) Hydrate() {
	storedToken, hasToken := s.record.Get(recordKeyToken)
	storedName, hasName := s.record.Get(recordKeyUsername)

	s.mu.Lock()
	defer func() {
		s.hydrating = false
		s.mu.Unlock()
	}()

	if hasToken && hasName && !IsExpired(storedToken, time.Now()) {
		s.token = storedToken
		s.username = storedName
		s.logger.Debug("session restored", zap.String("username", storedName))
		s.events.Publish(events.Event{Type: events.SessionEstablished, Username: storedName})
		return
	}

	if hasToken || hasName {
		s.clearRecord()
		s.logger.Info("stored session expired, starting anonymous")
		s.events.Publish(events.Event{Type: events.SessionExpired, Username: storedName})
	}
}

// Login exchanges credentials for a token, persists the session and
// navigates to the dashboard. On failure the error propagates untouched
// and the session is left as it was.
func (s *Store) Login(ctx context.Context, username, password string) error {
	issued, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = issued
	s.username = username
	if err := s.record.Set(recordKeyToken, issued); err != nil {
		s.logger.Warn("persist token", zap.Error(err))
	}
	if err := s.record.Set(recordKeyUsername, username); err != nil {
		s.logger.Warn("persist username", zap.Error(err))
	}
	s.mu.Unlock()

	s.events.Publish(events.Event{Type: events.SessionEstablished, Username: username})
	s.nav.GoTo(PathDashboard)
	return nil
}

// Register creates the account and then logs in with the same credentials.
// Registration success alone never mutates session state; only the login
// step does. A failure at either step propagates.
func (s *Store) Register(ctx context.Context, username, password string) error {
	if _, err := s.auth.Register(ctx, username, password); err != nil {
		return err
	}
	return s.Login(ctx, username, password)
}

// Logout clears the session and navigates to the login area. It always
// succeeds.
func (s *Store) Logout() {
	s.clear()
	s.events.Publish(events.Event{Type: events.SessionCleared})
	s.nav.GoTo(PathLogin)
}

// ForceLogout tears the session down after the server rejected its
// credential. Called by the request pipeline; same effect as Logout but
// surfaced as an expiry to consumers.
func (s *Store) ForceLogout() {
	s.logger.Warn("session rejected by server, logging out")
	s.clear()
	s.events.Publish(events.Event{Type: events.SessionExpired})
	s.nav.GoTo(PathLogin)
}

// Token returns the current bearer token, or empty when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Username returns the authenticated username, or empty when anonymous.
func (s *Store) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Hydrating reports whether startup restoration is still in progress.
func (s *Store) Hydrating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrating
}

func (s *Store) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.username = ""
	s.clearRecord()
}

// clearRecord removes both persisted entries; callers hold the lock.
func (s *Store) clearRecord() {
	if err := s.record.Delete(recordKeyToken); err != nil {
		s.logger.Warn("clear persisted token", zap.Error(err))
	}
	if err := s.record.Delete(recordKeyUsername); err != nil {
		s.logger.Warn("clear persisted username", zap.Error(err))
	}
}
