package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/fittrack/internal/domain"
	"github.com/spec-kit/fittrack/internal/events"
	"github.com/spec-kit/fittrack/internal/persistence"
)

type fakeAuth struct {
	token       string
	loginErr    error
	registerErr error

	loginCalls    int
	registerCalls int
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (string, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAuth) Register(ctx context.Context, username, password string) (*domain.User, error) {
	f.registerCalls++
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &domain.User{ID: 1, Username: username}, nil
}

type navRecorder struct {
	paths []string
}

func (n *navRecorder) GoTo(path string) { n.paths = append(n.paths, path) }

type fixture struct {
	store  *Store
	auth   *fakeAuth
	nav    *navRecorder
	record *persistence.MemoryStore
	fired  map[events.Type]int
}

func newFixture(t *testing.T, auth *fakeAuth) *fixture {
	t.Helper()
	f := &fixture{
		auth:   auth,
		nav:    &navRecorder{},
		record: persistence.NewMemoryStore(),
		fired:  map[events.Type]int{},
	}

	dispatcher := events.NewDispatcher()
	for _, typ := range []events.Type{events.SessionEstablished, events.SessionCleared, events.SessionExpired} {
		typ := typ
		dispatcher.Subscribe(typ, func(events.Event) { f.fired[typ]++ })
	}

	f.store = NewStore(Deps{
		Record:    f.record,
		Auth:      auth,
		Navigator: f.nav,
		Events:    dispatcher,
	})
	return f
}

func TestHydrateRestoresValidSession(t *testing.T) {
	f := newFixture(t, &fakeAuth{})
	raw := tokenExpiringAt(t, time.Now().Add(time.Hour))
	require.NoError(t, f.record.Set("token", raw))
	require.NoError(t, f.record.Set("username", "ada"))

	assert.True(t, f.store.Hydrating())
	f.store.Hydrate()

	assert.False(t, f.store.Hydrating())
	assert.True(t, f.store.IsAuthenticated())
	assert.Equal(t, "ada", f.store.Username())
	assert.Equal(t, raw, f.store.Token())
	assert.Equal(t, 1, f.fired[events.SessionEstablished])
}

func TestHydrateDiscardsExpiredSession(t *testing.T) {
	f := newFixture(t, &fakeAuth{})
	raw := tokenExpiringAt(t, time.Now().Add(-time.Minute))
	require.NoError(t, f.record.Set("token", raw))
	require.NoError(t, f.record.Set("username", "ada"))

	f.store.Hydrate()

	assert.False(t, f.store.IsAuthenticated())
	_, hasToken := f.record.Get("token")
	_, hasName := f.record.Get("username")
	assert.False(t, hasToken)
	assert.False(t, hasName)
	assert.Equal(t, 1, f.fired[events.SessionExpired])
}

func TestHydratePartialRecordClearsBoth(t *testing.T) {
	f := newFixture(t, &fakeAuth{})
	raw := tokenExpiringAt(t, time.Now().Add(time.Hour))
	require.NoError(t, f.record.Set("token", raw))

	f.store.Hydrate()

	assert.False(t, f.store.IsAuthenticated())
	_, hasToken := f.record.Get("token")
	assert.False(t, hasToken)
}

func TestHydrateEmptyRecordStaysAnonymous(t *testing.T) {
	f := newFixture(t, &fakeAuth{})

	f.store.Hydrate()

	assert.False(t, f.store.IsAuthenticated())
	assert.Zero(t, f.fired[events.SessionExpired])
	assert.Zero(t, f.fired[events.SessionEstablished])
}

func TestLoginPersistsAndNavigates(t *testing.T) {
	f := newFixture(t, &fakeAuth{token: "issued-token"})

	require.NoError(t, f.store.Login(context.Background(), "ada", "pw"))

	assert.Equal(t, "issued-token", f.store.Token())
	assert.Equal(t, "ada", f.store.Username())

	stored, ok := f.record.Get("token")
	require.True(t, ok)
	assert.Equal(t, "issued-token", stored)
	name, ok := f.record.Get("username")
	require.True(t, ok)
	assert.Equal(t, "ada", name)

	assert.Equal(t, []string{PathDashboard}, f.nav.paths)
	assert.Equal(t, 1, f.fired[events.SessionEstablished])
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	f := newFixture(t, &fakeAuth{loginErr: errors.New("invalid credentials")})

	err := f.store.Login(context.Background(), "ada", "wrong")
	require.Error(t, err)

	assert.False(t, f.store.IsAuthenticated())
	_, ok := f.record.Get("token")
	assert.False(t, ok)
	assert.Empty(t, f.nav.paths)
}

func TestRegisterChainsIntoLogin(t *testing.T) {
	f := newFixture(t, &fakeAuth{token: "issued-token"})

	require.NoError(t, f.store.Register(context.Background(), "ada", "pw"))

	assert.Equal(t, 1, f.auth.registerCalls)
	assert.Equal(t, 1, f.auth.loginCalls)
	assert.True(t, f.store.IsAuthenticated())
	assert.Equal(t, []string{PathDashboard}, f.nav.paths)
}

func TestRegisterFailureDoesNotLogin(t *testing.T) {
	f := newFixture(t, &fakeAuth{registerErr: errors.New("taken")})

	err := f.store.Register(context.Background(), "ada", "pw")
	require.Error(t, err)

	assert.Zero(t, f.auth.loginCalls)
	assert.False(t, f.store.IsAuthenticated())
}

func TestLogoutClearsEverything(t *testing.T) {
	f := newFixture(t, &fakeAuth{token: "issued-token"})
	require.NoError(t, f.store.Login(context.Background(), "ada", "pw"))

	f.store.Logout()

	assert.False(t, f.store.IsAuthenticated())
	assert.Empty(t, f.store.Username())
	_, ok := f.record.Get("token")
	assert.False(t, ok)
	assert.Equal(t, 1, f.fired[events.SessionCleared])
	assert.Equal(t, []string{PathDashboard, PathLogin}, f.nav.paths)
}

func TestForceLogoutPublishesExpiry(t *testing.T) {
	f := newFixture(t, &fakeAuth{token: "issued-token"})
	require.NoError(t, f.store.Login(context.Background(), "ada", "pw"))

	f.store.ForceLogout()

	assert.False(t, f.store.IsAuthenticated())
	assert.Equal(t, 1, f.fired[events.SessionExpired])
	assert.Equal(t, []string{PathDashboard, PathLogin}, f.nav.paths)
}
