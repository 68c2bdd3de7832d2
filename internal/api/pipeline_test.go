package api

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSession struct {
	token        string
	forcedLogout atomic.Int32
}

func (f *fakeSession) Token() string { return f.token }
func (f *fakeSession) ForceLogout()  { f.forcedLogout.Add(1) }

func TestAttachCredential(t *testing.T) {
	assert.Equal(t, "", attachCredential(""))
	assert.Equal(t, "Bearer abc", attachCredential("abc"))
}

func TestShouldForceLogout(t *testing.T) {
	assert.True(t, shouldForceLogout(http.StatusUnauthorized, false))
	assert.True(t, shouldForceLogout(http.StatusForbidden, false))

	assert.False(t, shouldForceLogout(http.StatusUnauthorized, true))
	assert.False(t, shouldForceLogout(http.StatusForbidden, true))

	assert.False(t, shouldForceLogout(http.StatusOK, false))
	assert.False(t, shouldForceLogout(http.StatusNotFound, false))
	assert.False(t, shouldForceLogout(http.StatusInternalServerError, false))
}

func pipelineServer(t *testing.T, status int, gotAuth *string) (*httptest.Server, *pipeline) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotAuth != nil {
			*gotAuth = r.Header.Get("Authorization")
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	pipe := newPipeline(http.DefaultTransport, []string{"/api/login", "/api/register"}, zap.NewNop())
	return srv, pipe
}

func TestPipelineAttachesBearerHeader(t *testing.T) {
	var gotAuth string
	srv, pipe := pipelineServer(t, http.StatusOK, &gotAuth)
	pipe.bind(&fakeSession{token: "tok-123"})

	client := &http.Client{Transport: pipe}
	resp, err := client.Get(srv.URL + "/api/meals/mine")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestPipelineAnonymousRequestHasNoHeader(t *testing.T) {
	var gotAuth string
	srv, pipe := pipelineServer(t, http.StatusOK, &gotAuth)
	pipe.bind(&fakeSession{token: ""})

	client := &http.Client{Transport: pipe}
	resp, err := client.Get(srv.URL + "/api/login")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, gotAuth)
}

func TestPipelineUnauthorizedTriggersForcedLogout(t *testing.T) {
	srv, pipe := pipelineServer(t, http.StatusUnauthorized, nil)
	sess := &fakeSession{token: "stale"}
	pipe.bind(sess)

	client := &http.Client{Transport: pipe}
	resp, err := client.Get(srv.URL + "/api/meals/mine")
	require.NoError(t, err)
	resp.Body.Close()

	// The response is never swallowed; the caller still sees the 401.
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(1), sess.forcedLogout.Load())
}

func TestPipelineForbiddenTriggersForcedLogout(t *testing.T) {
	srv, pipe := pipelineServer(t, http.StatusForbidden, nil)
	sess := &fakeSession{token: "stale"}
	pipe.bind(sess)

	client := &http.Client{Transport: pipe}
	resp, err := client.Get(srv.URL + "/api/workouts/mine")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, int32(1), sess.forcedLogout.Load())
}

func TestPipelineAuthEndpointRejectionKeepsSession(t *testing.T) {
	srv, pipe := pipelineServer(t, http.StatusUnauthorized, nil)
	sess := &fakeSession{token: "current"}
	pipe.bind(sess)

	client := &http.Client{Transport: pipe}
	resp, err := client.Get(srv.URL + "/api/login")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Zero(t, sess.forcedLogout.Load())
}

func TestPipelineServerErrorKeepsSession(t *testing.T) {
	srv, pipe := pipelineServer(t, http.StatusInternalServerError, nil)
	sess := &fakeSession{token: "current"}
	pipe.bind(sess)

	client := &http.Client{Transport: pipe}
	resp, err := client.Get(srv.URL + "/api/meals/mine")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Zero(t, sess.forcedLogout.Load())
}

func TestPipelineUnboundSessionPassesThrough(t *testing.T) {
	var gotAuth string
	srv, pipe := pipelineServer(t, http.StatusUnauthorized, &gotAuth)

	client := &http.Client{Transport: pipe}
	resp, err := client.Get(srv.URL + "/api/meals/mine")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, gotAuth)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
