package api

import (
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// SessionState is the narrow view of the session the pipeline needs: read
// the credential on the way out, tear the session down on an
// authentication failure on the way back.
type SessionState interface {
	Token() string
	ForceLogout()
}

// attachCredential renders the authorization header value for a token, or
// empty when there is no session to attach.
func attachCredential(token string) string {
	if token == "" {
		return ""
	}
	return "Bearer " + token
}

// shouldForceLogout decides whether an inbound failure ends the session.
// Only 401/403 against non-auth endpoints do: the same statuses on the
// login/register endpoints mean bad credentials, not a dead session.
func shouldForceLogout(status int, authEndpoint bool) bool {
	if authEndpoint {
		return false
	}
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

// pipeline decorates the HTTP transport. Outgoing requests get the bearer
// credential from the bound session; inbound 401/403 responses from
// non-auth endpoints trigger a forced logout. The response always reaches
// the caller unchanged; the pipeline never swallows a failure. Expiry is
// not re-checked per request; the server's rejection is the judge.
type pipeline struct {
	base       http.RoundTripper
	logger     *zap.Logger
	authPaths  map[string]struct{}
	sessionMu  sync.RWMutex
	sessionRef SessionState
}

func newPipeline(base http.RoundTripper, authPaths []string, logger *zap.Logger) *pipeline {
	paths := make(map[string]struct{}, len(authPaths))
	for _, p := range authPaths {
		paths[p] = struct{}{}
	}
	return &pipeline{base: base, logger: logger, authPaths: paths}
}

func (p *pipeline) bind(s SessionState) {
	p.sessionMu.Lock()
	defer p.sessionMu.Unlock()
	p.sessionRef = s
}

func (p *pipeline) session() SessionState {
	p.sessionMu.RLock()
	defer p.sessionMu.RUnlock()
	return p.sessionRef
}

func (p *pipeline) isAuthEndpoint(path string) bool {
	_, ok := p.authPaths[path]
	return ok
}

// RoundTrip implements http.RoundTripper.
func (p *pipeline) RoundTrip(req *http.Request) (*http.Response, error) {
	sess := p.session()

	if sess != nil {
		if cred := attachCredential(sess.Token()); cred != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", cred)
		}
	}

	resp, err := p.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if sess != nil && shouldForceLogout(resp.StatusCode, p.isAuthEndpoint(req.URL.Path)) {
		p.logger.Warn("authenticated request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("path", req.URL.Path))
		sess.ForceLogout()
	}

	return resp, nil
}
