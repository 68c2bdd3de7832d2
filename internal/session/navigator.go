package session

import "go.uber.org/zap"

// Well-known navigation targets, kept in parity with the web client.
const (
	PathLogin     = "/login"
	PathDashboard = "/dashboard"
)

// Navigator receives fire-and-forget navigation requests after session
// transitions.
type Navigator interface {
	GoTo(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

// GoTo calls the wrapped function.
func (f NavigatorFunc) GoTo(path string) { f(path) }

// NewLogNavigator returns a Navigator that records navigation in the log,
// the default for headless consumers like the CLI.
func NewLogNavigator(logger *zap.Logger) Navigator {
	return NavigatorFunc(func(path string) {
		logger.Debug("navigate", zap.String("path", path))
	})
}
