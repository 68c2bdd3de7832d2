package api

import (
	"fmt"
	"net/http"
)

// Error is a structured rejection from the backend: the HTTP status plus
// the decoded error envelope when one was present.
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Code != "" {
		return fmt.Sprintf("api: %s (%d %s)", msg, e.StatusCode, e.Code)
	}
	return fmt.Sprintf("api: %s (%d)", msg, e.StatusCode)
}

// errorEnvelope mirrors the server's error response body.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}
