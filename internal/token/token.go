// Package token decodes the expiry claim out of compact JWT credentials.
// Tokens are opaque to the client apart from the payload's exp field; the
// signature is never verified here, that is the server's job.
package token

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed reports a token that is not three base64 segments of
	// valid JSON.
	ErrMalformed = errors.New("token: malformed credential")

	// ErrNoExpiry reports a structurally valid token without a usable exp
	// claim.
	ErrNoExpiry = errors.New("token: missing expiry claim")
)

// DecodeExpiry extracts the expiry instant from a compact token. Every
// failure mode (wrong segment count, bad base64, bad JSON, absent or zero
// exp) is folded into ErrMalformed or ErrNoExpiry; no parser error escapes.
func DecodeExpiry(raw string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}, ErrMalformed
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrNoExpiry
	}
	if exp.Unix() == 0 {
		// A zero exp is the JSON-falsy case: treated as absent.
		return time.Time{}, ErrNoExpiry
	}
	return exp.Time, nil
}
