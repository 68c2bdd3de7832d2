package session

import (
	"time"

	"github.com/spec-kit/fittrack/internal/token"
)

// clockSkewBuffer is subtracted from a token's expiry before comparing to
// now, so a request is never sent with a credential about to expire
// mid-flight or already rejected by a stricter server clock.
const clockSkewBuffer = 10 * time.Second

// IsExpired reports whether the token may no longer be used to
// authenticate. Tokens that cannot be decoded are always expired: the
// guard fails closed. The boundary is inclusive on the expired side: a
// token expiring in exactly clockSkewBuffer is already expired.
func IsExpired(raw string, now time.Time) bool {
	expiry, err := token.DecodeExpiry(raw)
	if err != nil {
		return true
	}
	return !now.Before(expiry.Add(-clockSkewBuffer))
}
