package token

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestDecodeExpiry(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signToken(t, jwt.MapClaims{"sub": "1", "exp": expiry.Unix()})

	got, err := DecodeExpiry(raw)
	require.NoError(t, err)
	assert.True(t, got.Equal(expiry))
}

func TestDecodeExpiryIgnoresSignature(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signToken(t, jwt.MapClaims{"exp": expiry.Unix()})

	// Flip the signature segment; decoding still succeeds because only
	// the payload is inspected.
	tampered := raw[:len(raw)-4] + "AAAA"

	got, err := DecodeExpiry(tampered)
	require.NoError(t, err)
	assert.True(t, got.Equal(expiry))
}

func TestDecodeExpiryMalformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"garbage",
		"one.two",
		"!!!.???.***",
		"a.b.c.d",
	} {
		_, err := DecodeExpiry(raw)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}
}

func TestDecodeExpiryMissingClaim(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"sub": "1"})

	_, err := DecodeExpiry(raw)
	assert.ErrorIs(t, err, ErrNoExpiry)
}

func TestDecodeExpiryZeroClaim(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"exp": 0})

	_, err := DecodeExpiry(raw)
	assert.ErrorIs(t, err, ErrNoExpiry)
}

func TestDecodeExpiryWrongClaimType(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"exp": "soon"})

	_, err := DecodeExpiry(raw)
	assert.ErrorIs(t, err, ErrNoExpiry)
}
