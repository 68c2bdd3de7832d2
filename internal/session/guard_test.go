package session

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenExpiringAt(t *testing.T, expiry time.Time) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": expiry.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestIsExpired(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	cases := []struct {
		name    string
		expiry  time.Time
		expired bool
	}{
		{"long valid", now.Add(time.Hour), false},
		{"just outside buffer", now.Add(clockSkewBuffer + time.Second), false},
		{"exactly at buffer", now.Add(clockSkewBuffer), true},
		{"inside buffer", now.Add(clockSkewBuffer - time.Second), true},
		{"at now", now, true},
		{"long expired", now.Add(-time.Hour), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := tokenExpiringAt(t, tc.expiry)
			assert.Equal(t, tc.expired, IsExpired(raw, now))
		})
	}
}

func TestIsExpiredUndecodableToken(t *testing.T) {
	assert.True(t, IsExpired("", time.Now()))
	assert.True(t, IsExpired("garbage", time.Now()))

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	assert.True(t, IsExpired(raw, time.Now()))
}
