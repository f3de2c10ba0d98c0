package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestDecodeToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"sub": "42",
		"exp": exp.Unix(),
	})

	info, ok := DecodeToken(token)
	require.True(t, ok)
	require.Equal(t, "42", info.Subject)
	require.True(t, info.ExpiresAt.Equal(exp))
}

func TestDecodeToken_MissingClaims(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{})

	info, ok := DecodeToken(token)
	require.True(t, ok)
	require.Empty(t, info.Subject)
	require.True(t, info.ExpiresAt.IsZero())
}

func TestDecodeToken_Garbage(t *testing.T) {
	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, ok := DecodeToken(token)
		require.False(t, ok, "token %q", token)
	}
}
