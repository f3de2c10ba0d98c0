package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is display-only metadata decoded from a bearer token.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// DecodeToken extracts claims from a JWT without verifying its signature.
// The client holds no signing key, so the result is informational (shown
// by whoami) and never consulted for gating decisions: only the backend's
// 401 decides whether a token is still good.
func DecodeToken(token string) (*TokenInfo, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, false
	}

	info := &TokenInfo{}
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, true
}
