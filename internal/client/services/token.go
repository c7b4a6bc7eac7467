package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired reports whether token is a JWT whose exp claim is at or
// before now. The signature is not checked; the client cannot verify it and
// only wants to avoid restoring a session the server will reject anyway.
// Tokens that are not JWTs, or carry no exp, never expire here.
func tokenExpired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}
