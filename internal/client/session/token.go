package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry extracts the expiry claim from a bearer token without
// verifying the signature. Verification is the backend's job; the client
// only uses the claim to report session lifetime and to avoid network calls
// that are guaranteed to be rejected. The second result is false when the
// token is not a JWT or carries no expiry.
func TokenExpiry(token string) (time.Time, bool) {
	token = strings.TrimPrefix(token, "Bearer ")

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
