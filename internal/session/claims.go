package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the exp claim from the bearer token without verifying the
// signature. The value is used only for display and to decide when to prompt
// for a new login; authorization is always enforced server-side.
func TokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
