package condeco

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry returns the expiry time of a Condeco access token. The
// signature is not verified; the vendor signs the token and the client
// only needs the claims to decide whether to re-authenticate before a
// request is rejected.
func TokenExpiry(accessToken string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse access token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, fmt.Errorf("access token has no expiry claim")
	}
	return exp.Time, nil
}

// TokenExpired reports whether the access token is expired or
// unparseable. Tokens the client cannot read are treated as expired so
// the caller falls back to the magic-link handshake.
func TokenExpired(accessToken string, now time.Time) bool {
	exp, err := TokenExpiry(accessToken)
	if err != nil {
		return true
	}
	return !now.Before(exp)
}
