// Package session holds the client-side authentication state: the bearer
// token codec and the session store that owns the token's lifecycle.
package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// Roles encoded in the token's role claim.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Claims are the data the backend embeds in a bearer token. Subject carries
// the username.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// DecodeToken extracts the claims embedded in a bearer token without
// verifying the signature. Verification is the server's responsibility;
// decoded claims drive UI decisions only, never a security boundary.
//
// Any malformed input (empty string, wrong segment count, non-base64url
// payload, non-JSON payload) yields nil; the function never returns an
// error and never panics. Expiry is not validated either: the server
// rejects expired tokens with 401, and the client handles that uniformly.
func DecodeToken(token string) *Claims {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}
