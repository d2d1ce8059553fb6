package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of JWT claims the CLI displays.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time // zero when the token has no expiry
}

// PeekClaims decodes a JWT without verifying its signature. Display only;
// the server is the sole verifier of tokens.
func PeekClaims(token string) (*TokenClaims, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("auth.PeekClaims: %w", err)
	}

	out := &TokenClaims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
