package curbwise

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims encodes the JWT claims embedded in Curbwise access tokens.
//
// This is a DTO matching the backend's token contract. Decoding is for
// display and local expiry checks only; the client never verifies the
// signature (the backend is the authority on token validity).
type Claims struct {
	Username string `json:"username,omitempty"`
	Role     Role   `json:"role,omitempty"`

	jwt.RegisteredClaims
}

// DecodeClaims parses the access token payload without verifying the
// signature.
func DecodeClaims(token string) (Claims, error) {
	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return Claims{}, fmt.Errorf("curbwise: malformed access token: %w", err)
	}
	return claims, nil
}

// Expired reports whether the token's expiry, if present, has passed.
func (c Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return now.After(c.ExpiresAt.Time)
}
