package curbwise

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestDecodeClaims(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: "pat",
		Role:     RoleInspector,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "3f0d1c6e-2f6a-4bbd-9a20-14d07a1a1f01",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatal(err)
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		t.Fatalf("DecodeClaims failed: %v", err)
	}
	if claims.Username != "pat" || claims.Role != RoleInspector {
		t.Errorf("unexpected claims %+v", claims)
	}
	if claims.Expired(time.Now()) {
		t.Error("expected token not expired")
	}
	if !claims.Expired(exp.Add(time.Minute)) {
		t.Error("expected token expired past exp")
	}
}

func TestDecodeClaimsMalformed(t *testing.T) {
	if _, err := DecodeClaims("not-a-jwt"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
