package middleware

import (
	"testing"
	"time"

	"arone/globals"

	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T) string {
	t.Helper()
	claims := &Claims{
		Username: "nimal",
		Email:    "nimal@example.com",
		UserID:   "u1234567890",
		Role:     []string{"user"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}

func TestValidateJWTBearerToken(t *testing.T) {
	claims, err := ValidateJWT("Bearer " + signTestToken(t))
	if err != nil {
		t.Fatalf("Expected valid token, got %v", err)
	}
	if claims.UserID != "u1234567890" {
		t.Errorf("Expected userId u1234567890, got %s", claims.UserID)
	}
	if len(claims.Role) != 1 || claims.Role[0] != "user" {
		t.Errorf("Expected role [user], got %v", claims.Role)
	}
}

func TestValidateJWTRejectsBareToken(t *testing.T) {
	// A token without the Bearer prefix must be rejected outright, not
	// truncated by seven characters and parsed.
	if _, err := ValidateJWT(signTestToken(t)); err == nil {
		t.Error("Expected error for missing Bearer prefix")
	}
}

func TestValidateJWTRejectsEmpty(t *testing.T) {
	if _, err := ValidateJWT(""); err == nil {
		t.Error("Expected error for empty token")
	}
}

func TestValidateJWTRejectsTamperedToken(t *testing.T) {
	token := signTestToken(t)
	if _, err := ValidateJWT("Bearer " + token[:len(token)-2] + "xx"); err == nil {
		t.Error("Expected error for tampered signature")
	}
}
