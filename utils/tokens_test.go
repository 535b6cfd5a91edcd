package utils

import (
	"testing"
	"time"

	"lostfound/internal/models"
)

func TestNewTokenManagerRejectsEmptyKey(t *testing.T) {
	if _, err := NewTokenManager("", time.Hour); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewTokenManager("test-signing-key", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	user := models.User{ID: "user-1", Email: "a@example.com"}
	token, err := m.NewJWT(user)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user id %q, got %q", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Fatalf("expected email %q, got %q", user.Email, claims.Email)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	issuer, _ := NewTokenManager("key-one", time.Hour)
	verifier, _ := NewTokenManager("key-two", time.Hour)

	token, err := issuer.NewJWT(models.User{ID: "user-1"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected parse to fail with wrong key")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m, _ := NewTokenManager("test-signing-key", -time.Minute)
	token, err := m.NewJWT(models.User{ID: "user-1"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatal("expected parse to fail for expired token")
	}
}

func TestGenerateVerificationCode(t *testing.T) {
	code := GenerateVerificationCode()
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			t.Fatalf("expected digits only, got %q", code)
		}
	}
}
