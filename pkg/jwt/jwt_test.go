package jwt

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("s3cret")

	token, err := GenerateToken(secret, 42, "alice@example.com", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id = %d", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("email = %q", claims.Email)
	}
	if claims.Subject != "42" {
		t.Fatalf("subject = %q", claims.Subject)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("right"), 1, "a@b.c", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken([]byte("wrong"), token); err == nil {
		t.Fatal("expected signature error")
	}
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("s3cret")
	token, err := GenerateToken(secret, 1, "a@b.c", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken(secret, token); err == nil {
		t.Fatal("expected expiry error")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken([]byte("s3cret"), "not.a.token"); err == nil {
		t.Fatal("expected parse error")
	}
}
