package utils

import (
	"errors"
	"testing"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("round-trip-secret")

	token, err := GenerateJWT(42, secret)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	id, err := ParseUserID(token, secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != 42 {
		t.Errorf("got user %d, want 42", id)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, []byte("secret-a"))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseUserID(token, []byte("secret-b")); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}

func TestJWTGarbage(t *testing.T) {
	if _, err := ParseUserID("not-a-token", []byte("secret")); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("got %v, want ErrInvalidToken", err)
	}
}
