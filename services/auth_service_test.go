package services

import (
	"errors"
	"testing"

	"github.com/NzJoaco/food-tracker/utils"
)

var testSecret = []byte("test-secret")

func TestRegisterHashesPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret)

	user, err := svc.Register("a@x.com", "pw123456", "Ana")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if user.Password == "pw123456" {
		t.Error("password stored in plain text")
	}
	if !utils.CheckPasswordHash("pw123456", user.Password) {
		t.Error("stored hash does not verify the password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret)

	if _, err := svc.Register("dup@x.com", "pw123456", ""); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register("dup@x.com", "other-password", ""); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("got %v, want ErrEmailTaken", err)
	}
}

func TestAuthenticateIssuesTokenForUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret)

	user, err := svc.Register("login@x.com", "pw123456", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := svc.Authenticate("login@x.com", "pw123456")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	id, err := utils.ParseUserID(token, testSecret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if id != user.ID {
		t.Errorf("token carries user %d, want %d", id, user.ID)
	}
}

// Unknown email and wrong password must fail the same way.
func TestAuthenticateFailuresIndistinguishable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret)

	if _, err := svc.Register("real@x.com", "pw123456", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, errWrongPw := svc.Authenticate("real@x.com", "wrong-password")
	_, errNoUser := svc.Authenticate("ghost@x.com", "pw123456")

	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", errWrongPw)
	}
	if !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v", errNoUser)
	}
}
