package service

import (
	"context"
	"errors"
	"testing"

	"portfolio_backend/internal/repository"
)

func newTestAuthService() (*AuthService, *fakeUsers) {
	users := newFakeUsers()
	return NewAuthService(users, NewTokenManager("test-secret")), users
}

func TestAuthService_SignUpThenLogin(t *testing.T) {
	s, _ := newTestAuthService()
	ctx := context.Background()

	token, u, err := s.SignUp(ctx, "a@x.com", "p4ssw0rd", "Alice", "Dev", "bio")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if token == "" || u.ID == 0 {
		t.Fatalf("expected token and id, got token=%q user=%+v", token, u)
	}

	loginToken, loginUser, err := s.Login(ctx, "a@x.com", "p4ssw0rd")
	if err != nil {
		t.Fatalf("login with the signup credentials should succeed: %v", err)
	}
	if loginUser.ID != u.ID {
		t.Fatalf("login user mismatch: %d != %d", loginUser.ID, u.ID)
	}

	// both tokens decode to the same identity
	for _, tok := range []string{token, loginToken} {
		id, err := s.ParseToken(tok)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if id != u.ID {
			t.Fatalf("token decodes to %d, want %d", id, u.ID)
		}
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	s, _ := newTestAuthService()
	ctx := context.Background()

	if _, _, err := s.SignUp(ctx, "a@x.com", "p1", "Alice", "", ""); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	// a different password and name must not matter
	_, _, err := s.SignUp(ctx, "a@x.com", "p2", "Bob", "", "")
	if !errors.Is(err, repository.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	s, _ := newTestAuthService()
	ctx := context.Background()

	if _, _, err := s.SignUp(ctx, "a@x.com", "right", "Alice", "", ""); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, _, unknownErr := s.Login(ctx, "nobody@x.com", "whatever")
	_, _, wrongErr := s.Login(ctx, "a@x.com", "wrong")

	if !errors.Is(unknownErr, ErrInvalidCredentials) || !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v and %v", unknownErr, wrongErr)
	}
}

func TestAuthService_SignUp_EmptyPassword(t *testing.T) {
	s, _ := newTestAuthService()

	if _, _, err := s.SignUp(context.Background(), "a@x.com", "   ", "", "", ""); err == nil {
		t.Fatalf("expected error for blank password")
	}
}

func TestHashPassword_NeverPlaintext(t *testing.T) {
	hash, err := hashPassword("p4ssw0rd")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "p4ssw0rd" {
		t.Fatalf("hash equals the plaintext password")
	}
	if err := verifyPassword(hash, "p4ssw0rd"); err != nil {
		t.Fatalf("verify should succeed: %v", err)
	}
	if err := verifyPassword(hash, "other"); err == nil {
		t.Fatalf("verify should fail for a wrong password")
	}

	// salted: hashing twice yields different strings
	again, err := hashPassword("p4ssw0rd")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == again {
		t.Fatalf("expected randomized salt to vary the hash")
	}
}
