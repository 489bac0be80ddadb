package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestTokenManager(secret string, now time.Time) *TokenManager {
	m := NewTokenManager(secret)
	m.now = func() time.Time { return now }
	return m
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := newTestTokenManager("test-secret", time.Now())

	token, err := m.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
}

func TestTokenManager_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestTokenManager("test-secret", issuedAt)

	token, err := m.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// still valid one minute before the 1h TTL
	m.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	if _, err := m.Parse(token); err != nil {
		t.Fatalf("token should be valid at +59min: %v", err)
	}

	// expired one minute past it
	m.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	if _, err := m.Parse(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired at +61min, got %v", err)
	}
}

func TestTokenManager_InvalidSignature(t *testing.T) {
	now := time.Now()
	issuer := newTestTokenManager("secret-a", now)
	verifier := newTestTokenManager("secret-b", now)

	token, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Parse(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenManager_Malformed(t *testing.T) {
	m := newTestTokenManager("test-secret", time.Now())

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.Parse(token); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", token, err)
		}
	}
}

func TestTokenManager_NonNumericSubject(t *testing.T) {
	now := time.Now()
	m := newTestTokenManager("test-secret", now)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-number",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	signed, err := forged.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := m.Parse(signed); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
