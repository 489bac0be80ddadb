package models

import "time"

// PasswordReset is a single-use reset credential.
// A token is redeemable only while now < ExpiresAt; redeeming any token
// invalidates every outstanding token for the same user.
type PasswordReset struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Token     string    `json:"-"` // never serialized
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the token is past its expiry at the given instant.
func (p *PasswordReset) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
