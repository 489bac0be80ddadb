package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/mailer"
	"portfolio_backend/internal/repository"
)

const resetTokenTTL = 24 * time.Hour

// ErrInvalidOrExpiredToken is returned for a token that was never issued
// and for one past its expiry alike.
var ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

type ResetService struct {
	users   repository.Users
	tokens  repository.ResetTokens
	mail    mailer.Mailer
	baseURL string
	log     *logger.Logger
	now     func() time.Time
}

func NewResetService(users repository.Users, tokens repository.ResetTokens, mail mailer.Mailer, baseURL string, log *logger.Logger) *ResetService {
	return &ResetService{
		users:   users,
		tokens:  tokens,
		mail:    mail,
		baseURL: baseURL,
		log:     log,
		now:     time.Now,
	}
}

var _ PasswordReset = (*ResetService)(nil)

// Request issues a reset token for the address and emails the link. The
// outcome is identical whether the email is registered or the send fails,
// so the endpoint leaks nothing about account existence.
func (s *ResetService) Request(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u == nil {
		return nil
	}

	token := uuid.NewString()
	expiresAt := s.now().UTC().Add(resetTokenTTL)
	if err := s.tokens.Create(ctx, u.ID, token, expiresAt); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token)
	body := fmt.Sprintf(
		"Click the link below to reset your password:\n\n%s\n\nThis link will expire in 24 hours.",
		link,
	)
	if err := s.mail.Send(u.Email, "Password Reset Request", body); err != nil {
		// best-effort: the requester's response must not change
		s.log.Errorw("reset_email_failed", "user_id", u.ID, "err", err)
	}
	return nil
}

// Redeem validates the token, rewrites the password hash and invalidates
// every outstanding token for that user.
func (s *ResetService) Redeem(ctx context.Context, token, newPassword string) error {
	stored, err := s.tokens.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if stored == nil || stored.Expired(s.now()) {
		return ErrInvalidOrExpiredToken
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}
	return s.tokens.ResetPassword(ctx, stored.UserID, hash)
}
