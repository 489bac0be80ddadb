package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio_backend/internal/mailer"
	"portfolio_backend/internal/repository"
)

// ErrDelivery signals a failed relay send; unlike reset mail this one is
// surfaced to the caller.
var ErrDelivery = errors.New("email delivery failed")

type ContactService struct {
	users repository.Users
	mail  mailer.Mailer
}

func NewContactService(users repository.Users, mail mailer.Mailer) *ContactService {
	return &ContactService{users: users, mail: mail}
}

var _ Contact = (*ContactService)(nil)

// Relay forwards a visitor's message to the portfolio owner's registered
// address, embedding the visitor's contact details for replies.
func (s *ContactService) Relay(ctx context.Context, userID int, name, email, message string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	if name == "" {
		name = "Anonymous"
	}
	if email == "" {
		email = "No email provided"
	}

	subject := fmt.Sprintf("Contact from %s", name)
	body := fmt.Sprintf("From: %s\n\n%s", email, message)
	if err := s.mail.Send(u.Email, subject, body); err != nil {
		return fmt.Errorf("%w: %s", ErrDelivery, err)
	}
	return nil
}
