// Package mailer delivers transactional email over authenticated SMTP.
package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/logger"
)

// Mailer sends a single plain-text message. Sends are synchronous and
// attempted exactly once.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer talks STARTTLS to the configured relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	sender string
	log    *logger.Logger
}

var _ Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg *config.Config, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.MailHost, cfg.MailPort, cfg.MailUsername, cfg.MailPassword),
		sender: cfg.MailSender,
		log:    log,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	m.log.Infow("mail sent", "to", to, "subject", subject)
	return nil
}
