package services

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/nkr-tech/nkr-tech-api/config"
)

// EmailSender delivers a single email message. Implementations must be
// safe for concurrent use; submission handlers dispatch through this
// interface on their own goroutines and never wait on the result.
type EmailSender interface {
	SendEmail(recipient string, subject string, body string) error
}

// NewEmailSender picks the SMTP gateway when credentials are present
// and falls back to logging the message otherwise
func NewEmailSender(cfg *config.Config) EmailSender {
	if cfg.SMTPConfigured() {
		return &smtpEmailSender{
			host:     cfg.SMTPHost,
			port:     cfg.SMTPPort,
			username: cfg.SMTPUser,
			password: cfg.SMTPPassword,
			from:     cfg.SMTPFrom,
		}
	}
	log.Println("SMTP not configured, outbound email will be logged only")
	return &logEmailSender{}
}

// smtpEmailSender delivers mail through a plain SMTP gateway
type smtpEmailSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func (s *smtpEmailSender) SendEmail(recipient, subject, body string) error {
	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		s.from, recipient, subject, body,
	)

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := s.host + ":" + s.port
	if err := smtp.SendMail(addr, auth, s.username, []string{recipient}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", recipient, err)
	}
	return nil
}

// logEmailSender writes the message to the server log. Development
// fallback only; it always reports success.
type logEmailSender struct{}

func (l *logEmailSender) SendEmail(recipient, subject, body string) error {
	log.Printf("Email (not sent, SMTP unconfigured) to=%s subject=%q", recipient, subject)
	return nil
}
