// Package mail delivers one-time verification codes to users. The production
// implementation speaks SMTP; deployments without a relay fall back to
// logging the code so local development still works end to end.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"
)

// Notifier delivers a verification code to a destination address.
type Notifier interface {
	SendOTP(ctx context.Context, toEmail, code string, expiresAt time.Time) error
}

// SMTPConfig carries relay settings. Username may be empty for
// unauthenticated relays (mailhog, local postfix).
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends the code through a plain SMTP relay.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendOTP(ctx context.Context, toEmail, code string, expiresAt time.Time) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := buildMessage(m.cfg.From, toEmail, code, expiresAt)

	errCh := make(chan error, 1)
	go func() {
		errCh <- smtp.SendMail(addr, auth, m.cfg.From, []string{toEmail}, msg)
	}()

	// net/smtp has no context support, so honour cancellation here. An
	// abandoned send finishes in the background and is harmless.
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("send otp mail: %w", err)
		}
		return nil
	}
}

func buildMessage(from, to, code string, expiresAt time.Time) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	b.WriteString("Subject: Your verification code\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Your verification code is: %s\r\n", code)
	fmt.Fprintf(&b, "It expires at %s.\r\n", expiresAt.UTC().Format(time.RFC1123))
	return []byte(b.String())
}

// LogNotifier writes the code to the application log instead of sending it
// anywhere. Used when no SMTP relay is configured.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n *LogNotifier) SendOTP(ctx context.Context, toEmail, code string, expiresAt time.Time) error {
	n.Logger.WarnContext(ctx, "no smtp relay configured, logging verification code",
		"email", toEmail,
		"code", code,
		"expires_at", expiresAt.UTC().Format(time.RFC3339),
	)
	return nil
}
