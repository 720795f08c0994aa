// Package mailgun sends account emails through the Mailgun messages API.
package mailgun

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

const (
	DefaultBaseURL = "https://api.mailgun.net"

	apiVersionPath = "/v3"

	verifyEmailSubject  = "Verify your email"
	verifyEmailTemplate = "verify-email"
)

// Config holds the Mailgun account settings. An empty APIKey disables
// delivery: messages are only logged.
type Config struct {
	BaseURL string
	Domain  string
	APIKey  string
	From    string
}

// Mailer implements ports.Mailer.
type Mailer struct {
	client mg.Mailgun
	from   string
	logger *slog.Logger
}

// NewMailer creates a Mailer for cfg. A nil client means an http.Client with
// a ten second timeout.
func NewMailer(cfg Config, client *http.Client, logger *slog.Logger) *Mailer {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.From == "" {
		cfg.From = "Eats <mailgun@" + cfg.Domain + ">"
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	m := &Mailer{from: cfg.From, logger: logger.With("component", "mailgun_mailer")}
	if cfg.APIKey != "" {
		impl := mg.NewMailgun(cfg.Domain, cfg.APIKey)
		impl.SetClient(client)
		impl.SetAPIBase(strings.TrimRight(cfg.BaseURL, "/") + apiVersionPath)
		m.client = impl
	}
	return m
}

// SendVerificationEmail renders the verify-email template with the code.
func (m *Mailer) SendVerificationEmail(ctx context.Context, email, code string) error {
	return m.send(ctx, email, verifyEmailSubject, verifyEmailTemplate,
		"Your verification code is "+code,
		map[string]string{
			"code":     code,
			"username": email,
		})
}

func (m *Mailer) send(ctx context.Context, to, subject, template, text string, vars map[string]string) error {
	if m.client == nil {
		m.logger.InfoContext(ctx, "Mail delivery disabled, skipping message", "to", to, "template", template)
		return nil
	}

	message := m.client.NewMessage(m.from, subject, text, to)
	message.SetTemplate(template)
	for k, v := range vars {
		if err := message.AddVariable(k, v); err != nil {
			return fmt.Errorf("failed to set mail variable %s: %w", k, err)
		}
	}

	_, id, err := m.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send mail via mailgun (status %d): %w", mg.GetStatusFromErr(err), err)
	}

	m.logger.DebugContext(ctx, "Mail sent", "to", to, "template", template, "id", id)
	return nil
}
