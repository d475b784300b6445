package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.alis.build/alog"

	"github.com/ukaji3/reportfill-go/internal/config"
	"github.com/ukaji3/reportfill-go/pkg/reportfill"
)

// Defaults applied when the submission leaves subject or body empty.
const (
	DefaultSubject = "Backstock Report"
	DefaultBody    = "Please see the attached report."
)

// ErrNoRecipient indicates a dispatch without a destination address.
var ErrNoRecipient = errors.New("no recipient provided")

// ErrDeliveryFailed wraps errors returned by the mail transport.
var ErrDeliveryFailed = errors.New("mail delivery failed")

// ConfigError reports the mail settings that must be set before sending.
type ConfigError struct {
	Provider string
	Missing  []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s config missing: %s", e.Provider, strings.Join(e.Missing, ", "))
}

// Dispatcher sends filled workbooks through a Sender.
type Dispatcher struct {
	sender   Sender
	from     string
	provider string
	missing  []string
}

// NewDispatcher returns a Dispatcher sending from the given address.
func NewDispatcher(sender Sender, from string) *Dispatcher {
	return &Dispatcher{sender: sender, from: from, provider: config.ProviderSMTP}
}

// FromConfig builds the Dispatcher for the configured provider. Missing
// settings do not fail here; Dispatch reports them as a *ConfigError.
func FromConfig(cfg config.MailConfig) *Dispatcher {
	provider := cfg.Provider
	if provider == "" {
		provider = config.ProviderSMTP
	}

	return &Dispatcher{
		sender:   NewSender(cfg),
		from:     cfg.Sender,
		provider: provider,
		missing:  MissingSettings(cfg),
	}
}

// NewSender returns the transport selected by cfg.Provider, SMTP unless
// SendGrid is requested.
func NewSender(cfg config.MailConfig) Sender {
	if cfg.Provider == config.ProviderSendGrid {
		return NewSendGridSender(cfg.SendGridAPIKey)
	}
	return NewSMTPSender(cfg.SMTP)
}

// Dispatch mails data as an xlsx attachment named filename to recipient.
// Empty subject and body fall back to DefaultSubject and DefaultBody.
func (d *Dispatcher) Dispatch(ctx context.Context, data []byte, filename, recipient, subject, body string) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return ErrNoRecipient
	}
	if len(d.missing) > 0 {
		return &ConfigError{Provider: strings.ToUpper(d.provider), Missing: d.missing}
	}
	if subject == "" {
		subject = DefaultSubject
	}
	if body == "" {
		body = DefaultBody
	}

	msg := &Message{
		From:    d.from,
		To:      recipient,
		Subject: subject,
		Body:    body,
		Attachment: &Attachment{
			Filename:    filename,
			ContentType: reportfill.ContentType,
			Data:        data,
		},
	}

	if err := d.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	alog.Infof(ctx, "sent %s (%d bytes) to %s", filename, len(data), recipient)
	return nil
}

type setting struct {
	key   string
	value string
}

// MissingSettings lists the unset settings the configured provider needs,
// named by their environment variables.
func MissingSettings(cfg config.MailConfig) []string {
	required := []setting{{"SENDER_EMAIL", cfg.Sender}}
	if cfg.Provider == config.ProviderSendGrid {
		required = append(required, setting{"SENDGRID_API_KEY", cfg.SendGridAPIKey})
	} else {
		required = append(required,
			setting{"SMTP_SERVER", cfg.SMTP.Server},
			setting{"SMTP_USERNAME", cfg.SMTP.Username},
			setting{"SMTP_PASSWORD", cfg.SMTP.Password},
		)
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.key)
		}
	}
	return missing
}

// Presence reports which mail settings are set, without exposing their values.
func Presence(cfg config.MailConfig) map[string]bool {
	return map[string]bool{
		"MAIL_PROVIDER":    cfg.Provider != "",
		"SENDER_EMAIL":     cfg.Sender != "",
		"SMTP_SERVER":      cfg.SMTP.Server != "",
		"SMTP_PORT":        cfg.SMTP.Port > 0,
		"SMTP_USERNAME":    cfg.SMTP.Username != "",
		"SMTP_PASSWORD":    cfg.SMTP.Password != "",
		"SENDGRID_API_KEY": cfg.SendGridAPIKey != "",
	}
}
