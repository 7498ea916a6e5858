package notify

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/atelierkoba/site-api/pkg/logging"
)

// EmailSender defines the interface for sending emails.
// Implementations can be swapped (SendGrid, SES) without changing callers.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage represents an email to be sent.
type EmailMessage struct {
	To      string
	ToName  string
	ReplyTo string // Usually the submitter's address so replies reach them directly.
	Subject string
	Body    string // Plain text body
	HTML    string // Optional HTML body
}

// SendError is a delivery failure reported by the provider. Detail carries
// the provider's raw message so callers can classify configuration errors
// (unverified sender, sandbox restrictions) separately from transient ones.
type SendError struct {
	Provider   string
	StatusCode int
	Detail     string
}

func (e *SendError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("notify: %s send failed (status %d): %s", e.Provider, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("notify: %s send failed: %s", e.Provider, e.Detail)
}

// SendGridSender sends emails via the SendGrid API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	logger    *logging.Logger
}

// SendGridConfig holds configuration for SendGrid.
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// NewSendGridSender creates a new SendGrid email sender. Returns nil when
// no API key is configured.
func NewSendGridSender(cfg SendGridConfig, logger *logging.Logger) *SendGridSender {
	if cfg.APIKey == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.FromName == "" {
		cfg.FromName = "Atelier Koba"
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		logger:    logger,
	}
}

// Send sends an email via SendGrid.
func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	if s.client == nil {
		return fmt.Errorf("notify: sendgrid client not configured")
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)

	body := msg.Body
	if body == "" {
		body = " "
	}
	message := mail.NewSingleEmail(from, msg.Subject, to, body, msg.HTML)
	if msg.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", msg.ReplyTo))
	}

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		s.logger.Error("sendgrid send failed", "error", err, "to", msg.To)
		return &SendError{Provider: "sendgrid", Detail: err.Error()}
	}

	if response.StatusCode >= 400 {
		s.logger.Error("sendgrid returned error status", "status", response.StatusCode, "body", response.Body, "to", msg.To)
		return &SendError{Provider: "sendgrid", StatusCode: response.StatusCode, Detail: response.Body}
	}

	s.logger.Info("email sent via sendgrid",
		"to", msg.To,
		"subject", msg.Subject,
		"status", response.StatusCode,
		"message_id", response.Headers["X-Message-Id"],
	)
	return nil
}

var _ EmailSender = (*SendGridSender)(nil)
