package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/atelierkoba/site-api/internal/notify"
	"github.com/atelierkoba/site-api/internal/observability/metrics"
	"github.com/atelierkoba/site-api/pkg/logging"
)

var contactTracer = otel.Tracer("atelier.internal.contact")

// ServiceConfig holds the notification addressing.
type ServiceConfig struct {
	FromEmail string
	FromName  string
	ToEmail   string
}

// Service runs the submission pipeline: parse, validate, sanitize, escape,
// format and deliver. A nil sender puts the service in log-only
// development mode where every valid submission succeeds without sending.
type Service struct {
	sender  notify.EmailSender
	cfg     ServiceConfig
	metrics *metrics.ContactMetrics
	logger  *logging.Logger
}

// NewService constructs a submission service.
func NewService(sender notify.EmailSender, cfg ServiceConfig, m *metrics.ContactMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{sender: sender, cfg: cfg, metrics: m, logger: logger}
}

// Process validates and delivers one submission body. It always returns a
// terminal HTTP status and a Result; errors never escape to the caller.
func (s *Service) Process(ctx context.Context, body []byte) (int, Result) {
	ctx, span := contactTracer.Start(ctx, "contact.process")
	defer span.End()

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		// Language is unknown before the body parses; default English.
		s.metrics.ObserveSubmission("invalid", false)
		return http.StatusBadRequest, failed(catalog(LangEnglish).invalidRequest)
	}

	lang := ParseLanguage(Sanitize(raw["language"]))
	msgs := catalog(lang)
	span.SetAttributes(attribute.String("contact.language", string(lang)))

	if falsy(raw["name"]) || falsy(raw["email"]) || falsy(raw["message"]) {
		s.metrics.ObserveSubmission("invalid", false)
		return http.StatusBadRequest, failed(msgs.required)
	}

	p := Payload{
		Name:     Sanitize(raw["name"]),
		Email:    Sanitize(raw["email"]),
		Message:  Sanitize(raw["message"]),
		Phone:    Sanitize(raw["phone"]),
		Date:     Sanitize(raw["date"]),
		Time:     Sanitize(raw["time"]),
		Language: lang,
	}

	if !ValidEmail(p.Email) {
		s.metrics.ObserveSubmission("invalid", p.Booking())
		return http.StatusBadRequest, failed(msgs.invalidEmail)
	}

	booking := p.Booking()
	span.SetAttributes(attribute.Bool("contact.booking", booking))

	esc := escapePayload(p)
	formattedDate := esc.Date
	if booking {
		if t, ok := ParseBookingDate(p.Date); ok {
			formattedDate = FormatLongFrench(t)
		}
	}

	if s.sender == nil {
		// Development fallback: no provider configured, log and succeed.
		s.logger.Info("contact submission (email disabled)",
			"name", p.Name,
			"email", p.Email,
			"phone", p.Phone,
			"date", p.Date,
			"time", p.Time,
			"booking", booking,
			"language", lang,
		)
		s.metrics.ObserveSubmission("accepted", booking)
		return http.StatusOK, succeeded(successMessage(msgs, booking))
	}

	msg := notify.EmailMessage{
		To:      s.cfg.ToEmail,
		ToName:  s.cfg.FromName,
		ReplyTo: p.Email,
		Subject: subject(esc.Name, booking),
		Body:    textBody(p, booking, formattedDate),
		HTML:    htmlBody(esc, booking, formattedDate),
	}

	start := time.Now()
	err := s.sender.Send(ctx, msg)
	s.metrics.ObserveSendLatency(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		return s.sendFailure(err, msgs, booking)
	}

	s.logger.Info("contact submission delivered", "booking", booking, "language", lang)
	s.metrics.ObserveSubmission("accepted", booking)
	return http.StatusOK, succeeded(successMessage(msgs, booking))
}

// sendFailure maps a provider error onto the client-facing contract:
// configuration problems are 400 with enriched detail, everything else is
// a generic retryable 500.
func (s *Service) sendFailure(err error, msgs catalogEntry, booking bool) (int, Result) {
	class, detail := ClassifySendError(err)
	switch class {
	case SendClassUnverifiedSender:
		if detail == "" {
			detail = EmailDomain(s.cfg.FromEmail)
		}
		s.logger.Error("provider rejected sender", "error", err, "domain", detail)
		s.metrics.ObserveSubmission("provider_config_error", booking)
		return http.StatusBadRequest, failed(msgs.domainUnverifiedMsg(detail))
	case SendClassTestRecipient:
		if detail == "" {
			detail = s.cfg.ToEmail
		}
		s.logger.Error("provider in test mode", "error", err, "allowed_recipient", detail)
		s.metrics.ObserveSubmission("provider_config_error", booking)
		return http.StatusBadRequest, failed(msgs.testRecipientMsg(detail))
	default:
		s.logger.Error("email delivery failed", "error", err)
		s.metrics.ObserveSubmission("provider_error", booking)
		return http.StatusInternalServerError, failed(msgs.sendFailed)
	}
}

func successMessage(msgs catalogEntry, booking bool) string {
	if booking {
		return msgs.sentBooking
	}
	return msgs.sentMessage
}
