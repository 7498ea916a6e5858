package notify

import (
	"context"
	"strings"
	"testing"

	appconfig "github.com/atelierkoba/site-api/internal/config"
)

func TestNewSendGridSender_NilWithoutAPIKey(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "",
		FromEmail: "site@example.com",
	}, nil)

	if sender != nil {
		t.Error("expected nil sender when API key is empty")
	}
}

func TestNewSendGridSender_DefaultFromName(t *testing.T) {
	sender := NewSendGridSender(SendGridConfig{
		APIKey:    "test-key",
		FromEmail: "site@example.com",
	}, nil)

	if sender == nil {
		t.Fatal("expected non-nil sender")
	}
	if sender.fromName != "Atelier Koba" {
		t.Errorf("expected default from name, got %q", sender.fromName)
	}
}

func TestSendGridSender_Send_NilClient(t *testing.T) {
	sender := &SendGridSender{}

	err := sender.Send(context.Background(), EmailMessage{
		To:      "hello@example.com",
		Subject: "Test",
		Body:    "Test body",
	})

	if err == nil {
		t.Error("expected error when client is nil")
	}
}

func TestSendError_Error(t *testing.T) {
	err := &SendError{Provider: "sendgrid", StatusCode: 403, Detail: "The from address does not match a verified Sender Identity"}
	msg := err.Error()
	if !strings.Contains(msg, "sendgrid") || !strings.Contains(msg, "403") {
		t.Errorf("unexpected error string: %s", msg)
	}

	noStatus := &SendError{Provider: "ses", Detail: "MessageRejected"}
	if strings.Contains(noStatus.Error(), "status") {
		t.Errorf("unexpected status in error string: %s", noStatus.Error())
	}
}

func TestNewFromConfig_DevModeWhenUnconfigured(t *testing.T) {
	sender, err := NewFromConfig(context.Background(), &appconfig.Config{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender != nil {
		t.Error("expected nil sender when no provider is configured")
	}
}

func TestNewFromConfig_SendGrid(t *testing.T) {
	cfg := &appconfig.Config{
		SendGridAPIKey:   "SG.test",
		ContactFromEmail: "site@example.com",
	}
	sender, err := NewFromConfig(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := sender.(*SendGridSender); !ok {
		t.Errorf("expected SendGrid sender, got %T", sender)
	}
}
