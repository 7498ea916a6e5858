package contact

import (
	"errors"
	"testing"

	"github.com/atelierkoba/site-api/internal/notify"
)

func TestClassifySendError_UnverifiedDomain(t *testing.T) {
	err := &notify.SendError{
		Provider:   "sendgrid",
		StatusCode: 403,
		Detail:     "The from address does not match a verified Sender Identity. Mail cannot be sent until this error is resolved. Verify atelierkoba.fr to continue.",
	}
	class, detail := ClassifySendError(err)
	if class != SendClassUnverifiedSender {
		t.Fatalf("expected unverified sender class, got %v", class)
	}
	if detail != "atelierkoba.fr" {
		t.Errorf("expected extracted domain, got %q", detail)
	}
}

func TestClassifySendError_UnverifiedIdentityWithAddress(t *testing.T) {
	err := &notify.SendError{
		Provider: "ses",
		Detail:   "MessageRejected: Email address is not verified. The following identities failed the check in region EU-WEST-3: site@atelierkoba.fr",
	}
	class, detail := ClassifySendError(err)
	if class != SendClassUnverifiedSender {
		t.Fatalf("expected unverified sender class, got %v", class)
	}
	if detail != "atelierkoba.fr" {
		t.Errorf("expected domain of embedded address, got %q", detail)
	}
}

func TestClassifySendError_TestRecipient(t *testing.T) {
	err := &notify.SendError{
		Provider:   "sendgrid",
		StatusCode: 403,
		Detail:     "You can only send testing emails to your own email address (owner@atelierkoba.fr).",
	}
	class, detail := ClassifySendError(err)
	if class != SendClassTestRecipient {
		t.Fatalf("expected test recipient class, got %v", class)
	}
	if detail != "owner@atelierkoba.fr" {
		t.Errorf("expected extracted recipient, got %q", detail)
	}
}

func TestClassifySendError_TransientByDefault(t *testing.T) {
	cases := []error{
		&notify.SendError{Provider: "sendgrid", StatusCode: 500, Detail: "internal error"},
		&notify.SendError{Provider: "sendgrid", StatusCode: 429, Detail: "too many requests"},
		errors.New("dial tcp: connection refused"),
	}
	for _, err := range cases {
		class, _ := ClassifySendError(err)
		if class != SendClassTransient {
			t.Errorf("expected transient class for %v, got %v", err, class)
		}
	}
}

func TestEmailDomain(t *testing.T) {
	if got := EmailDomain("site@atelierkoba.fr"); got != "atelierkoba.fr" {
		t.Errorf("unexpected domain: %q", got)
	}
	if got := EmailDomain("no-at-sign"); got != "no-at-sign" {
		t.Errorf("expected passthrough, got %q", got)
	}
}
