package contact

import (
	"errors"
	"regexp"
	"strings"

	"github.com/atelierkoba/site-api/internal/notify"
)

// SendClass buckets a provider delivery failure.
type SendClass int

const (
	// SendClassTransient covers everything retryable: network faults,
	// provider 5xx, rate limits. Surfaced as HTTP 500.
	SendClassTransient SendClass = iota
	// SendClassUnverifiedSender means the sending domain or identity is
	// not verified with the provider. Operator action, HTTP 400.
	SendClassUnverifiedSender
	// SendClassTestRecipient means the provider account is sandboxed and
	// only accepts a fixed recipient. Operator action, HTTP 400.
	SendClassTestRecipient
)

var (
	domainPattern = regexp.MustCompile(`[A-Za-z0-9][A-Za-z0-9.-]*\.[A-Za-z]{2,}`)
	addressInText = regexp.MustCompile(`[^\s@"'(),<>]+@[^\s@"'(),<>]+\.[A-Za-z]{2,}`)
)

// ClassifySendError inspects a provider error and extracts whatever detail
// the raw text carries (the unverified domain, or the only allowed
// recipient). Providers report these conditions as prose, so this is
// substring matching; keep every pattern here so a structured error source
// can replace the whole thing at once.
func ClassifySendError(err error) (SendClass, string) {
	var sendErr *notify.SendError
	detail := err.Error()
	if errors.As(err, &sendErr) {
		detail = sendErr.Detail
	}
	lower := strings.ToLower(detail)

	switch {
	case strings.Contains(lower, "testing email"),
		strings.Contains(lower, "test mode"),
		strings.Contains(lower, "own email address"):
		return SendClassTestRecipient, addressInText.FindString(detail)

	case strings.Contains(lower, "not verified"),
		strings.Contains(lower, "verify a domain"),
		strings.Contains(lower, "sender identity"),
		strings.Contains(lower, "messagerejected"):
		return SendClassUnverifiedSender, senderDomain(detail)
	}

	return SendClassTransient, ""
}

// senderDomain pulls the first domain-shaped token out of the provider's
// error text, preferring the domain of an embedded email address.
func senderDomain(text string) string {
	if addr := addressInText.FindString(text); addr != "" {
		if at := strings.LastIndex(addr, "@"); at >= 0 {
			return addr[at+1:]
		}
	}
	return domainPattern.FindString(text)
}

// EmailDomain returns the domain part of an address, for fallback detail
// when the provider text contains none.
func EmailDomain(address string) string {
	if at := strings.LastIndex(address, "@"); at >= 0 {
		return address[at+1:]
	}
	return address
}
