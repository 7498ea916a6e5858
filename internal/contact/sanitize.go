package contact

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// emailPattern accepts local@domain.tld with non-empty segments. Shared by
// the form state machine and the endpoint so both sides agree on what a
// valid address is.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has a plausible local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Sanitize coerces an arbitrary decoded JSON value to a trimmed string.
// Absent and null fields normalize to "".
func Sanitize(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// falsy mirrors the required-field presence check: absent, null, empty
// string, zero and false all fail it.
func falsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case float64:
		return t == 0
	case bool:
		return !t
	default:
		return false
	}
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML replaces the five HTML-significant characters with their
// entity equivalents. Applied exactly once per field, right before the
// value is interpolated into the notification email body.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
