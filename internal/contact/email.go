package contact

import (
	"fmt"
	"strings"
)

// escaped holds the payload fields after HTML escaping, ready to be
// interpolated into the notification email.
type escaped struct {
	Name    string
	Email   string
	Message string
	Phone   string
	Date    string
	Time    string
}

func escapePayload(p Payload) escaped {
	return escaped{
		Name:    EscapeHTML(p.Name),
		Email:   EscapeHTML(p.Email),
		Message: EscapeHTML(p.Message),
		Phone:   EscapeHTML(p.Phone),
		Date:    EscapeHTML(p.Date),
		Time:    EscapeHTML(p.Time),
	}
}

// subject builds the notification subject line. Booking requests get
// distinct wording so they stand out in the inbox.
func subject(name string, booking bool) string {
	if booking {
		return "Nouvelle demande de rendez-vous de " + name
	}
	return "Nouveau message de " + name
}

// htmlBody builds the notification email body. All interpolated values
// must already be escaped; formattedDate is the long-form French date or
// the escaped raw value when parsing failed.
func htmlBody(e escaped, booking bool, formattedDate string) string {
	var b strings.Builder

	title := "Nouveau message depuis le site"
	if booking {
		title = "Nouvelle demande de rendez-vous"
	}

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	fmt.Fprintf(&b, "<h2>%s</h2>", title)
	fmt.Fprintf(&b, "<p><strong>Nom :</strong> %s</p>", e.Name)
	fmt.Fprintf(&b, "<p><strong>Email :</strong> %s</p>", e.Email)
	if e.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>Téléphone :</strong> %s</p>", e.Phone)
	}
	if booking {
		b.WriteString(`<div style="background: #f5f5f5; padding: 12px; border-radius: 6px;">`)
		fmt.Fprintf(&b, "<p><strong>Date souhaitée :</strong> %s</p>", formattedDate)
		fmt.Fprintf(&b, "<p><strong>Heure :</strong> %s</p>", e.Time)
		b.WriteString("</div>")
	}
	fmt.Fprintf(&b, "<p><strong>Message :</strong></p><p>%s</p>", e.Message)
	b.WriteString("</div>")

	return b.String()
}

// textBody is the plain-text alternative for clients that skip HTML.
func textBody(p Payload, booking bool, formattedDate string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nom : %s\nEmail : %s\n", p.Name, p.Email)
	if p.Phone != "" {
		fmt.Fprintf(&b, "Téléphone : %s\n", p.Phone)
	}
	if booking {
		fmt.Fprintf(&b, "Date souhaitée : %s\nHeure : %s\n", formattedDate, p.Time)
	}
	fmt.Fprintf(&b, "\n%s\n", p.Message)
	return b.String()
}
