package contact

import "fmt"

// catalogEntry holds the user-facing strings for one language.
type catalogEntry struct {
	required       string
	invalidEmail   string
	invalidRequest string
	sendFailed     string
	sentMessage    string
	sentBooking    string

	// Provider configuration errors, enriched with the detail extracted
	// from the provider's raw error text.
	domainUnverified string // takes the sender domain
	testRecipient    string // takes the only allowed recipient
}

var catalogs = map[Language]catalogEntry{
	LangEnglish: {
		required:         "All fields are required",
		invalidEmail:     "Invalid email format",
		invalidRequest:   "Invalid request format",
		sendFailed:       "Failed to send the message. Please try again later.",
		sentMessage:      "Your message has been sent successfully.",
		sentBooking:      "Your booking request has been sent successfully.",
		domainUnverified: "The sending domain %s is not verified yet. Please contact the site owner.",
		testRecipient:    "Email delivery is in test mode: messages can only be sent to %s.",
	},
	LangFrench: {
		required:         "Tous les champs sont requis",
		invalidEmail:     "Format d'email invalide",
		invalidRequest:   "Format de requête invalide",
		sendFailed:       "Échec de l'envoi du message. Veuillez réessayer plus tard.",
		sentMessage:      "Votre message a bien été envoyé.",
		sentBooking:      "Votre demande de rendez-vous a bien été envoyée.",
		domainUnverified: "Le domaine d'envoi %s n'est pas encore vérifié. Veuillez contacter le propriétaire du site.",
		testRecipient:    "L'envoi d'emails est en mode test : les messages ne peuvent être envoyés qu'à %s.",
	},
}

func catalog(lang Language) catalogEntry {
	if c, ok := catalogs[lang]; ok {
		return c
	}
	return catalogs[LangEnglish]
}

func (c catalogEntry) domainUnverifiedMsg(domain string) string {
	return fmt.Sprintf(c.domainUnverified, domain)
}

func (c catalogEntry) testRecipientMsg(email string) string {
	return fmt.Sprintf(c.testRecipient, email)
}
