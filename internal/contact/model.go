package contact

// Language selects which message catalog a response is written in.
type Language string

const (
	LangEnglish Language = "en"
	LangFrench  Language = "fr"
)

// ParseLanguage resolves a raw language value. Anything other than the
// literal "fr" is English.
func ParseLanguage(raw string) Language {
	if raw == "fr" {
		return LangFrench
	}
	return LangEnglish
}

// Payload is the wire entity a visitor submits. Date and Time are both
// present or both absent; together they mark the submission as a booking
// rather than a plain message.
type Payload struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Message  string   `json:"message"`
	Phone    string   `json:"phone,omitempty"`
	Date     string   `json:"date,omitempty"`
	Time     string   `json:"time,omitempty"`
	Language Language `json:"language,omitempty"`
}

// Booking reports whether the payload carries a date/time slot.
func (p Payload) Booking() bool {
	return p.Date != "" && p.Time != ""
}

// Result is the two-shape response contract: either success+message or a
// single error string.
type Result struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func succeeded(message string) Result {
	return Result{Success: true, Message: message}
}

func failed(message string) Result {
	return Result{Error: message}
}
