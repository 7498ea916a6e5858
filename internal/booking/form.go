// Package booking models the client-side contact/booking form: calendar
// navigation, slot selection, field edits and the submission lifecycle.
package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atelierkoba/site-api/internal/calendar"
	"github.com/atelierkoba/site-api/internal/contact"
)

// State is the form's position in the submission lifecycle.
type State int

const (
	StateIdle State = iota
	StateDateChosen
	StateSlotChosen
	StateSubmitting
	StateSucceeded
)

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldMessage Field = "message"
)

var (
	// ErrInFlight rejects any interaction while a submission is pending.
	ErrInFlight = errors.New("booking: submission in flight")
	// ErrNotSelectable rejects weekend and past dates.
	ErrNotSelectable = errors.New("booking: date not selectable")
	// ErrNoDate rejects a time slot before a date is chosen.
	ErrNoDate = errors.New("booking: no date selected")
	// ErrInvalid rejects a submit whose guard failed; no request is made.
	ErrInvalid = errors.New("booking: form invalid")
	// ErrUnknownField rejects edits to fields the form does not have.
	ErrUnknownField = errors.New("booking: unknown field")
)

// Submitter delivers an assembled payload and returns the server's result.
// Exactly one call is made per successful submit guard.
type Submitter interface {
	Submit(ctx context.Context, p contact.Payload) (contact.Result, error)
}

// Form is the booking/contact form state machine. It is a client-side
// model: single-goroutine, no locking.
type Form struct {
	state  State
	month  time.Time
	date   time.Time // zero when no date is chosen
	slot   string
	fields map[Field]string
	status string
	lang   contact.Language

	submitter Submitter
	now       func() time.Time
}

// New creates a form showing the current month.
func New(submitter Submitter, lang contact.Language) *Form {
	return NewAt(submitter, lang, time.Now)
}

// NewAt creates a form with an explicit clock.
func NewAt(submitter Submitter, lang contact.Language, now func() time.Time) *Form {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &Form{
		month:     time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()),
		fields:    make(map[Field]string),
		lang:      lang,
		submitter: submitter,
		now:       now,
	}
}

// State returns the current lifecycle state.
func (f *Form) State() State { return f.state }

// Status returns the inline status or error message shown to the visitor.
func (f *Form) Status() string { return f.status }

// Field returns the current value of a form input.
func (f *Form) Field(name Field) string { return f.fields[name] }

// Selection returns the chosen date and time slot, if any.
func (f *Form) Selection() (time.Time, string) { return f.date, f.slot }

// Grid returns the visible month's cells. Regenerated on demand; the form
// never mutates a grid in place.
func (f *Form) Grid() []calendar.Cell {
	return calendar.MonthGrid(f.month)
}

// Month returns the first day of the visible month.
func (f *Form) Month() time.Time { return f.month }

// NextMonth advances the visible month. Selection does not carry across
// months.
func (f *Form) NextMonth() error { return f.shiftMonth(1) }

// PrevMonth goes back one month, clearing any selection.
func (f *Form) PrevMonth() error { return f.shiftMonth(-1) }

func (f *Form) shiftMonth(months int) error {
	if f.state == StateSubmitting {
		return ErrInFlight
	}
	f.month = f.month.AddDate(0, months, 0)
	f.clearSelection()
	if f.state == StateDateChosen || f.state == StateSlotChosen {
		f.state = StateIdle
	}
	return nil
}

// SelectDate picks a calendar date. Only selectable dates (weekdays, today
// or later) are accepted. Choosing a new date clears the time slot.
func (f *Form) SelectDate(d time.Time) error {
	if f.state == StateSubmitting {
		return ErrInFlight
	}
	if !calendar.Selectable(d, f.now()) {
		return ErrNotSelectable
	}
	f.date = calendar.Midnight(d)
	f.slot = ""
	f.state = StateDateChosen
	return nil
}

// SelectTime picks a time slot. A date must be chosen first.
func (f *Form) SelectTime(slot string) error {
	if f.state == StateSubmitting {
		return ErrInFlight
	}
	if f.date.IsZero() {
		return ErrNoDate
	}
	f.slot = slot
	f.state = StateSlotChosen
	return nil
}

// UpdateField edits one input. Allowed in any state except Submitting.
func (f *Form) UpdateField(name Field, value string) error {
	if f.state == StateSubmitting {
		return ErrInFlight
	}
	switch name {
	case FieldName, FieldEmail, FieldPhone, FieldMessage:
		f.fields[name] = value
		return nil
	default:
		return ErrUnknownField
	}
}

// Submit validates the form and, if the guard passes, issues exactly one
// request. On success all fields and the selection are cleared; on failure
// fields are preserved so the visitor can retry, and the form falls back
// to SlotChosen (booking) or Idle (plain message).
func (f *Form) Submit(ctx context.Context) error {
	if f.state == StateSubmitting {
		return ErrInFlight
	}

	name := strings.TrimSpace(f.fields[FieldName])
	email := strings.TrimSpace(f.fields[FieldEmail])
	message := strings.TrimSpace(f.fields[FieldMessage])

	msgs := statusMessages(f.lang)
	if name == "" || email == "" || message == "" {
		f.status = msgs.required
		return ErrInvalid
	}
	if !contact.ValidEmail(email) {
		f.status = msgs.invalidEmail
		return ErrInvalid
	}

	p := contact.Payload{
		Name:     name,
		Email:    email,
		Message:  message,
		Phone:    strings.TrimSpace(f.fields[FieldPhone]),
		Language: f.lang,
	}
	booking := !f.date.IsZero() && f.slot != ""
	if booking {
		p.Date = f.date.UTC().Format(time.RFC3339)
		p.Time = f.slot
	}

	f.state = StateSubmitting
	res, err := f.submitter.Submit(ctx, p)
	if err != nil {
		f.fail(msgs.sendFailed, booking)
		return err
	}
	if res.Error != "" {
		// Server error strings are surfaced verbatim.
		f.fail(res.Error, booking)
		return ErrInvalid
	}

	f.status = res.Message
	if f.status == "" {
		f.status = msgs.sent
	}
	f.fields = make(map[Field]string)
	f.clearSelection()
	f.state = StateSucceeded
	return nil
}

func (f *Form) fail(status string, booking bool) {
	f.status = status
	if booking {
		f.state = StateSlotChosen
	} else {
		f.state = StateIdle
	}
}

func (f *Form) clearSelection() {
	f.date = time.Time{}
	f.slot = ""
}

// statusMessages are the localized fallbacks shown when the server did not
// supply a message. They mirror the server catalog so the visitor sees the
// same wording either way.
type formMessages struct {
	required     string
	invalidEmail string
	sendFailed   string
	sent         string
}

func statusMessages(lang contact.Language) formMessages {
	if lang == contact.LangFrench {
		return formMessages{
			required:     "Tous les champs sont requis",
			invalidEmail: "Format d'email invalide",
			sendFailed:   "Échec de l'envoi du message. Veuillez réessayer plus tard.",
			sent:         "Votre message a bien été envoyé.",
		}
	}
	return formMessages{
		required:     "All fields are required",
		invalidEmail: "Invalid email format",
		sendFailed:   "Failed to send the message. Please try again later.",
		sent:         "Your message has been sent successfully.",
	}
}
