package contact

import (
	"fmt"
	"time"
)

var frenchWeekdays = [7]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var frenchMonths = [12]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// bookingDateLayouts are the accepted shapes for the payload's date field.
var bookingDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// ParseBookingDate parses the payload's ISO-8601 date string.
func ParseBookingDate(raw string) (time.Time, bool) {
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatLongFrench renders a date the way the booking confirmation spells
// it out: "lundi 10 mars 2025".
func FormatLongFrench(t time.Time) string {
	return fmt.Sprintf("%s %d %s %d",
		frenchWeekdays[int(t.Weekday())],
		t.Day(),
		frenchMonths[int(t.Month())-1],
		t.Year(),
	)
}
