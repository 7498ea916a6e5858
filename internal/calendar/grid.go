// Package calendar generates the month grid backing the booking widget.
// Generation is pure: the same reference date always yields the same grid.
package calendar

import "time"

// Cell is one slot in a month grid. The zero value is a padding cell; a
// real day carries its concrete date.
type Cell struct {
	Day  int
	Date time.Time
}

// Padding reports whether the cell is a leading filler before the 1st.
func (c Cell) Padding() bool {
	return c.Day == 0
}

// MonthGrid returns the ordered cells for the month containing ref:
// padding cells for the weekdays before the 1st (week starts Sunday),
// then one cell per day of the month.
func MonthGrid(ref time.Time) []Cell {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	padding := int(first.Weekday())
	days := daysIn(ref)

	cells := make([]Cell, 0, padding+days)
	for i := 0; i < padding; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, Cell{
			Day:  day,
			Date: time.Date(ref.Year(), ref.Month(), day, 0, 0, 0, 0, ref.Location()),
		})
	}
	return cells
}

// Selectable reports whether a visitor can pick d for a booking: weekdays
// only (Monday through Friday), and nothing before today. Today itself
// stays selectable until midnight.
func Selectable(d, today time.Time) bool {
	wd := d.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !d.Before(Midnight(today))
}

// Midnight truncates t to the start of its day in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysIn(ref time.Time) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location()).Day()
}
