// Package events models user calendar events pinned to the year disc:
// single days and multi-day spans, including spans that cross the year
// boundary, and their rendered arcs and label orientation.
package events

import (
	"fmt"

	"github.com/skywheel/almanac/pkg/angles"
	"github.com/skywheel/almanac/pkg/annualring"
	"github.com/skywheel/almanac/pkg/datemath"
)

// Type categorizes an event for styling.
type Type string

const (
	TypeBirthday    Type = "birthday"
	TypeAnniversary Type = "anniversary"
	TypeHoliday     Type = "holiday"
	TypeCustom      Type = "custom"
)

// Valid reports whether the type is one of the known categories.
func (t Type) Valid() bool {
	switch t {
	case TypeBirthday, TypeAnniversary, TypeHoliday, TypeCustom:
		return true
	}
	return false
}

// MonthDay is a calendar date without a year, the recurrence key for
// annual events.
type MonthDay struct {
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", md.Month, md.Day)
}

// Valid reports whether the date exists in at least one year. Feb 29
// is allowed; in non-leap years it simply never becomes active.
func (md MonthDay) Valid() bool {
	return datemath.ValidMonthDay(2024, md.Month, md.Day)
}

// Event is one recurring calendar event. End is nil for single-day
// events. A span whose End precedes its Start wraps across the year
// boundary.
type Event struct {
	ID    string    `json:"id" yaml:"id"`
	Name  string    `json:"name" yaml:"name"`
	Start MonthDay  `json:"start" yaml:"start"`
	End   *MonthDay `json:"end,omitempty" yaml:"end,omitempty"`
	Color string    `json:"color" yaml:"color"`
	Type  Type      `json:"type" yaml:"type"`
}

// MultiDay reports whether the event spans more than one day.
func (e Event) MultiDay() bool {
	return e.End != nil && *e.End != e.Start
}

// CrossesYearBoundary reports whether the event's span wraps from
// December into January.
func (e Event) CrossesYearBoundary() bool {
	if e.End == nil {
		return false
	}
	return e.End.Month < e.Start.Month ||
		(e.End.Month == e.Start.Month && e.End.Day < e.Start.Day)
}

// Validate checks the event's fields, returning the first problem found.
func (e Event) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("event %s: name is required", e.ID)
	}
	if !e.Start.Valid() {
		return fmt.Errorf("event %q: invalid start date %s", e.Name, e.Start)
	}
	if e.End != nil && !e.End.Valid() {
		return fmt.Errorf("event %q: invalid end date %s", e.Name, e.End)
	}
	if !e.Type.Valid() {
		return fmt.Errorf("event %q: unknown type %q", e.Name, e.Type)
	}
	return nil
}

// ActiveOn reports whether the event covers the given date. Spans that
// cross the year boundary are active from Start through Dec 31 and
// again from Jan 1 through End.
func (e Event) ActiveOn(month, day int) bool {
	if e.End == nil {
		return month == e.Start.Month && day == e.Start.Day
	}

	afterStart := month > e.Start.Month ||
		(month == e.Start.Month && day >= e.Start.Day)
	beforeEnd := month < e.End.Month ||
		(month == e.End.Month && day <= e.End.Day)

	if e.CrossesYearBoundary() {
		return afterStart || beforeEnd
	}
	return afterStart && beforeEnd
}

// Arc returns the event's wedge on the year disc for the given year:
// the start angle, the end angle and the angular width swept from
// start to end in the event marker direction. Single-day events get a
// zero-width arc at their marker angle.
func (e Event) Arc(year int) (start, end, width float64) {
	start = annualring.EventAngle(year, e.Start.Month, e.Start.Day)
	if e.End == nil {
		return start, start, 0
	}

	// End angle is the start of the day after End, so the arc covers
	// the whole final day.
	next := datemath.OrdinalDay(year, e.End.Month, e.End.Day) + 1
	m, d := datemath.MonthDayForOrdinal(year, next)
	end = annualring.EventAngle(year, m, d)

	width = angles.Normalize(start - end)
	return start, end, width
}

// RadialLabelRotation returns the extra rotation applied to a label
// drawn along the radius at the given screen angle, flipping labels on
// the lower half of the disc so they never render upside down.
func RadialLabelRotation(screenAngle float64) float64 {
	a := angles.Normalize(screenAngle)
	if a > 90 && a < 270 {
		return 180
	}
	return 0
}
