// Package annualring models the year disc: day-of-year rotation,
// fixed calendar marker placement and the twelve zodiac wedges.
package annualring

import (
	"time"

	"github.com/skywheel/almanac/pkg/angles"
	"github.com/skywheel/almanac/pkg/datemath"
)

// Element is a zodiac sign's classical element.
type Element string

const (
	Fire  Element = "fire"
	Earth Element = "earth"
	Air   Element = "air"
	Water Element = "water"
)

// Sign is one zodiac sign with its tropical date range. StartMonth may
// exceed EndMonth for the one sign straddling the year boundary.
type Sign struct {
	Name       string  `json:"name"`
	Symbol     string  `json:"symbol"`
	Element    Element `json:"element"`
	Color      string  `json:"color"`
	StartMonth int     `json:"startMonth"`
	StartDay   int     `json:"startDay"`
	EndMonth   int     `json:"endMonth"`
	EndDay     int     `json:"endDay"`
}

// Signs lists the twelve tropical zodiac signs in calendar order
// starting from the March equinox.
var Signs = []Sign{
	{"Aries", "♈", Fire, "#ef4444", 3, 21, 4, 19},
	{"Taurus", "♉", Earth, "#4ade80", 4, 20, 5, 20},
	{"Gemini", "♊", Air, "#fbbf24", 5, 21, 6, 20},
	{"Cancer", "♋", Water, "#e0e7ff", 6, 21, 7, 22},
	{"Leo", "♌", Fire, "#fb923c", 7, 23, 8, 22},
	{"Virgo", "♍", Earth, "#a78bfa", 8, 23, 9, 22},
	{"Libra", "♎", Air, "#f472b6", 9, 23, 10, 22},
	{"Scorpio", "♏", Water, "#dc2626", 10, 23, 11, 21},
	{"Sagittarius", "♐", Fire, "#a855f7", 11, 22, 12, 21},
	{"Capricorn", "♑", Earth, "#94a3b8", 12, 22, 1, 19},
	{"Aquarius", "♒", Air, "#22d3ee", 1, 20, 2, 18},
	{"Pisces", "♓", Water, "#2dd4bf", 2, 19, 3, 20},
}

// Contains reports whether (month, day) falls inside the sign's range.
// Signs spanning the year boundary match dates on either side of it.
func (s Sign) Contains(month, day int) bool {
	if s.StartMonth > s.EndMonth {
		return (month == s.StartMonth && day >= s.StartDay) ||
			(month == s.EndMonth && day <= s.EndDay) ||
			month > s.StartMonth || month < s.EndMonth
	}
	if month == s.StartMonth {
		return day >= s.StartDay
	}
	if month == s.EndMonth {
		return day <= s.EndDay
	}
	return month > s.StartMonth && month < s.EndMonth
}

// SignFor returns the zodiac sign containing the given date.
func SignFor(month, day int) Sign {
	for _, s := range Signs {
		if s.Contains(month, day) {
			return s
		}
	}
	// Unreachable: the twelve ranges cover the whole calendar.
	return Sign{}
}

// RingRotation returns the clockwise disc rotation that places the
// date's day-of-year fraction at the top marker. Midnight Jan 1 is 0
// and the angle grows through the year, never quite reaching 360.
func RingRotation(t time.Time, longitude float64) float64 {
	local := angles.LocalApparentTime(t, longitude)
	total := float64(datemath.DaysInYear(local.Year()))
	frac := (float64(datemath.DayOfYear(local)-1) + angles.LocalHourFraction(t, longitude)) / total
	return angles.CyclicToAngle(frac, angles.Now)
}

// EventAngle returns the fixed on-disc angle for a calendar date
// marker under the counter-clockwise event convention. Day fractions
// within the date are ignored: markers sit at the start of their day.
func EventAngle(year, month, day int) float64 {
	frac := float64(datemath.OrdinalDay(year, month, day)-1) / float64(datemath.DaysInYear(year))
	return angles.CyclicToAngle(frac, angles.FixedEvent)
}

// SignWedge returns the start and end angles of a sign's wedge on the
// year disc. End is expressed going counter-clockwise from start, so
// subtracting it from start (mod 360) gives the angular width.
func SignWedge(s Sign, year int) (start, end float64) {
	start = EventAngle(year, s.StartMonth, s.StartDay)

	// The wedge ends where the next day after EndDay begins.
	endYear := year
	endOrdinal := datemath.OrdinalDay(year, s.EndMonth, s.EndDay) + 1
	month, day := datemath.MonthDayForOrdinal(endYear, endOrdinal)
	end = EventAngle(year, month, day)
	return start, end
}

// SignWidth returns a sign's angular width in degrees.
func SignWidth(s Sign, year int) float64 {
	start, end := SignWedge(s, year)
	return angles.Normalize(start - end)
}

// SignMidpointAngle returns the angle at the middle of a sign's wedge,
// where its symbol is drawn.
func SignMidpointAngle(s Sign, year int) float64 {
	start, _ := SignWedge(s, year)
	return angles.Normalize(start - SignWidth(s, year)/2)
}
