// Package angles maps cyclic temporal positions (hour-of-day, lunar
// phase, day-of-year) onto disc angles in degrees and back.
//
// Two rotation conventions coexist on every disc and must never be
// conflated: the "now" rotation grows clockwise with forward time,
// while fixed event markers (zodiac boundaries, calendar events,
// quarter-moon anchors) are placed counter-clockwise so that future
// events approach the top marker from one fixed side as the disc turns
// clockwise underneath them. The Convention type makes the sign choice
// explicit at every call site.
package angles

import (
	"math"
	"time"
)

// Convention selects the direction in which angle grows with forward time.
type Convention int

const (
	// Now is the clockwise convention used to rotate a whole disc so
	// that the current instant sits under the fixed top marker.
	Now Convention = iota

	// FixedEvent is the counter-clockwise convention used to place
	// event markers at fixed positions on a rotating disc.
	FixedEvent
)

func (c Convention) sign() float64 {
	if c == FixedEvent {
		return -1
	}
	return 1
}

// String returns the convention name for diagnostics.
func (c Convention) String() string {
	if c == FixedEvent {
		return "fixed-event"
	}
	return "now"
}

// Normalize wraps an angle in degrees to the range [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// CyclicToAngle converts a cyclic position to a disc angle in degrees
// under the given convention. Positions outside [0, 1) are wrapped.
func CyclicToAngle(position float64, c Convention) float64 {
	return Normalize(position * 360 * c.sign())
}

// AngleToCyclic is the exact inverse of CyclicToAngle: it recovers the
// cyclic position in [0, 1) from a disc angle under the same convention.
func AngleToCyclic(deg float64, c Convention) float64 {
	return Normalize(deg*c.sign()) / 360
}

// NormalizeHours wraps an hour count into [0, 24).
func NormalizeHours(hours float64) float64 {
	for hours < 0 {
		hours += 24
	}
	for hours >= 24 {
		hours -= 24
	}
	return hours
}

// HourFraction converts a clock reading to a fraction of the day in [0, 1).
func HourFraction(hours, minutes int, seconds float64) float64 {
	h := NormalizeHours(float64(hours) + float64(minutes)/60 + seconds/3600)
	return h / 24
}

// LocalApparentTime shifts a UTC instant by the longitude-proportional
// offset (one hour per 15 degrees east). This is a deliberate
// simplification of local time, not a time-zone lookup; it is applied
// uniformly wherever the rings need a location-local clock so that ring
// anchoring and displayed times can never disagree.
func LocalApparentTime(t time.Time, longitude float64) time.Time {
	offset := time.Duration(longitude / 15 * float64(time.Hour))
	return t.UTC().Add(offset)
}

// LocalHourFraction returns the fraction of the local apparent day in
// [0, 1) for a UTC instant at the given longitude.
func LocalHourFraction(t time.Time, longitude float64) float64 {
	local := LocalApparentTime(t, longitude)
	sec := float64(local.Second()) + float64(local.Nanosecond())/1e9
	return HourFraction(local.Hour(), local.Minute(), sec)
}
