// Package solarring models the 24-hour day/night disc: it places sun
// events on the ring, derives the disc rotation that keeps the current
// instant under the top marker, and builds the day/night color gradient.
package solarring

import (
	"time"

	"github.com/skywheel/almanac/pkg/angles"
)

// SunEvents holds the sun event instants for one date and location, in
// UTC. Any event may be nil: at extreme latitudes the sun can stay
// above or below a given altitude for the whole day, so dawn, dusk or
// even sunrise simply do not occur.
type SunEvents struct {
	NightEnd     *time.Time `json:"nightEnd,omitempty"`     // astronomical dawn
	NauticalDawn *time.Time `json:"nauticalDawn,omitempty"`
	Dawn         *time.Time `json:"dawn,omitempty"` // civil dawn
	Sunrise      *time.Time `json:"sunrise,omitempty"`
	SolarNoon    *time.Time `json:"solarNoon,omitempty"`
	Sunset       *time.Time `json:"sunset,omitempty"`
	Dusk         *time.Time `json:"dusk,omitempty"` // civil dusk
	NauticalDusk *time.Time `json:"nauticalDusk,omitempty"`
	Night        *time.Time `json:"night,omitempty"` // astronomical dusk
}

// RingRotation returns the clockwise disc rotation in degrees that puts
// the current instant at the fixed top marker, derived from the
// location's local apparent time.
func RingRotation(t time.Time, longitude float64) float64 {
	return angles.CyclicToAngle(angles.LocalHourFraction(t, longitude), angles.Now)
}

// EventAngle returns the fixed on-disc angle for a sun event instant.
// Event positions use the same clockwise hour mapping as the rotation:
// they are painted onto the disc once and rotate along with it.
func EventAngle(event time.Time, longitude float64) float64 {
	return angles.CyclicToAngle(angles.LocalHourFraction(event, longitude), angles.Now)
}

// EventAngles maps each present sun event to its on-disc angle, keyed
// by event name. Absent events are omitted.
func EventAngles(ev SunEvents, longitude float64) map[string]float64 {
	out := make(map[string]float64)
	add := func(name string, t *time.Time) {
		if t != nil {
			out[name] = EventAngle(*t, longitude)
		}
	}
	add("nightEnd", ev.NightEnd)
	add("nauticalDawn", ev.NauticalDawn)
	add("dawn", ev.Dawn)
	add("sunrise", ev.Sunrise)
	add("solarNoon", ev.SolarNoon)
	add("sunset", ev.Sunset)
	add("dusk", ev.Dusk)
	add("nauticalDusk", ev.NauticalDusk)
	add("night", ev.Night)
	return out
}
