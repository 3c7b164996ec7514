// Package lunarring models the lunar phase disc: phase-to-angle
// mapping, quarter anchor markers, named phase classification and
// calendar blue moon detection.
//
// Phase is a cyclic position in [0, 1): 0 is the new moon, 0.5 the
// full moon, with the waxing half in between.
package lunarring

import (
	"math"
	"time"

	"github.com/skywheel/almanac/pkg/angles"
	"github.com/skywheel/almanac/pkg/datemath"
)

// PhaseName is one of the eight traditional phase buckets.
type PhaseName int

const (
	NewMoon PhaseName = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

var phaseNames = [...]string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

func (p PhaseName) String() string {
	if p < NewMoon || p > WaningCrescent {
		return "Unknown"
	}
	return phaseNames[p]
}

// Quarter anchor angles, fixed on the disc under the counter-clockwise
// event convention so the disc's clockwise rotation carries the current
// phase under the top marker.
const (
	AnchorNew          = 0.0
	AnchorLastQuarter  = 90.0
	AnchorFull         = 180.0
	AnchorFirstQuarter = 270.0
)

// RingRotation returns the clockwise disc rotation placing the current
// phase at the fixed top marker.
func RingRotation(phase float64) float64 {
	return angles.CyclicToAngle(phase, angles.Now)
}

// AnchorAngle returns the fixed on-disc angle for a given phase value,
// e.g. 0.25 (first quarter) maps to 270.
func AnchorAngle(phase float64) float64 {
	return angles.CyclicToAngle(phase, angles.FixedEvent)
}

// PhaseAtClick inverts the screen position of a tapped marker back to
// the phase it represents, given the disc rotation at the moment of the
// tap. Tapping the full moon marker yields 0.5 regardless of rotation.
func PhaseAtClick(clickAngle, discRotation float64) float64 {
	return angles.AngleToCyclic(clickAngle-discRotation, angles.FixedEvent)
}

// ClassifyPhase buckets a phase value into one of the eight named
// phases. The quarter buckets are deliberately narrow so a phase only
// reads as New, Full or a quarter within about three quarters of a day
// of the exact instant.
func ClassifyPhase(phase float64) PhaseName {
	p := phase - math.Floor(phase)
	switch {
	case p < 0.03 || p > 0.97:
		return NewMoon
	case p < 0.22:
		return WaxingCrescent
	case p < 0.28:
		return FirstQuarter
	case p < 0.47:
		return WaxingGibbous
	case p < 0.53:
		return FullMoon
	case p < 0.72:
		return WaningGibbous
	case p < 0.78:
		return LastQuarter
	default:
		return WaningCrescent
	}
}

// Illumination returns the fraction of the lunar disc that is lit,
// 0 at new moon and 1 at full moon.
func Illumination(phase float64) float64 {
	return (1 - math.Cos(2*math.Pi*phase)) / 2
}

// fullBand is the phase band sampled once per day that counts as a
// full moon for blue moon purposes.
const (
	fullBandLow  = 0.47
	fullBandHigh = 0.53
)

// FullMoonDays returns the days of the month on which the moon is full,
// sampling the phase at local apparent noon of each day. Runs of
// adjacent days inside the full band belong to the same full moon and
// are collapsed to the first day of the run.
func FullMoonDays(year, month int, longitude float64, phaseAt func(time.Time) float64) []int {
	offset := time.Duration(longitude / 15 * float64(time.Hour))

	var days []int
	lastHit := -2
	for day := 1; day <= datemath.DaysInMonth(year, month); day++ {
		noonUTC := time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC).Add(-offset)
		p := phaseAt(noonUTC)
		if p >= fullBandLow && p <= fullBandHigh {
			// Adjacent hits belong to the same full moon.
			if day-lastHit > 1 {
				days = append(days, day)
			}
			lastHit = day
		}
	}
	return days
}

// IsBlueMoonMonth reports whether the calendar month holds two distinct
// full moons at the given longitude.
func IsBlueMoonMonth(year, month int, longitude float64, phaseAt func(time.Time) float64) bool {
	return len(FullMoonDays(year, month, longitude, phaseAt)) >= 2
}
