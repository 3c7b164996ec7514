package solarring

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/interp"

	"github.com/skywheel/almanac/pkg/angles"
)

// GradientStop is one color anchor on the day/night ring, at a fixed
// disc angle in [0, 360].
type GradientStop struct {
	Angle float64 `json:"angle"`
	Color string  `json:"color"`
}

// Ring palette. Midpoint colors sit halfway between two sun events and
// carry the transition hues (the pre-sunrise pink, the golden hours).
const (
	colorMidnight   = "#0a0e27"
	colorNight      = "#1a1f3a"
	colorDawn       = "#4a4a7d"
	colorPreSunrise = "#e85d75"
	colorSunrise    = "#ff9966"
	colorGolden     = "#ffd966"
	colorNoon       = "#fffacd"
	colorSunset     = "#ff7f50"
	colorDusk       = "#6b5b95"
	colorEarlyNight = "#2a2f4a"
)

// midAngle returns the angle halfway from a to b going forward around
// the ring.
func midAngle(a, b float64) float64 {
	return angles.Normalize(a + angles.Normalize(b-a)/2)
}

// GradientStops builds the color ramp for the day/night ring from the
// sun events of one date. The result always starts at angle 0 and ends
// at angle 360 with the midnight color, and angles are strictly
// increasing, so it can be handed to ColorAt or painted directly as a
// conic gradient. Events missing at extreme latitudes contribute no
// stops; the ramp degrades gracefully down to a flat midnight ring.
func GradientStops(ev SunEvents, longitude float64) []GradientStop {
	stops := []GradientStop{{Angle: 0, Color: colorMidnight}}

	angleOf := func(t *time.Time) (float64, bool) {
		if t == nil {
			return 0, false
		}
		return EventAngle(*t, longitude), true
	}

	nightEnd, hasNightEnd := angleOf(ev.NightEnd)
	dawn, hasDawn := angleOf(ev.Dawn)
	sunrise, hasSunrise := angleOf(ev.Sunrise)
	noon, hasNoon := angleOf(ev.SolarNoon)
	sunset, hasSunset := angleOf(ev.Sunset)
	dusk, hasDusk := angleOf(ev.Dusk)
	night, hasNight := angleOf(ev.Night)

	add := func(ok bool, angle float64, color string) {
		if ok {
			stops = append(stops, GradientStop{Angle: angle, Color: color})
		}
	}

	add(hasNightEnd, nightEnd, colorNight)
	add(hasDawn, dawn, colorDawn)
	add(hasDawn && hasSunrise, midAngle(dawn, sunrise), colorPreSunrise)
	add(hasSunrise, sunrise, colorSunrise)
	add(hasSunrise && hasNoon, midAngle(sunrise, noon), colorGolden)
	add(hasNoon, noon, colorNoon)
	add(hasNoon && hasSunset, midAngle(noon, sunset), colorGolden)
	add(hasSunset, sunset, colorSunset)
	add(hasDusk, dusk, colorDusk)
	add(hasDusk && hasNight, midAngle(dusk, night), colorEarlyNight)
	add(hasNight, night, colorNight)

	// Fade back to midnight across the remainder of the ring.
	if hasNight && night < 360 {
		span := 360 - night
		for _, f := range []float64{0.25, 0.5, 0.75} {
			c, err := blend(colorNight, colorMidnight, f)
			if err == nil {
				stops = append(stops, GradientStop{Angle: night + f*span, Color: c})
			}
		}
	}

	stops = append(stops, GradientStop{Angle: 360, Color: colorMidnight})

	sort.Slice(stops, func(i, j int) bool { return stops[i].Angle < stops[j].Angle })

	// Drop stops that collide with an earlier one so the sequence stays
	// strictly increasing.
	out := stops[:1]
	for _, s := range stops[1:] {
		if s.Angle-out[len(out)-1].Angle > 1e-9 {
			out = append(out, s)
		}
	}
	return out
}

// ColorAt samples the gradient at a disc angle by interpolating each
// RGB channel linearly between the surrounding stops. The angle is
// normalized into [0, 360) first.
func ColorAt(stops []GradientStop, angle float64) (string, error) {
	if len(stops) < 2 {
		return "", fmt.Errorf("need at least two gradient stops, have %d", len(stops))
	}

	xs := make([]float64, len(stops))
	var chans [3][]float64
	for i := range chans {
		chans[i] = make([]float64, len(stops))
	}
	for i, s := range stops {
		r, g, b, err := parseHexColor(s.Color)
		if err != nil {
			return "", fmt.Errorf("stop %d: %v", i, err)
		}
		xs[i] = s.Angle
		chans[0][i] = float64(r)
		chans[1][i] = float64(g)
		chans[2][i] = float64(b)
	}

	a := angles.Normalize(angle)
	var rgb [3]uint8
	for i, ys := range chans {
		var pl interp.PiecewiseLinear
		if err := pl.Fit(xs, ys); err != nil {
			return "", fmt.Errorf("fitting gradient channel %d: %v", i, err)
		}
		v := math.Round(pl.Predict(a))
		rgb[i] = uint8(math.Min(255, math.Max(0, v)))
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]), nil
}

// blend mixes two hex colors, f=0 giving a and f=1 giving b.
func blend(a, b string, f float64) (string, error) {
	ar, ag, ab, err := parseHexColor(a)
	if err != nil {
		return "", err
	}
	br, bg, bb, err := parseHexColor(b)
	if err != nil {
		return "", err
	}
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + f*(float64(y)-float64(x))))
	}
	return fmt.Sprintf("#%02x%02x%02x", mix(ar, br), mix(ag, bg), mix(ab, bb)), nil
}

func parseHexColor(s string) (r, g, b uint8, err error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("malformed hex color %q", s)
	}
	var rv, gv, bv int
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &rv, &gv, &bv); err != nil {
		return 0, 0, 0, fmt.Errorf("malformed hex color %q", s)
	}
	return uint8(rv), uint8(gv), uint8(bv), nil
}
