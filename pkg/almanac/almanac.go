// Package almanac assembles the individual ring models into one
// consistent snapshot for a (instant, location) pair. Astronomical
// inputs come from pluggable providers so the ring math stays pure and
// testable against fixed values.
package almanac

import (
	"errors"
	"fmt"
	"time"

	"github.com/skywheel/almanac/pkg/angles"
	"github.com/skywheel/almanac/pkg/annualring"
	"github.com/skywheel/almanac/pkg/datemath"
	"github.com/skywheel/almanac/pkg/eclipse"
	"github.com/skywheel/almanac/pkg/events"
	"github.com/skywheel/almanac/pkg/lunarring"
	"github.com/skywheel/almanac/pkg/moonnames"
	"github.com/skywheel/almanac/pkg/solarring"
)

// Location is a named point on Earth. Coordinates are validated, never
// clamped: a bad location is a caller bug, not something to paper over.
type Location struct {
	Name      string  `json:"name,omitempty" yaml:"name,omitempty"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Validate checks that the coordinates are on the globe.
func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", l.Longitude)
	}
	return nil
}

// MoonState is the raw lunar input for one instant. Rise, set,
// altitude and azimuth are optional; providers that cannot compute
// them leave them nil.
type MoonState struct {
	Phase        float64    `json:"phase"`
	Illumination float64    `json:"illumination"`
	Rise         *time.Time `json:"rise,omitempty"`
	Set          *time.Time `json:"set,omitempty"`
	Altitude     *float64   `json:"altitude,omitempty"`
	Azimuth      *float64   `json:"azimuth,omitempty"`
}

// SunProvider computes the sun event instants for a date and location.
type SunProvider interface {
	SunEvents(date time.Time, latitude, longitude float64) (solarring.SunEvents, error)
}

// MoonProvider computes lunar state. Phase is exposed separately
// because the blue moon scan needs it many times per month.
type MoonProvider interface {
	MoonState(t time.Time, latitude, longitude float64) (MoonState, error)
	Phase(t time.Time) float64
}

// SolarState is the solar ring portion of a snapshot.
type SolarState struct {
	Rotation    float64                  `json:"rotation"`
	Events      solarring.SunEvents      `json:"events"`
	EventAngles map[string]float64       `json:"eventAngles"`
	Gradient    []solarring.GradientStop `json:"gradient"`
}

// LunarState is the lunar ring portion of a snapshot.
type LunarState struct {
	Rotation     float64            `json:"rotation"`
	Phase        float64            `json:"phase"`
	PhaseName    string             `json:"phaseName"`
	Illumination float64            `json:"illumination"`
	Rise         *time.Time         `json:"rise,omitempty"`
	Set          *time.Time         `json:"set,omitempty"`
	MoonName     moonnames.MoonName `json:"moonName"`
	BlueMoon     bool               `json:"blueMoon"`
}

// AnnualState is the year ring portion of a snapshot.
type AnnualState struct {
	Rotation  float64         `json:"rotation"`
	DayOfYear int             `json:"dayOfYear"`
	Sign      annualring.Sign `json:"sign"`
	SignAngle float64         `json:"signAngle"`
}

// ProjectedEvent pairs a calendar event with its rendered arc on the
// year disc for a particular year.
type ProjectedEvent struct {
	events.Event
	StartAngle    float64 `json:"startAngle"`
	EndAngle      float64 `json:"endAngle"`
	Width         float64 `json:"width"`
	LabelRotation float64 `json:"labelRotation"`
}

// ProjectEvents computes the disc arcs for a set of events in the
// given year.
func ProjectEvents(year int, evs []events.Event) []ProjectedEvent {
	out := make([]ProjectedEvent, len(evs))
	for i, e := range evs {
		start, end, width := e.Arc(year)
		out[i] = ProjectedEvent{
			Event:         e,
			StartAngle:    start,
			EndAngle:      end,
			Width:         width,
			LabelRotation: events.RadialLabelRotation(start),
		}
	}
	return out
}

// Snapshot is everything the rendering layer needs for one instant at
// one location. EclipseNote is set instead of failing when the eclipse
// dataset does not cover the year.
type Snapshot struct {
	Time        time.Time        `json:"time"`
	Location    Location         `json:"location"`
	Solar       SolarState       `json:"solar"`
	Lunar       LunarState       `json:"lunar"`
	Annual      AnnualState      `json:"annual"`
	Eclipses    []eclipse.Record `json:"eclipses"`
	EclipseNote string           `json:"eclipseNote,omitempty"`
	Events      []ProjectedEvent `json:"events,omitempty"`
}

// Engine computes snapshots for a fixed location.
type Engine struct {
	sun  SunProvider
	moon MoonProvider
	loc  Location
}

// New builds an engine, validating the location up front.
func New(sun SunProvider, moon MoonProvider, loc Location) (*Engine, error) {
	if err := loc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid location: %w", err)
	}
	if sun == nil || moon == nil {
		return nil, errors.New("sun and moon providers are required")
	}
	return &Engine{sun: sun, moon: moon, loc: loc}, nil
}

// Location returns the engine's configured location.
func (e *Engine) Location() Location {
	return e.loc
}

// Snapshot evaluates all three rings for the given instant.
func (e *Engine) Snapshot(t time.Time) (Snapshot, error) {
	snap := Snapshot{Time: t.UTC(), Location: e.loc}

	sunEvents, err := e.sun.SunEvents(t, e.loc.Latitude, e.loc.Longitude)
	if err != nil {
		return Snapshot{}, fmt.Errorf("computing sun events: %w", err)
	}
	snap.Solar = SolarState{
		Rotation:    solarring.RingRotation(t, e.loc.Longitude),
		Events:      sunEvents,
		EventAngles: solarring.EventAngles(sunEvents, e.loc.Longitude),
		Gradient:    solarring.GradientStops(sunEvents, e.loc.Longitude),
	}

	moonState, err := e.moon.MoonState(t, e.loc.Latitude, e.loc.Longitude)
	if err != nil {
		return Snapshot{}, fmt.Errorf("computing moon state: %w", err)
	}

	local := angles.LocalApparentTime(t, e.loc.Longitude)
	name, err := moonnames.ForMonth(int(local.Month()))
	if err != nil {
		return Snapshot{}, err
	}
	snap.Lunar = LunarState{
		Rotation:     lunarring.RingRotation(moonState.Phase),
		Phase:        moonState.Phase,
		PhaseName:    lunarring.ClassifyPhase(moonState.Phase).String(),
		Illumination: moonState.Illumination,
		Rise:         moonState.Rise,
		Set:          moonState.Set,
		MoonName:     name,
		BlueMoon: lunarring.IsBlueMoonMonth(
			local.Year(), int(local.Month()), e.loc.Longitude, e.moon.Phase),
	}

	sign := annualring.SignFor(int(local.Month()), local.Day())
	snap.Annual = AnnualState{
		Rotation:  annualring.RingRotation(t, e.loc.Longitude),
		DayOfYear: datemath.DayOfYear(local),
		Sign:      sign,
		SignAngle: annualring.SignMidpointAngle(sign, local.Year()),
	}

	recs, err := eclipse.VisibleFrom(local.Year(), e.loc.Latitude, e.loc.Longitude)
	switch {
	case errors.Is(err, eclipse.ErrYearNotCovered):
		snap.EclipseNote = err.Error()
	case err != nil:
		return Snapshot{}, fmt.Errorf("filtering eclipses: %w", err)
	default:
		snap.Eclipses = recs
	}

	return snap, nil
}
