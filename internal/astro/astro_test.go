package astro

import (
	"math"
	"testing"
	"time"

	"github.com/skywheel/almanac/pkg/almanac"
	"github.com/skywheel/almanac/pkg/lunarring"
)

var (
	_ almanac.SunProvider  = (*Provider)(nil)
	_ almanac.MoonProvider = (*Provider)(nil)
)

func minutesOf(t *time.Time) float64 {
	return float64(t.Hour())*60 + float64(t.Minute())
}

func TestSunEventsEquatorEquinox(t *testing.T) {
	// On an equinox at the equator the sun rises near 06:00 and sets
	// near 18:00 local, which is UTC at the prime meridian.
	p := NewProvider()
	ev, err := p.SunEvents(time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC), 0, 0)
	if err != nil {
		t.Fatal(err)
	}

	if ev.Sunrise == nil || ev.Sunset == nil || ev.SolarNoon == nil {
		t.Fatalf("missing events: %+v", ev)
	}
	if got := minutesOf(ev.Sunrise); math.Abs(got-360) > 20 {
		t.Errorf("sunrise at %v minutes, expected about 360", got)
	}
	if got := minutesOf(ev.Sunset); math.Abs(got-1080) > 20 {
		t.Errorf("sunset at %v minutes, expected about 1080", got)
	}
	if got := minutesOf(ev.SolarNoon); math.Abs(got-720) > 20 {
		t.Errorf("solar noon at %v minutes, expected about 720", got)
	}
}

func TestSunEventsOrdering(t *testing.T) {
	p := NewProvider()
	ev, err := p.SunEvents(time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC), 45, -93)
	if err != nil {
		t.Fatal(err)
	}

	seq := []*time.Time{
		ev.NightEnd, ev.NauticalDawn, ev.Dawn, ev.Sunrise,
		ev.SolarNoon,
		ev.Sunset, ev.Dusk, ev.NauticalDusk, ev.Night,
	}
	for i, e := range seq {
		if e == nil {
			t.Fatalf("event %d missing at mid-latitude midsummer: %+v", i, ev)
		}
	}
	for i := 1; i < len(seq); i++ {
		if !seq[i].After(*seq[i-1]) {
			t.Errorf("event %d (%v) not after event %d (%v)", i, seq[i], i-1, seq[i-1])
		}
	}
}

func TestSunEventsPolar(t *testing.T) {
	p := NewProvider()

	// Polar night: the sun never crosses the horizon at 80N in
	// December, but solar noon still exists.
	winter, err := p.SunEvents(time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC), 80, 0)
	if err != nil {
		t.Fatal(err)
	}
	if winter.Sunrise != nil || winter.Sunset != nil {
		t.Errorf("expected no sunrise/sunset in polar night, got %+v", winter)
	}
	if winter.Dawn != nil || winter.Dusk != nil {
		t.Errorf("expected no civil twilight in polar night at 80N, got %+v", winter)
	}
	if winter.SolarNoon == nil {
		t.Error("solar noon must always exist")
	}

	// Midnight sun: the sun never reaches the horizon from above.
	summer, err := p.SunEvents(time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC), 80, 0)
	if err != nil {
		t.Fatal(err)
	}
	if summer.Sunrise != nil || summer.Sunset != nil {
		t.Errorf("expected no sunrise/sunset under the midnight sun, got %+v", summer)
	}
	if summer.SolarNoon == nil {
		t.Error("solar noon must always exist")
	}
}

func TestPhaseKnownInstants(t *testing.T) {
	p := NewProvider()

	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{"new moon jan 2023", time.Date(2023, 1, 21, 20, 53, 0, 0, time.UTC), 0},
		{"first quarter jan 2023", time.Date(2023, 1, 28, 15, 19, 0, 0, time.UTC), 0.25},
		{"full moon feb 2023", time.Date(2023, 2, 5, 18, 29, 0, 0, time.UTC), 0.5},
		{"third quarter feb 2023", time.Date(2023, 2, 13, 16, 1, 0, 0, time.UTC), 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Phase(tt.t)
			diff := math.Abs(got - tt.want)
			if diff > 0.5 {
				diff = 1 - diff
			}
			// The truncated series is good to a couple hours of phase,
			// about 0.01 of the cycle.
			if diff > 0.02 {
				t.Errorf("Phase(%v) = %v, expected about %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestMoonStateClassification(t *testing.T) {
	p := NewProvider()
	full := time.Date(2023, 2, 5, 18, 29, 0, 0, time.UTC)

	st, err := p.MoonState(full, 45, -93)
	if err != nil {
		t.Fatal(err)
	}
	if got := lunarring.ClassifyPhase(st.Phase); got != lunarring.FullMoon {
		t.Errorf("classified %v as %v, expected Full Moon", st.Phase, got)
	}
	if st.Illumination < 0.99 {
		t.Errorf("illumination at full moon = %v, expected near 1", st.Illumination)
	}
}

func TestSeasonalEvents(t *testing.T) {
	markers := SeasonalEvents(2024)
	if len(markers) != 4 {
		t.Fatalf("expected 4 markers, got %d", len(markers))
	}

	wantMonths := []time.Month{time.March, time.June, time.September, time.December}
	for i, m := range markers {
		if m.Time.Month() != wantMonths[i] {
			t.Errorf("marker %q in %v, expected %v", m.Name, m.Time.Month(), wantMonths[i])
		}
		if m.Angle < 0 || m.Angle >= 360 {
			t.Errorf("marker %q angle %v out of range", m.Name, m.Angle)
		}
	}

	// The 2024 June solstice fell on June 20, 20:51 UTC.
	june := markers[1].Time
	if june.Day() != 20 {
		t.Errorf("2024 June solstice on day %d, expected 20", june.Day())
	}
}

func BenchmarkSunEvents(b *testing.B) {
	p := NewProvider()
	d := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	for i := 0; i < b.N; i++ {
		if _, err := p.SunEvents(d, 45, -93); err != nil {
			b.Fatal(err)
		}
	}
}
