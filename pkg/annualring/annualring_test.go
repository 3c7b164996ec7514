package annualring

import (
	"math"
	"testing"
	"time"
)

func TestSignFor(t *testing.T) {
	tests := []struct {
		month, day int
		want       string
	}{
		{1, 1, "Capricorn"},
		{1, 19, "Capricorn"},
		{1, 20, "Aquarius"},
		{2, 29, "Pisces"},
		{3, 20, "Pisces"},
		{3, 21, "Aries"},
		{4, 19, "Aries"},
		{4, 20, "Taurus"},
		{6, 21, "Cancer"},
		{7, 4, "Cancer"},
		{7, 23, "Leo"},
		{10, 31, "Scorpio"},
		{12, 21, "Sagittarius"},
		{12, 22, "Capricorn"},
		{12, 31, "Capricorn"},
	}

	for _, tt := range tests {
		if got := SignFor(tt.month, tt.day); got.Name != tt.want {
			t.Errorf("SignFor(%d, %d) = %s, expected %s", tt.month, tt.day, got.Name, tt.want)
		}
	}
}

func TestSignsCoverEveryDay(t *testing.T) {
	// Every day of a leap year must belong to exactly one sign.
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for d.Year() == 2024 {
		matches := 0
		for _, s := range Signs {
			if s.Contains(int(d.Month()), d.Day()) {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("%s matched %d signs, expected exactly 1", d.Format("Jan 2"), matches)
		}
		d = d.AddDate(0, 0, 1)
	}
}

func TestSignWidthsTileTheRing(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		var sum float64
		for _, s := range Signs {
			w := SignWidth(s, year)
			if w <= 0 || w >= 60 {
				t.Errorf("%d: implausible width %v for %s", year, w, s.Name)
			}
			sum += w
		}
		if math.Abs(sum-360) > 1e-9 {
			t.Errorf("%d: sign widths sum to %v, expected 360", year, sum)
		}
	}
}

func TestRingRotation(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{
			"jan 1 midnight is zero",
			time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			0,
		},
		{
			"exact middle of a non-leap year",
			time.Date(2023, 7, 2, 12, 0, 0, 0, time.UTC), // day 183 of 365, noon
			(182.5 / 365) * 360,
		},
		{
			"six hours into a leap year",
			time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC),
			(0.25 / 366) * 360,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RingRotation(tt.t, 0)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RingRotation(%v, 0) = %v, expected %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestRingRotationUsesLocalDay(t *testing.T) {
	// 2 hours into Jan 1 UTC is still Dec 31 at 90 west, so the
	// rotation must sit just below a full turn for the old year.
	got := RingRotation(time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC), -90)
	if got < 350 {
		t.Errorf("expected rotation near end of year, got %v", got)
	}
}

func TestEventAngle(t *testing.T) {
	if got := EventAngle(2023, 1, 1); got != 0 {
		t.Errorf("EventAngle(Jan 1) = %v, expected 0", got)
	}

	// Counter-clockwise: later dates sit at smaller angles.
	feb := EventAngle(2023, 2, 1)
	mar := EventAngle(2023, 3, 1)
	if !(mar < feb && feb < 360) {
		t.Errorf("expected Mar (%v) < Feb (%v) < 360 under event convention", mar, feb)
	}

	// Leap years shift marker positions slightly.
	if EventAngle(2023, 7, 4) == EventAngle(2024, 7, 4) {
		t.Error("expected leap year to move the Jul 4 marker")
	}
}

func TestSignMidpointAngle(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		for _, s := range Signs {
			start, end := SignWedge(s, year)
			mid := SignMidpointAngle(s, year)

			// Walking counter-clockwise from start by half the width
			// must land strictly inside the wedge.
			width := SignWidth(s, year)
			fromStart := math.Mod(start-mid+360, 360)
			if fromStart <= 0 || fromStart >= width {
				t.Errorf("%d %s: midpoint %v outside wedge [%v, %v]", year, s.Name, mid, start, end)
			}
		}
	}
}
