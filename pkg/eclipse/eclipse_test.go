package eclipse

import (
	"errors"
	"testing"
)

func ids(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func contains(recs []Record, id string) bool {
	for _, r := range recs {
		if r.ID == id {
			return true
		}
	}
	return false
}

func TestYears(t *testing.T) {
	got := Years()
	want := []int{2026, 2027, 2028, 2029, 2030}
	if len(got) != len(want) {
		t.Fatalf("Years() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Years() = %v, expected %v", got, want)
		}
	}
}

func TestVisibleFromUnknownYear(t *testing.T) {
	recs, err := VisibleFrom(2025, 45, -93)
	if !errors.Is(err, ErrYearNotCovered) {
		t.Fatalf("expected ErrYearNotCovered, got %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected no records for uncovered year, got %v", ids(recs))
	}
}

func TestSolarVisibility(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		lat, lng float64
		id       string
		want     bool
	}{
		{"antarctic annular from antarctica", 2026, -70, 0, "solar-2026-02-17", true},
		{"antarctic annular not from arctic", 2026, 70, 0, "solar-2026-02-17", false},
		{"iberian total from madrid", 2026, 40.4, -3.7, "solar-2026-08-12", true},
		{"iberian total not from sydney", 2026, -33.9, 151.2, "solar-2026-08-12", false},
		{"australian total from melbourne", 2028, -37.8, 145, "solar-2028-07-22", true},
		{"australian total not from london", 2028, 51.5, 0, "solar-2028-07-22", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := VisibleFrom(tt.year, tt.lat, tt.lng)
			if err != nil {
				t.Fatal(err)
			}
			if got := contains(recs, tt.id); got != tt.want {
				t.Errorf("visibility of %s from (%v, %v) = %v, expected %v (got %v)",
					tt.id, tt.lat, tt.lng, got, tt.want, ids(recs))
			}
		})
	}
}

func TestLunarVisibility(t *testing.T) {
	tests := []struct {
		name string
		year int
		lng  float64
		id   string
		want bool
	}{
		{"march total from americas", 2026, -93, "lunar-2026-03-03", true},
		{"march total from europe", 2026, 2, "lunar-2026-03-03", true},
		{"march total not from japan", 2026, 139, "lunar-2026-03-03", false},
		{"august partial from pacific", 2026, 139, "lunar-2026-08-28", true},
		{"june partial only asia-pacific", 2029, -93, "lunar-2029-06-12", false},
		{"june partial from sydney", 2029, 151, "lunar-2029-06-12", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := VisibleFrom(tt.year, 0, tt.lng)
			if err != nil {
				t.Fatal(err)
			}
			if got := contains(recs, tt.id); got != tt.want {
				t.Errorf("visibility of %s at lng %v = %v, expected %v (got %v)",
					tt.id, tt.lng, got, tt.want, ids(recs))
			}
		})
	}
}

func TestDatasetOrderPreserved(t *testing.T) {
	// A longitude of -170 sits in both the americas band and the
	// asia-pacific band; records must come back in dataset order.
	recs, err := VisibleFrom(2026, -70, -170)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"solar-2026-02-17", "lunar-2026-03-03", "lunar-2026-08-28"}
	got := ids(recs)
	if len(got) != len(want) {
		t.Fatalf("got %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, expected %v", got, want)
		}
	}
}
