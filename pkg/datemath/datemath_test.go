package datemath

import (
	"testing"
	"time"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true},  // divisible by 400
		{1900, false}, // divisible by 100 but not 400
		{2024, true},
		{2023, false},
		{2400, true},
		{2100, false},
		{1996, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, expected %v", tt.year, got, tt.want)
		}
	}
}

func TestDayOfYearBoundaries(t *testing.T) {
	for year := 1990; year <= 2040; year++ {
		jan1 := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		if got := DayOfYear(jan1); got != 1 {
			t.Errorf("DayOfYear(Jan 1, %d) = %d, expected 1", year, got)
		}

		dec31 := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
		if got := DayOfYear(dec31); got != DaysInYear(year) {
			t.Errorf("DayOfYear(Dec 31, %d) = %d, expected %d", year, got, DaysInYear(year))
		}
	}
}

func TestOrdinalDayMatchesStdlib(t *testing.T) {
	// Walk every day of a leap and a non-leap year and compare against
	// time.Time.YearDay.
	for _, year := range []int{2023, 2024} {
		d := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		for d.Year() == year {
			if got := OrdinalDay(year, int(d.Month()), d.Day()); got != d.YearDay() {
				t.Fatalf("OrdinalDay(%d, %d, %d) = %d, expected %d",
					year, d.Month(), d.Day(), got, d.YearDay())
			}
			d = d.AddDate(0, 0, 1)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{2024, 1, 31},
		{2024, 4, 30},
		{2024, 6, 30},
		{2024, 9, 30},
		{2024, 11, 30},
		{2024, 12, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, expected %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestMonthDayForOrdinalRoundTrip(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		for doy := 1; doy <= DaysInYear(year); doy++ {
			month, day := MonthDayForOrdinal(year, doy)
			if got := OrdinalDay(year, month, day); got != doy {
				t.Fatalf("year %d: ordinal %d -> (%d, %d) -> %d", year, doy, month, day, got)
			}
		}
	}
}

func TestMonthDayForOrdinalWraps(t *testing.T) {
	// Day 367 of 2023 (365 days) wraps to Jan 2.
	month, day := MonthDayForOrdinal(2023, 367)
	if month != 1 || day != 2 {
		t.Errorf("MonthDayForOrdinal(2023, 367) = (%d, %d), expected (1, 2)", month, day)
	}

	// Day 0 wraps backward to Dec 31.
	month, day = MonthDayForOrdinal(2023, 0)
	if month != 12 || day != 31 {
		t.Errorf("MonthDayForOrdinal(2023, 0) = (%d, %d), expected (12, 31)", month, day)
	}
}

func TestValidMonthDay(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             bool
	}{
		{2024, 2, 29, true},
		{2023, 2, 29, false},
		{2024, 13, 1, false},
		{2024, 0, 1, false},
		{2024, 6, 31, false},
		{2024, 6, 0, false},
		{2024, 12, 31, true},
	}

	for _, tt := range tests {
		if got := ValidMonthDay(tt.year, tt.month, tt.day); got != tt.want {
			t.Errorf("ValidMonthDay(%d, %d, %d) = %v, expected %v",
				tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}
