// Package datemath provides Gregorian calendar arithmetic used by the
// ring models: leap years, day-of-year ordinals and month lengths.
// All functions are pure; input validation is the caller's responsibility.
package datemath

import "time"

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 365 or 366 depending on leap status.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month (1-12),
// leap-year aware for February.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// cumulative days before each month in a non-leap year, indexed by month-1
var daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// OrdinalDay returns the 1-based day-of-year for (year, month, day).
// Jan 1 is 1; Dec 31 is DaysInYear(year).
func OrdinalDay(year, month, day int) int {
	doy := daysBeforeMonth[month-1] + day
	if month > 2 && IsLeapYear(year) {
		doy++
	}
	return doy
}

// DayOfYear returns the 1-based day-of-year of date.
func DayOfYear(date time.Time) int {
	return OrdinalDay(date.Year(), int(date.Month()), date.Day())
}

// MonthDayForOrdinal is the inverse of OrdinalDay: it returns the
// (month, day) pair for a 1-based day-of-year in the given year.
// The ordinal is wrapped into [1, DaysInYear(year)] first, so callers
// may pass values produced by modular date arithmetic.
func MonthDayForOrdinal(year, ordinal int) (month, day int) {
	total := DaysInYear(year)
	ordinal = ((ordinal-1)%total+total)%total + 1

	month = 1
	for {
		dim := DaysInMonth(year, month)
		if ordinal <= dim {
			return month, ordinal
		}
		ordinal -= dim
		month++
	}
}

// ValidMonthDay reports whether (month, day) names a real calendar date
// in the given year.
func ValidMonthDay(year, month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysInMonth(year, month)
}
