// Package cycle implements the calendar arithmetic for budget cycles and weeks.
//
// A cycle is the monthly budgeting window bounded by a configurable start
// and end day of month. It does not need to be aligned to calendar months.
package cycle

import (
	"time"

	"github.com/weekbudget/backend/internal/types"
)

// MinLength is the minimum number of days a cycle needs to have.
const MinLength = 7

// LastDayOfMonth returns the number of days in the month.
func LastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// SafeDate returns the date for the day in the given month, clamping
// the day to the last day of the month.
func SafeDate(year int, month time.Month, day int) types.Date {
	return types.NewDate(year, month, min(day, LastDayOfMonth(year, month)))
}

// addMonths moves year and month by n months.
func addMonths(year int, month time.Month, n int) (int, time.Month) {
	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return first.Year(), first.Month()
}

// For returns the inclusive window of the cycle containing ref.
//
// If endDay equals startDay, the cycle runs up to the day before the
// next occurrence of that day ("cutover" mode).
func For(ref types.Date, startDay, endDay int) (start, end types.Date) {
	startYear, startMonth := ref.Year(), ref.Month()
	if ref.Day() < startDay {
		startYear, startMonth = addMonths(startYear, startMonth, -1)
	}
	start = SafeDate(startYear, startMonth, startDay)

	endYear, endMonth := startYear, startMonth
	switch {
	case endDay > startDay:
		end = SafeDate(endYear, endMonth, endDay)
	case endDay < startDay:
		endYear, endMonth = addMonths(startYear, startMonth, 1)
		end = SafeDate(endYear, endMonth, endDay)
	default:
		endYear, endMonth = addMonths(startYear, startMonth, 1)
		end = SafeDate(endYear, endMonth, endDay).AddDays(-1)
	}

	// Clamping can move the end before the start, e.g. start day 31
	// in a month with 30 days and end day 30
	if end.Before(start) {
		endYear, endMonth = addMonths(endYear, endMonth, 1)
		end = SafeDate(endYear, endMonth, endDay)
	}

	return start, end
}

// Length returns the number of days in the inclusive window.
func Length(start, end types.Date) int {
	return start.DaysUntil(end) + 1
}

// IsValid reports if the start and end day describe a cycle of at
// least MinLength days.
//
// The length is approximated with a 31 day month for wrapping cycles.
// Existing configurations were accepted with this approximation, so it
// must not be replaced with exact calendar math.
func IsValid(startDay, endDay int) bool {
	if endDay >= startDay {
		return endDay-startDay+1 >= MinLength
	}

	return (31-startDay+1)+endDay >= MinLength
}

// WeekStart returns the Monday of the week containing d.
func WeekStart(d types.Date) types.Date {
	// time.Weekday has Sunday as 0, weeks here start on Monday
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// WeekOf returns the Monday and Sunday of the week containing d.
func WeekOf(d types.Date) (monday, sunday types.Date) {
	monday = WeekStart(d)
	return monday, monday.AddDays(6)
}

// FirstMondayAfter returns the first Monday strictly after d.
// For a Monday, this is the Monday one week later.
func FirstMondayAfter(d types.Date) types.Date {
	shift := (7 - (int(d.Weekday())+6)%7) % 7
	if shift == 0 {
		shift = 7
	}

	return d.AddDays(shift)
}

// NextReset returns midnight of the first Monday strictly after now,
// in now's location.
func NextReset(now time.Time) time.Time {
	monday := FirstMondayAfter(types.DateOf(now))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
}
