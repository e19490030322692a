// Package workcal provides working-day calendar calculations for reporting
// periods. Working days are Monday through Friday; public holidays are
// deliberately not excluded.
package workcal

import "time"

// WorkingDaysInMonth returns every Monday-Friday date in the given month, in
// ascending order. Dates are normalised to UTC midnight. The result is never
// longer than 23 entries, but callers should still branch on emptiness rather
// than assume a non-empty span.
func WorkingDaysInMonth(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if isWeekday(d) {
			days = append(days, d)
		}
	}
	return days
}

// LastWorkingDay returns the month's last working day. ok is false when the
// month has no working days.
func LastWorkingDay(year int, month time.Month) (time.Time, bool) {
	days := WorkingDaysInMonth(year, month)
	if len(days) == 0 {
		return time.Time{}, false
	}
	return days[len(days)-1], true
}

// IsMonthComplete reports whether the month's last calendar day is strictly
// before today.
func IsMonthComplete(year int, month time.Month, today time.Time) bool {
	lastDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return lastDay.Before(t)
}

// NextWorkingDay returns the first weekday strictly after d.
func NextWorkingDay(d time.Time) time.Time {
	next := d.AddDate(0, 0, 1)
	for !isWeekday(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func isWeekday(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
