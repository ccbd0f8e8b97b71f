package utils

import "time"

const DateLayout = "2006-01-02"

// DateOnly truncates t to midnight UTC so calendar dates compare and store
// consistently regardless of the wall-clock time they were built from.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Yesterday returns the calendar date one day before now, truncated to a date.
func Yesterday(now time.Time) time.Time {
	return DateOnly(now.AddDate(0, 0, -1))
}

// WeekdayMondayBased converts Go's Sunday-based weekday to the Monday=0 ..
// Sunday=6 numbering used by rental_agreements.rent_due_day_of_week.
func WeekdayMondayBased(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
