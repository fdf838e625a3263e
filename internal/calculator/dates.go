package calculator

import (
	"math"
	"time"
)

// CivilDate strips the time of day, keeping the calendar date as seen in t's location.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from `from` to `to`.
// Negative when `to` is before `from`.
func DaysBetween(from, to time.Time) int {
	diff := CivilDate(to).Sub(CivilDate(from))
	return int(math.Round(diff.Hours() / 24))
}

// Urgency returns the days left until the test, never below 1.
func Urgency(today, testDate time.Time) int {
	days := DaysBetween(today, testDate)
	if days < 1 {
		return 1
	}
	return days
}
