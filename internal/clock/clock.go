package clock

import "time"

// Clock supplies the current date to planning runs.
type Clock interface {
	Today() time.Time
}

// System reads the wall clock in Location (local time when nil).
type System struct {
	Location *time.Location
}

func (s System) Today() time.Time {
	now := time.Now()
	if s.Location != nil {
		now = now.In(s.Location)
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// Fixed always returns the same date. Used in tests and for replaying runs.
type Fixed time.Time

func (f Fixed) Today() time.Time { return time.Time(f) }
