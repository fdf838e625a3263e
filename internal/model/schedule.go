package model

import (
	"fmt"
	"time"
)

// BreakLabel marks rest blocks in a day plan.
const BreakLabel = "Break"

// TimeBlock is a labeled interval inside the daily window.
// Start and End are offsets from midnight.
type TimeBlock struct {
	Label string
	Start time.Duration
	End   time.Duration
}

// IsBreak reports whether the block is a rest block.
func (b TimeBlock) IsBreak() bool { return b.Label == BreakLabel }

// Duration returns the block length.
func (b TimeBlock) Duration() time.Duration { return b.End - b.Start }

func (b TimeBlock) String() string {
	return fmt.Sprintf("%s %s-%s", b.Label, FormatClock(b.Start), FormatClock(b.End))
}

// Window is the bounded part of the day available for studying.
type Window struct {
	Start time.Duration
	End   time.Duration
}

// Capacity returns the window length.
func (w Window) Capacity() time.Duration { return w.End - w.Start }

// DayPlan is the representative single-day schedule for a budget.
type DayPlan struct {
	DaysNeeded  int
	HoursPerDay float64
	Blocks      []TimeBlock
}

// FormatClock renders an offset from midnight as HH:MM, dropping seconds.
func FormatClock(d time.Duration) string {
	mins := int(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// ParseClock parses an HH:MM time of day into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
