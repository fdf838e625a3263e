package model

import (
	"testing"
	"time"
)

func TestParseAndFormatClock(t *testing.T) {
	d, err := ParseClock("10:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 10*time.Hour+30*time.Minute {
		t.Errorf("expected 10h30m, got %v", d)
	}
	if got := FormatClock(d); got != "10:30" {
		t.Errorf("expected 10:30, got %s", got)
	}
	// seconds are dropped, not rounded
	if got := FormatClock(13*time.Hour + 59*time.Minute + 59*time.Second); got != "13:59" {
		t.Errorf("expected 13:59, got %s", got)
	}
	if _, err := ParseClock("7pm"); err == nil {
		t.Error("expected error for malformed clock")
	}
}

func TestTimeBlock(t *testing.T) {
	b := TimeBlock{Label: BreakLabel, Start: 11*time.Hour + 30*time.Minute, End: 12 * time.Hour}
	if !b.IsBreak() || b.Duration() != 30*time.Minute {
		t.Errorf("unexpected block %+v", b)
	}
	if b.String() != "Break 11:30-12:00" {
		t.Errorf("unexpected string %q", b.String())
	}
	w := Window{Start: 10 * time.Hour, End: 22 * time.Hour}
	if w.Capacity() != 12*time.Hour {
		t.Errorf("expected 12h capacity, got %v", w.Capacity())
	}
}
