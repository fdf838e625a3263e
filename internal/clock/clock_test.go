package clock

import (
	"testing"
	"time"
)

func TestFixed(t *testing.T) {
	d := time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC)
	var c Clock = Fixed(d)
	if !c.Today().Equal(d) {
		t.Errorf("expected %v, got %v", d, c.Today())
	}
}

func TestSystem_MidnightInLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	today := System{Location: loc}.Today()
	if today.Hour() != 0 || today.Minute() != 0 || today.Second() != 0 {
		t.Errorf("expected midnight, got %v", today)
	}
	if today.Location() != loc {
		t.Errorf("expected location %v, got %v", loc, today.Location())
	}
}
