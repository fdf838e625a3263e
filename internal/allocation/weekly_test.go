package allocation

import (
	"math"
	"testing"

	"StudyPlanner/internal/model"
)

func TestWeeklyDistribution(t *testing.T) {
	subjects := []model.Subject{
		{Name: "Math", CurrentScore: 70, DesiredScore: 90, TestDate: daysOut(30)},
		{Name: "Physics", CurrentScore: 80, DesiredScore: 85, TestDate: daysOut(10)},
	}
	res := NewEngine().Allocate(subjects, 100, today)
	loads := WeeklyDistribution(res, subjects, today)

	if len(loads) != 2 {
		t.Fatalf("expected 2 loads, got %d", len(loads))
	}
	// 30 days -> 4 weeks, 10 days -> 1 week
	if loads[0].Weeks != 4 || loads[1].Weeks != 1 {
		t.Errorf("expected weeks [4 1], got [%d %d]", loads[0].Weeks, loads[1].Weeks)
	}
	if math.Abs(loads[0].HoursPerWeek-57.1/4) > 1e-9 {
		t.Errorf("expected Math %.3f h/week, got %.3f", 57.1/4, loads[0].HoursPerWeek)
	}
	for i, l := range loads {
		if len(l.Series) != 4 {
			t.Fatalf("load %d: expected series padded to 4 weeks, got %d", i, len(l.Series))
		}
	}
	if loads[1].Series[0] != 42.9 || loads[1].Series[1] != 0 {
		t.Errorf("expected Physics series to start with [42.9 0], got %v", loads[1].Series)
	}
}

func TestWeeklyDistribution_ShortHorizonIsOneWeek(t *testing.T) {
	subjects := []model.Subject{
		{Name: "Quiz", CurrentScore: 50, DesiredScore: 70, TestDate: daysOut(-2)},
	}
	res := NewEngine().Allocate(subjects, 6, today)
	loads := WeeklyDistribution(res, subjects, today)
	if len(loads) != 1 || loads[0].Weeks != 1 || loads[0].HoursPerWeek != 6 {
		t.Errorf("expected one week of 6 hours, got %+v", loads)
	}
}

func TestWeeklyDistribution_Empty(t *testing.T) {
	if loads := WeeklyDistribution(model.AllocationResult{}, nil, today); loads != nil {
		t.Errorf("expected nil, got %v", loads)
	}
}
