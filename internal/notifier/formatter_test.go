package notifier

import (
	"strings"
	"testing"
	"time"

	"StudyPlanner/internal/model"
)

func TestFormatPlan(t *testing.T) {
	plan := &model.StudyPlan{
		Date:       time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		TotalHours: 3,
		Allocation: model.AllocationResult{Entries: []model.Allocation{
			{Subject: "Math", Hours: 1.7, Urgency: 30, Improvement: 20},
			{Subject: "R&D", Hours: 1.3, Urgency: 10, Improvement: 5},
		}},
		Day: model.DayPlan{DaysNeeded: 1, HoursPerDay: 3, Blocks: []model.TimeBlock{
			{Label: "Math", Start: 10 * time.Hour, End: 11*time.Hour + 30*time.Minute},
			{Label: model.BreakLabel, Start: 11*time.Hour + 30*time.Minute, End: 12 * time.Hour},
		}},
		Wellness:        &model.WellnessSummary{AvgSleepHours: 5, Burnout: model.BurnoutDetected, Tips: []string{"Sleep more."}},
		Score:           &model.WellnessScore{Score: 4.5, Risk: model.RiskHigh},
		Recommendations: []string{"Drink water."},
	}
	msg := FormatPlan(plan)
	for _, want := range []string{
		"2025-10-01",
		"Math: 1.7h (30 days left, gap 20)",
		"R&amp;D: 1.3h",
		"10:00-11:30 Math",
		"11:30-12:00 Break",
		"Burnout Detected",
		"- Sleep more.",
		"4.50/10 (High risk)",
		"Drink water.",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected message to contain %q:\n%s", want, msg)
		}
	}
}

func TestFormatPlan_AllOnTarget(t *testing.T) {
	plan := &model.StudyPlan{Allocation: model.AllocationResult{Entries: []model.Allocation{{Subject: "Math"}}}}
	if msg := FormatPlan(plan); !strings.Contains(msg, "at or above target") {
		t.Errorf("expected on-target note, got:\n%s", msg)
	}
}

func TestFormatWellness_NoBurnout(t *testing.T) {
	msg := FormatWellness(&model.WellnessSummary{AvgStudyHours: 4, AvgSleepHours: 7.25}, nil)
	if !strings.Contains(msg, "No Burnout") || !strings.Contains(msg, "7.25h/night") {
		t.Errorf("unexpected message:\n%s", msg)
	}
	if strings.Contains(msg, "Wellness score") {
		t.Errorf("did not expect wellness score line:\n%s", msg)
	}
}

func TestFormatProfile_LastWeekOnly(t *testing.T) {
	st := &model.ProfileState{PlansSent: 2}
	for d := 1; d <= 9; d++ {
		st.History = append(st.History, model.HabitSample{Date: time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC), StudyHours: float64(d)})
	}
	msg := FormatProfile(st)
	if !strings.Contains(msg, "Logged days: 9") || strings.Contains(msg, "10-02") || !strings.Contains(msg, "10-09") {
		t.Errorf("unexpected profile message:\n%s", msg)
	}
}
