package recorder

import "StudyPlanner/internal/model"

// PlanRun holds everything recorded for one planning run.
type PlanRun struct {
	Plan    *model.StudyPlan
	Trigger string // "DAILY", "MANUAL", "STARTUP"
}

// WellnessCheck records a standalone wellness evaluation.
type WellnessCheck struct {
	Summary model.WellnessSummary
	Score   *model.WellnessScore
	Samples int
}

// HabitEvent records a habit sample logged by the student.
type HabitEvent struct {
	Sample model.HabitSample
}

// RunSummary is a recorded plan run as read back for reports.
type RunSummary struct {
	ID          string
	Timestamp   int64
	PlanDate    string
	TotalHours  float64
	DaysNeeded  int
	HoursPerDay float64
	Burnout     string
}

// Recorder persists historical data for analysis.
type Recorder interface {
	RecordPlan(run *PlanRun) error
	RecordWellness(chk *WellnessCheck) error
	RecordHabit(evt *HabitEvent) error
	RecentPlans(limit int) ([]RunSummary, error)
	Close() error
}
