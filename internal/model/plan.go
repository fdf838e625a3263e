package model

import "time"

// StudyPlan is the full output of one planning run.
type StudyPlan struct {
	ID              string
	Date            time.Time
	TotalHours      float64
	Allocation      AllocationResult
	Weekly          []WeeklyLoad
	Day             DayPlan
	Wellness        *WellnessSummary
	Score           *WellnessScore
	Recommendations []string
}

// HabitSample is one day of logged habits. Fluctuation is nil when the
// student did not report one for that day.
type HabitSample struct {
	Date        time.Time `json:"date"`
	StudyHours  float64   `json:"study_hours"`
	SleepHours  float64   `json:"sleep_hours"`
	Fluctuation *float64  `json:"fluctuation,omitempty"`
}

// HabitSeries splits history into study, sleep and fluctuation series.
// Days without a reported fluctuation are left out of the third series.
func HabitSeries(history []HabitSample) (study, sleep, fluct []float64) {
	for _, h := range history {
		study = append(study, h.StudyHours)
		sleep = append(sleep, h.SleepHours)
		if h.Fluctuation != nil {
			fluct = append(fluct, *h.Fluctuation)
		}
	}
	return study, sleep, fluct
}

// ProfileState is the persisted student profile.
type ProfileState struct {
	History   []HabitSample `json:"history"`
	LastPlan  string        `json:"last_plan_id"`
	PlansSent int           `json:"plans_sent"`
	UpdatedAt time.Time     `json:"updated_at"`
}
