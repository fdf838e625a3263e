package allocation

import (
	"time"

	"StudyPlanner/internal/calculator"
	"StudyPlanner/internal/model"
)

// DefaultPrecision is the number of decimals allocated hours are rounded to.
const DefaultPrecision = 1

// Engine splits an hour budget across subjects by improvement gap over urgency.
type Engine struct {
	Precision int
}

// NewEngine returns an Engine with the default precision.
func NewEngine() *Engine {
	return &Engine{Precision: DefaultPrecision}
}

// Allocate computes the hours per subject, in input order.
// When no subject needs improvement every subject gets zero hours.
func (e *Engine) Allocate(subjects []model.Subject, totalHours float64, today time.Time) model.AllocationResult {
	if len(subjects) == 0 {
		return model.AllocationResult{}
	}

	entries := make([]model.Allocation, len(subjects))
	totalWeight := 0.0
	for i, s := range subjects {
		urgency := calculator.Urgency(today, s.TestDate)
		improvement := s.DesiredScore - s.CurrentScore
		if improvement < 0 {
			improvement = 0
		}
		weight := improvement / float64(urgency)
		totalWeight += weight
		entries[i] = model.Allocation{
			Subject:     s.Name,
			Urgency:     urgency,
			Improvement: improvement,
			Weight:      weight,
		}
	}

	// Nobody needs improvement: divide by 1 so every share is zero.
	if totalWeight == 0 {
		totalWeight = 1
	}

	for i := range entries {
		hours := entries[i].Weight / totalWeight * totalHours
		entries[i].Hours = calculator.Round(hours, e.Precision)
	}
	return model.AllocationResult{Entries: entries}
}
