package planner

import (
	"fmt"
	"strings"
	"time"

	"StudyPlanner/internal/model"
)

// DateLayout is the accepted test date format.
const DateLayout = "2006-01-02"

// Request is the raw planning input. The four subject lists are parallel.
// DietQuality and ExerciseFrequency are 1~10; zero means not provided.
type Request struct {
	Subjects          []string
	Scores            []int
	DesiredScores     []int
	TestDates         []string
	TotalHours        float64
	StudyHours        []float64
	SleepHours        []float64
	ScoreFluctuations []float64
	DietQuality       int
	ExerciseFrequency int
}

// Validate checks shapes and ranges. It stops at the first problem.
func (r *Request) Validate() error {
	if len(r.Scores) != len(r.Subjects) || len(r.DesiredScores) != len(r.Subjects) || len(r.TestDates) != len(r.Subjects) {
		return &InputShapeError{
			Subjects:      len(r.Subjects),
			Scores:        len(r.Scores),
			DesiredScores: len(r.DesiredScores),
			TestDates:     len(r.TestDates),
		}
	}

	seen := make(map[string]bool, len(r.Subjects))
	for i, name := range r.Subjects {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("%w: subjects[%d]", ErrEmptySubject, i)
		}
		if seen[name] {
			return fmt.Errorf("%w: %q", ErrDuplicateSubject, name)
		}
		seen[name] = true
	}

	if r.TotalHours <= 0 {
		return fmt.Errorf("%w: total_hours must be positive, got %g", ErrInvalidHours, r.TotalHours)
	}
	if err := checkNonNegative("study_hours", r.StudyHours); err != nil {
		return err
	}
	if err := checkNonNegative("sleep_hours", r.SleepHours); err != nil {
		return err
	}
	if err := checkRating("diet_quality", r.DietQuality); err != nil {
		return err
	}
	if err := checkRating("exercise_frequency", r.ExerciseFrequency); err != nil {
		return err
	}
	return nil
}

// ParseSubjects validates the request and builds the subject list.
func (r *Request) ParseSubjects() ([]model.Subject, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	subjects := make([]model.Subject, len(r.Subjects))
	for i, name := range r.Subjects {
		raw := strings.TrimSpace(r.TestDates[i])
		date, err := time.Parse(DateLayout, raw)
		if err != nil {
			return nil, &InvalidDateError{Index: i, Value: raw, Err: err}
		}
		subjects[i] = model.Subject{
			Name:         strings.TrimSpace(name),
			CurrentScore: float64(r.Scores[i]),
			DesiredScore: float64(r.DesiredScores[i]),
			TestDate:     date,
		}
	}
	return subjects, nil
}

// HasHistory reports whether any habit samples were supplied.
func (r *Request) HasHistory() bool {
	return len(r.StudyHours) > 0 || len(r.SleepHours) > 0 || len(r.ScoreFluctuations) > 0
}

func checkNonNegative(field string, values []float64) error {
	for i, v := range values {
		if v < 0 {
			return fmt.Errorf("%w: %s[%d] = %g", ErrInvalidHours, field, i, v)
		}
	}
	return nil
}

func checkRating(field string, v int) error {
	if v == 0 {
		return nil
	}
	if v < 1 || v > 10 {
		return fmt.Errorf("%w: %s must be 1-10, got %d", ErrInvalidRating, field, v)
	}
	return nil
}
