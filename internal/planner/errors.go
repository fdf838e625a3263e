package planner

import (
	"errors"
	"fmt"
)

// Sentinel errors for request validation.
// Use errors.Is to check: errors.Is(err, planner.ErrInputShape)
var (
	ErrInputShape       = errors.New("planner: input lists differ in length")
	ErrInvalidDate      = errors.New("planner: invalid test date")
	ErrEmptySubject     = errors.New("planner: empty subject name")
	ErrDuplicateSubject = errors.New("planner: duplicate subject")
	ErrInvalidHours     = errors.New("planner: invalid hours")
	ErrInvalidRating    = errors.New("planner: rating out of range")
)

// InputShapeError reports mismatched subject, score, desired score and date counts.
type InputShapeError struct {
	Subjects      int
	Scores        int
	DesiredScores int
	TestDates     int
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("%v: subjects=%d scores=%d desired_scores=%d test_dates=%d",
		ErrInputShape, e.Subjects, e.Scores, e.DesiredScores, e.TestDates)
}

func (e *InputShapeError) Unwrap() error { return ErrInputShape }

// InvalidDateError reports a test date that is not a YYYY-MM-DD calendar date.
type InvalidDateError struct {
	Index int
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%v: test_dates[%d] = %q: %v", ErrInvalidDate, e.Index, e.Value, e.Err)
}

func (e *InvalidDateError) Unwrap() []error { return []error{ErrInvalidDate, e.Err} }
