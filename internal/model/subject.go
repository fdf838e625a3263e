package model

import "time"

// Subject is one course the student is preparing a test for.
type Subject struct {
	Name         string
	CurrentScore float64
	DesiredScore float64
	TestDate     time.Time
}

// Allocation is the hour share computed for a single subject.
type Allocation struct {
	Subject     string
	Hours       float64
	Urgency     int     // days until the test, never below 1
	Improvement float64 // desired minus current, never below 0
	Weight      float64
}

// AllocationResult keeps allocations in the order the subjects were given.
type AllocationResult struct {
	Entries []Allocation
}

// Hours returns the hours allocated to name.
func (r AllocationResult) Hours(name string) (float64, bool) {
	for _, e := range r.Entries {
		if e.Subject == name {
			return e.Hours, true
		}
	}
	return 0, false
}

// Total sums the allocated hours.
func (r AllocationResult) Total() float64 {
	sum := 0.0
	for _, e := range r.Entries {
		sum += e.Hours
	}
	return sum
}

// Names returns subject names in allocation order.
func (r AllocationResult) Names() []string {
	names := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		names[i] = e.Subject
	}
	return names
}

// Len reports the number of subjects.
func (r AllocationResult) Len() int { return len(r.Entries) }

// WeeklyLoad spreads a subject's hours evenly over the weeks left before its test.
type WeeklyLoad struct {
	Subject      string
	Weeks        int
	HoursPerWeek float64
	Series       []float64 // one value per week from now, zero after the test
}
