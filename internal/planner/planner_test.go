package planner

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"StudyPlanner/internal/clock"
	"StudyPlanner/internal/config"
	"StudyPlanner/internal/model"
)

var today = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		Subjects:          []string{"Math", " Physics "},
		Scores:            []int{70, 80},
		DesiredScores:     []int{90, 85},
		TestDates:         []string{"2025-10-31", "2025-10-11"},
		TotalHours:        100,
		StudyHours:        []float64{3, 4, 5, 2, 6},
		SleepHours:        []float64{7, 6, 5, 8, 6},
		ScoreFluctuations: []float64{2, 5, 8, 3},
		DietQuality:       6,
		ExerciseFrequency: 4,
	}
}

func TestBuild_EndToEnd(t *testing.T) {
	p := NewPlanner(clock.Fixed(today))
	plan, err := p.Build(validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.ID == "" {
		t.Error("expected plan ID")
	}
	if !plan.Date.Equal(today) {
		t.Errorf("expected plan date %v, got %v", today, plan.Date)
	}
	if h, _ := plan.Allocation.Hours("Math"); h != 57.1 {
		t.Errorf("expected Math 57.1h, got %.1f", h)
	}
	if h, ok := plan.Allocation.Hours("Physics"); !ok || h != 42.9 {
		t.Errorf("expected trimmed Physics 42.9h, got %.1f (found=%v)", h, ok)
	}
	if math.Abs(plan.Allocation.Total()-100) > 0.1 {
		t.Errorf("expected 100h total, got %.2f", plan.Allocation.Total())
	}
	if plan.Day.DaysNeeded != 9 {
		t.Errorf("expected 9 days, got %d", plan.Day.DaysNeeded)
	}
	if len(plan.Day.Blocks) == 0 || plan.Day.Blocks[0].Label != "Math" {
		t.Errorf("expected day plan to start with Math, got %v", plan.Day.Blocks)
	}
	if len(plan.Weekly) != 2 {
		t.Errorf("expected 2 weekly loads, got %d", len(plan.Weekly))
	}
	if plan.Wellness == nil || plan.Wellness.Burnout != model.BurnoutNone {
		t.Errorf("expected wellness summary without burnout, got %+v", plan.Wellness)
	}
	if plan.Score == nil || plan.Score.Risk != model.RiskModerate {
		t.Errorf("expected moderate risk score, got %+v", plan.Score)
	}
	if len(plan.Recommendations) == 0 {
		t.Error("expected recommendations")
	}
}

func TestBuild_WithoutHistoryOrRatings(t *testing.T) {
	req := validRequest()
	req.StudyHours, req.SleepHours, req.ScoreFluctuations = nil, nil, nil
	req.DietQuality, req.ExerciseFrequency = 0, 0
	plan, err := NewPlanner(clock.Fixed(today)).Build(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Wellness != nil || plan.Score != nil || plan.Recommendations != nil {
		t.Errorf("expected no wellness output, got %+v %+v %v", plan.Wellness, plan.Score, plan.Recommendations)
	}
}

func TestBuild_RatingsWithoutHistory(t *testing.T) {
	req := validRequest()
	req.StudyHours, req.SleepHours, req.ScoreFluctuations = nil, nil, nil
	req.DietQuality, req.ExerciseFrequency = 9, 9
	plan, err := NewPlanner(clock.Fixed(today)).Build(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Wellness != nil {
		t.Errorf("expected no wellness summary, got %+v", plan.Wellness)
	}
	if plan.Score != nil {
		t.Errorf("expected no score without sleep history, got %+v", plan.Score)
	}
	if len(plan.Recommendations) != 2 {
		t.Fatalf("expected diet and exercise advice only, got %v", plan.Recommendations)
	}
	for _, r := range plan.Recommendations {
		if strings.Contains(r, "sleep") || strings.Contains(r, "study hours") {
			t.Errorf("unexpected habit advice without history: %q", r)
		}
	}
}

func TestBuild_StudyHistoryWithoutSleep(t *testing.T) {
	req := validRequest()
	req.SleepHours = nil
	plan, err := NewPlanner(clock.Fixed(today)).Build(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Wellness == nil || plan.Wellness.SleepSamples != 0 || plan.Wellness.StudySamples != 5 {
		t.Fatalf("unexpected wellness summary %+v", plan.Wellness)
	}
	if plan.Score != nil {
		t.Errorf("expected no score without sleep history, got %+v", plan.Score)
	}
}

func TestBuild_ShapeMismatch(t *testing.T) {
	req := validRequest()
	req.DesiredScores = []int{90}
	_, err := NewPlanner(clock.Fixed(today)).Build(req)
	if !errors.Is(err, ErrInputShape) {
		t.Fatalf("expected ErrInputShape, got %v", err)
	}
	var shape *InputShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("expected *InputShapeError, got %T", err)
	}
	if shape.Subjects != 2 || shape.Scores != 2 || shape.DesiredScores != 1 || shape.TestDates != 2 {
		t.Errorf("unexpected counts: %+v", shape)
	}
}

func TestBuild_InvalidDate(t *testing.T) {
	req := validRequest()
	req.TestDates[1] = "2025-13-01"
	_, err := NewPlanner(clock.Fixed(today)).Build(req)
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	var de *InvalidDateError
	if !errors.As(err, &de) || de.Index != 1 || de.Value != "2025-13-01" {
		t.Errorf("expected date error for index 1, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
		want   error
	}{
		{"valid", func(r *Request) {}, nil},
		{"duplicate", func(r *Request) { r.Subjects[1] = "Math" }, ErrDuplicateSubject},
		{"empty name", func(r *Request) { r.Subjects[0] = "  " }, ErrEmptySubject},
		{"zero hours", func(r *Request) { r.TotalHours = 0 }, ErrInvalidHours},
		{"negative hours", func(r *Request) { r.TotalHours = -5 }, ErrInvalidHours},
		{"negative sleep", func(r *Request) { r.SleepHours[2] = -1 }, ErrInvalidHours},
		{"diet too high", func(r *Request) { r.DietQuality = 11 }, ErrInvalidRating},
		{"exercise negative", func(r *Request) { r.ExerciseFrequency = -1 }, ErrInvalidRating},
		{"missing dates", func(r *Request) { r.TestDates = nil }, ErrInputShape},
	}
	for _, tt := range tests {
		r := validRequest()
		tt.modify(r)
		err := r.Validate()
		if tt.want == nil {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tt.name, err)
			}
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestBuild_DeterministicAllocation(t *testing.T) {
	p := NewPlanner(clock.Fixed(today))
	a, err := p.Build(validRequest())
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Build(validRequest())
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Error("expected distinct run IDs")
	}
	for i := range a.Allocation.Entries {
		if a.Allocation.Entries[i] != b.Allocation.Entries[i] {
			t.Errorf("allocation %d differs: %+v vs %+v", i, a.Allocation.Entries[i], b.Allocation.Entries[i])
		}
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Planner.WindowStart = "08:00"
	cfg.Planner.WindowEnd = "12:00"
	cfg.Planner.StudyBlockMax = time.Hour
	breakBlock := 10 * time.Minute
	cfg.Planner.BreakBlock = &breakBlock
	cfg.Planner.TrailingBreak = true
	precision := 0
	cfg.Planner.Precision = &precision

	p, err := NewFromConfig(cfg, clock.Fixed(today))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Engine.Precision != 0 || !p.Packer.TrailingBreak || p.Packer.Window.Start != 8*time.Hour {
		t.Errorf("config not applied: engine=%+v packer=%+v", p.Engine, p.Packer)
	}

	req := validRequest()
	req.TotalHours = 2
	plan, err := p.Build(req)
	if err != nil {
		t.Fatal(err)
	}
	if h, _ := plan.Allocation.Hours("Math"); h != 1 {
		t.Errorf("expected Math rounded to 1h, got %v", h)
	}
	last := plan.Day.Blocks[len(plan.Day.Blocks)-1]
	if !last.IsBreak() {
		t.Errorf("expected trailing break, got %v", plan.Day.Blocks)
	}

	cfg.Planner.WindowEnd = "nope"
	if _, err := NewFromConfig(cfg, clock.Fixed(today)); err == nil {
		t.Error("expected error for bad window")
	}
}

func TestNewFromConfig_ZeroBreakBlock(t *testing.T) {
	cfg := &config.Config{}
	cfg.Planner.WindowStart = "10:00"
	cfg.Planner.WindowEnd = "22:00"
	cfg.Planner.StudyBlockMax = 90 * time.Minute
	noBreak := time.Duration(0)
	cfg.Planner.BreakBlock = &noBreak

	p, err := NewFromConfig(cfg, clock.Fixed(today))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := validRequest()
	req.TotalHours = 3
	plan, err := p.Build(req)
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Day.Blocks) != 2 {
		t.Fatalf("expected two back-to-back study blocks, got %v", plan.Day.Blocks)
	}
	if plan.Day.Blocks[1].Start != plan.Day.Blocks[0].End {
		t.Errorf("expected no gap between blocks, got %v", plan.Day.Blocks)
	}
	for _, b := range plan.Day.Blocks {
		if b.IsBreak() {
			t.Errorf("unexpected break %v", b)
		}
	}
}
