package planner

import (
	"fmt"

	"StudyPlanner/internal/allocation"
	"StudyPlanner/internal/clock"
	"StudyPlanner/internal/config"
	"StudyPlanner/internal/model"
	"StudyPlanner/internal/packer"
	"StudyPlanner/internal/wellness"

	"github.com/google/uuid"
)

// Planner composes allocation, day packing and wellness analysis into one run.
type Planner struct {
	Engine *allocation.Engine
	Packer *packer.Packer
	Clock  clock.Clock
}

// NewPlanner creates a Planner with default engine and packer settings.
func NewPlanner(c clock.Clock) *Planner {
	return &Planner{
		Engine: allocation.NewEngine(),
		Packer: packer.NewPacker(),
		Clock:  c,
	}
}

// Build validates req and computes a complete study plan for today.
// Nothing is computed when validation fails.
func (p *Planner) Build(req *Request) (*model.StudyPlan, error) {
	subjects, err := req.ParseSubjects()
	if err != nil {
		return nil, fmt.Errorf("validate request: %w", err)
	}
	today := p.Clock.Today()

	alloc := p.Engine.Allocate(subjects, req.TotalHours, today)
	plan := &model.StudyPlan{
		ID:         uuid.NewString(),
		Date:       today,
		TotalHours: req.TotalHours,
		Allocation: alloc,
		Weekly:     allocation.WeeklyDistribution(alloc, subjects, today),
		Day:        p.Packer.Plan(alloc.Names(), req.TotalHours),
	}

	if req.HasHistory() {
		sum := wellness.Analyze(req.StudyHours, req.SleepHours, req.ScoreFluctuations)
		plan.Wellness = &sum
	}
	if req.DietQuality > 0 && req.ExerciseFrequency > 0 {
		var sum model.WellnessSummary
		if plan.Wellness != nil {
			sum = *plan.Wellness
		}
		// The score needs a real sleep average.
		if sum.SleepSamples > 0 {
			score := wellness.Score(sum.AvgSleepHours, float64(req.ExerciseFrequency), float64(req.DietQuality))
			plan.Score = &score
		}
		plan.Recommendations = wellness.Recommend(req.DietQuality, req.ExerciseFrequency, sum)
	}
	return plan, nil
}

// NewFromConfig creates a Planner using the configured window, block sizes,
// break policy and rounding precision.
func NewFromConfig(cfg *config.Config, c clock.Clock) (*Planner, error) {
	window, err := cfg.Window()
	if err != nil {
		return nil, err
	}
	p := NewPlanner(c)
	if cfg.Planner.Precision != nil {
		p.Engine.Precision = *cfg.Planner.Precision
	}
	p.Packer.Window = window
	p.Packer.StudyBlockMax = cfg.Planner.StudyBlockMax
	if cfg.Planner.BreakBlock != nil {
		p.Packer.BreakBlock = *cfg.Planner.BreakBlock
	}
	p.Packer.TrailingBreak = cfg.Planner.TrailingBreak
	return p, nil
}
