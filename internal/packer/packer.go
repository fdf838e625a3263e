package packer

import (
	"math"
	"time"

	"StudyPlanner/internal/model"
)

// Defaults for the daily window and block lengths.
const (
	DefaultWindowStart   = 10 * time.Hour
	DefaultWindowEnd     = 22 * time.Hour
	DefaultStudyBlockMax = 90 * time.Minute
	DefaultBreakBlock    = 30 * time.Minute
)

// Packer lays study hours out as alternating study and break blocks inside a
// fixed daily window.
type Packer struct {
	Window        model.Window
	StudyBlockMax time.Duration
	BreakBlock    time.Duration
	// TrailingBreak adds a break after the last study block of the day even
	// when no hours remain. Off by default.
	TrailingBreak bool
}

// NewPacker returns a Packer with the default 10:00-22:00 window,
// 1.5h study blocks and 0.5h breaks.
func NewPacker() *Packer {
	return &Packer{
		Window:        model.Window{Start: DefaultWindowStart, End: DefaultWindowEnd},
		StudyBlockMax: DefaultStudyBlockMax,
		BreakBlock:    DefaultBreakBlock,
	}
}

// SpreadHours splits totalHours evenly over the fewest days whose window
// capacity can hold it.
func (p *Packer) SpreadHours(totalHours float64) (daysNeeded int, hoursPerDay float64) {
	capacity := p.Window.Capacity().Hours()
	if totalHours <= 0 || capacity <= 0 {
		return 0, 0
	}
	daysNeeded = int(math.Ceil(totalHours / capacity))
	return daysNeeded, totalHours / float64(daysNeeded)
}

// Plan packs one representative day and reports how many days the budget spans.
func (p *Packer) Plan(subjects []string, totalHours float64) model.DayPlan {
	days, perDay := p.SpreadHours(totalHours)
	return model.DayPlan{
		DaysNeeded:  days,
		HoursPerDay: perDay,
		Blocks:      p.PackDay(subjects, totalHours),
	}
}

// PackDay returns the blocks for one day of the budget, cycling through
// subjects in order. Hours that do not fit before the window end are dropped.
func (p *Packer) PackDay(subjects []string, totalHours float64) []model.TimeBlock {
	if len(subjects) == 0 || totalHours <= 0 || p.StudyBlockMax <= 0 {
		return nil
	}
	_, perDay := p.SpreadHours(totalHours)
	if perDay <= 0 {
		return nil
	}

	remaining := time.Duration(perDay * float64(time.Hour))
	cursor := p.Window.Start
	var blocks []model.TimeBlock

	for idx := 0; remaining > 0 && cursor < p.Window.End; idx++ {
		study := p.StudyBlockMax
		if remaining < study {
			study = remaining
		}
		studyEnd := cursor + study
		if studyEnd > p.Window.End {
			break
		}
		blocks = append(blocks, model.TimeBlock{
			Label: subjects[idx%len(subjects)],
			Start: cursor,
			End:   studyEnd,
		})
		cursor = studyEnd
		remaining -= study

		if (remaining > 0 || p.TrailingBreak) && p.BreakBlock > 0 {
			breakEnd := cursor + p.BreakBlock
			if breakEnd <= p.Window.End {
				blocks = append(blocks, model.TimeBlock{Label: model.BreakLabel, Start: cursor, End: breakEnd})
				cursor = breakEnd
			}
		}
	}
	return blocks
}
