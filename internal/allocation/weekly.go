package allocation

import (
	"time"

	"StudyPlanner/internal/calculator"
	"StudyPlanner/internal/model"
)

// WeeklyDistribution spreads each subject's allocated hours evenly over the
// whole weeks left before its test (at least one). Series are padded with
// zeros to the longest horizon so they line up week by week.
func WeeklyDistribution(result model.AllocationResult, subjects []model.Subject, today time.Time) []model.WeeklyLoad {
	if len(subjects) == 0 {
		return nil
	}

	weeks := make([]int, len(subjects))
	maxWeeks := 0
	for i, s := range subjects {
		w := calculator.DaysBetween(today, s.TestDate) / 7
		if w < 1 {
			w = 1
		}
		weeks[i] = w
		if w > maxWeeks {
			maxWeeks = w
		}
	}

	loads := make([]model.WeeklyLoad, len(subjects))
	for i, s := range subjects {
		hours, _ := result.Hours(s.Name)
		perWeek := hours / float64(weeks[i])
		series := make([]float64, maxWeeks)
		for w := 0; w < weeks[i]; w++ {
			series[w] = perWeek
		}
		loads[i] = model.WeeklyLoad{
			Subject:      s.Name,
			Weeks:        weeks[i],
			HoursPerWeek: perWeek,
			Series:       series,
		}
	}
	return loads
}
