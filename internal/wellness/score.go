package wellness

import (
	"StudyPlanner/internal/calculator"
	"StudyPlanner/internal/model"
)

// Score averages sleep, exercise and diet, each clamped to 0~10, and maps the
// result to a risk band: above 7 is low, below 5 is high.
func Score(sleepHours, exercise, diet float64) model.WellnessScore {
	ws := model.WellnessScore{
		Sleep:    calculator.Clamp(sleepHours, 0, 10),
		Exercise: calculator.Clamp(exercise, 0, 10),
		Diet:     calculator.Clamp(diet, 0, 10),
	}
	ws.Score = calculator.Round((ws.Sleep+ws.Exercise+ws.Diet)/3, statisticPrecision)

	switch {
	case ws.Score > 7:
		ws.Risk = model.RiskLow
	case ws.Score < 5:
		ws.Risk = model.RiskHigh
	default:
		ws.Risk = model.RiskModerate
	}
	return ws
}
