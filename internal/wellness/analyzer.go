package wellness

import (
	"StudyPlanner/internal/calculator"
	"StudyPlanner/internal/model"
)

// Burnout thresholds.
const (
	MinSleepHours      = 6.0
	MaxStudyHours      = 10.0
	MaxFluctuationStd  = 15.0
	statisticPrecision = 2
)

// Advisory tips, one per burnout trigger.
const (
	TipSleep       = "Try to increase sleep to at least 7-8 hours."
	TipOverStudy   = "Studying more than 10 hours/day is counterproductive."
	TipConsistency = "Reduce score fluctuations by revising consistently instead of cramming."
)

// Analyze summarizes habit history and flags burnout when any threshold is
// crossed. Tips are attached only for the triggered conditions, in the order
// sleep, over-study, consistency.
func Analyze(studyHours, sleepHours, fluctuations []float64) model.WellnessSummary {
	sum := model.WellnessSummary{
		AvgStudyHours:     calculator.Round(calculator.Mean(studyHours), statisticPrecision),
		AvgSleepHours:     calculator.Round(calculator.Mean(sleepHours), statisticPrecision),
		FluctuationStdDev: calculator.Round(calculator.PopulationStdDev(fluctuations), statisticPrecision),
		Burnout:           model.BurnoutNone,
		StudySamples:      len(studyHours),
		SleepSamples:      len(sleepHours),
	}

	lowSleep := len(sleepHours) > 0 && sum.AvgSleepHours < MinSleepHours
	overStudy := sum.AvgStudyHours > MaxStudyHours
	erratic := sum.FluctuationStdDev > MaxFluctuationStd

	if lowSleep || overStudy || erratic {
		sum.Burnout = model.BurnoutDetected
		if lowSleep {
			sum.Tips = append(sum.Tips, TipSleep)
		}
		if overStudy {
			sum.Tips = append(sum.Tips, TipOverStudy)
		}
		if erratic {
			sum.Tips = append(sum.Tips, TipConsistency)
		}
	}
	return sum
}
