package model

// BurnoutStatus is the result of the burnout classifier.
type BurnoutStatus int

const (
	BurnoutNone BurnoutStatus = iota
	BurnoutDetected
)

func (s BurnoutStatus) String() string {
	if s == BurnoutDetected {
		return "Burnout Detected"
	}
	return "No Burnout"
}

// WellnessSummary holds habit statistics and the burnout verdict.
type WellnessSummary struct {
	AvgStudyHours     float64
	AvgSleepHours     float64
	FluctuationStdDev float64
	Burnout           BurnoutStatus
	Tips              []string
	StudySamples      int
	SleepSamples      int
}

// RiskBand classifies a wellness score.
type RiskBand string

const (
	RiskLow      RiskBand = "Low risk"
	RiskModerate RiskBand = "Moderate risk"
	RiskHigh     RiskBand = "High risk"
)

// WellnessScore combines sleep, exercise and diet on a 0~10 scale.
type WellnessScore struct {
	Sleep    float64
	Exercise float64
	Diet     float64
	Score    float64
	Risk     RiskBand
}
