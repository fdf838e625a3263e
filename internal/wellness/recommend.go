package wellness

import "StudyPlanner/internal/model"

// Recommend builds lifestyle advice from diet and exercise ratings (1~10) and
// the habit summary. A diet rating of exactly 7 produces no diet advice.
// Sleep and study advice need at least one logged sample of each.
func Recommend(diet, exercise int, sum model.WellnessSummary) []string {
	var recs []string

	switch {
	case diet <= 3:
		recs = append(recs,
			"Your diet quality is low. Include lean proteins, whole grains, and 2 servings of fruit daily.",
			"Drink at least 2 liters of water per day to maintain focus.")
	case diet >= 4 && diet <= 6:
		recs = append(recs, "Improve consistency in meals. Avoid skipping breakfast and reduce junk food.")
	case diet >= 8:
		recs = append(recs, "Excellent nutrition habits. Maintain your balanced eating pattern.")
	}

	switch {
	case exercise <= 3:
		recs = append(recs, "Add 30-minute brisk walks or light workouts at least 3 times weekly.")
	case exercise <= 6:
		recs = append(recs, "Moderate exercise level. Consider adding short morning stretches to energize your day.")
	default:
		recs = append(recs, "Excellent fitness consistency. This supports better concentration.")
	}

	switch {
	case sum.SleepSamples == 0:
	case sum.AvgSleepHours < 6:
		recs = append(recs, "You're not sleeping enough. Aim for a fixed 7-hour sleep schedule.")
	case sum.AvgSleepHours < 7:
		recs = append(recs, "Slightly improve sleep quality by reducing screen time 30 minutes before bed.")
	default:
		recs = append(recs, "Great sleep consistency. Keep your routine steady.")
	}

	switch {
	case sum.StudySamples == 0:
	case sum.AvgStudyHours > 9:
		recs = append(recs, "You're studying heavily. Add 10-minute breaks per hour to retain focus.")
	case sum.AvgStudyHours < 3:
		recs = append(recs, "Increase study hours gradually to at least 4-5 hours/day for steady improvement.")
	}

	if sum.Burnout == model.BurnoutDetected {
		recs = append(recs, "Burnout signs detected. Take one day off per week and include light exercise or meditation.")
	}
	return recs
}
