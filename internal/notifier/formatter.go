package notifier

import (
	"fmt"
	"html"
	"strings"

	"StudyPlanner/internal/model"
)

// FormatPlan formats a study plan into a Telegram message.
func FormatPlan(plan *model.StudyPlan) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📘 <b>Study Plan</b> | %s\n\n", plan.Date.Format("2006-01-02")))

	// Allocation table
	b.WriteString(fmt.Sprintf("📅 <b>Allocated hours</b> (budget %.1fh):\n", plan.TotalHours))
	for _, a := range plan.Allocation.Entries {
		b.WriteString(fmt.Sprintf("  %s: %.1fh (%d days left, gap %.0f)\n",
			html.EscapeString(a.Subject), a.Hours, a.Urgency, a.Improvement))
	}
	if len(plan.Allocation.Entries) > 0 && plan.Allocation.Total() == 0 {
		b.WriteString("  All subjects are at or above target 🎉\n")
	}

	// Weekly spread
	if len(plan.Weekly) > 0 {
		b.WriteString("\n📊 <b>Per week:</b>\n")
		for _, w := range plan.Weekly {
			b.WriteString(fmt.Sprintf("  %s: %.1fh/week for %d week(s)\n",
				html.EscapeString(w.Subject), w.HoursPerWeek, w.Weeks))
		}
	}

	// Day schedule
	if len(plan.Day.Blocks) > 0 {
		b.WriteString(fmt.Sprintf("\n🕒 <b>Today</b> (%.1fh/day over %d day(s)):\n", plan.Day.HoursPerDay, plan.Day.DaysNeeded))
		for _, blk := range plan.Day.Blocks {
			icon := "📖"
			if blk.IsBreak() {
				icon = "☕"
			}
			b.WriteString(fmt.Sprintf("  %s %s-%s %s\n", icon,
				model.FormatClock(blk.Start), model.FormatClock(blk.End), html.EscapeString(blk.Label)))
		}
	}

	if plan.Wellness != nil {
		b.WriteString("\n")
		b.WriteString(FormatWellness(plan.Wellness, plan.Score))
	}

	if len(plan.Recommendations) > 0 {
		b.WriteString("\n🍎 <b>Recommendations:</b>\n")
		for _, r := range plan.Recommendations {
			b.WriteString(fmt.Sprintf("  ✅ %s\n", html.EscapeString(r)))
		}
	}

	return b.String()
}

// FormatWellness formats the burnout check and optional wellness score.
func FormatWellness(sum *model.WellnessSummary, score *model.WellnessScore) string {
	var b strings.Builder
	b.WriteString("📈 <b>Habits</b>\n")
	b.WriteString(fmt.Sprintf("Average study: %.2fh/day\n", sum.AvgStudyHours))
	b.WriteString(fmt.Sprintf("Average sleep: %.2fh/night\n", sum.AvgSleepHours))
	b.WriteString(fmt.Sprintf("Score fluctuation: %.2f\n", sum.FluctuationStdDev))

	if sum.Burnout == model.BurnoutDetected {
		b.WriteString("\n⚠️ <b>Burnout Detected</b>\n")
		for _, tip := range sum.Tips {
			b.WriteString(fmt.Sprintf("  - %s\n", html.EscapeString(tip)))
		}
	} else {
		b.WriteString("\n✅ No Burnout\n")
	}

	if score != nil {
		b.WriteString(fmt.Sprintf("\nWellness score: %.2f/10 (%s)\n", score.Score, score.Risk))
	}
	return b.String()
}

// FormatProfile formats the logged habit history.
func FormatProfile(state *model.ProfileState) string {
	var b strings.Builder
	b.WriteString("📦 <b>Profile</b>\n\n")
	b.WriteString(fmt.Sprintf("Logged days: %d\n", len(state.History)))
	start := len(state.History) - 7
	if start < 0 {
		start = 0
	}
	for _, s := range state.History[start:] {
		b.WriteString(fmt.Sprintf("  %s study %.1fh, sleep %.1fh, fluctuation %s\n",
			s.Date.Format("01-02"), s.StudyHours, s.SleepHours, FormatFluctuation(s.Fluctuation)))
	}
	b.WriteString(fmt.Sprintf("Plans sent: %d\n", state.PlansSent))
	if !state.UpdatedAt.IsZero() {
		b.WriteString(fmt.Sprintf("Updated: %s\n", state.UpdatedAt.Format("2006-01-02 15:04")))
	}
	return b.String()
}

// FormatFluctuation renders an optional score fluctuation, "-" when unreported.
func FormatFluctuation(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

// FormatHelp lists the available commands.
func FormatHelp() string {
	return "Available commands:\n" +
		"• /plan - today's study plan\n" +
		"• /wellness - burnout check over logged habits\n" +
		"• /log &lt;study&gt; &lt;sleep&gt; [fluctuation] - log today's habits\n" +
		"• /profile - logged history\n" +
		"• /history - recently recorded plans"
}
