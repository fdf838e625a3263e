package scheduler

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strconv"
	"strings"
	"time"

	"StudyPlanner/internal/clock"
	"StudyPlanner/internal/config"
	"StudyPlanner/internal/model"
	"StudyPlanner/internal/notifier"
	"StudyPlanner/internal/planner"
	"StudyPlanner/internal/profile"
	"StudyPlanner/internal/recorder"
	"StudyPlanner/internal/wellness"

	"github.com/robfig/cron/v3"
)

// Trigger types recorded with each plan run.
const (
	TriggerDaily   = "DAILY"
	TriggerManual  = "MANUAL"
	TriggerStartup = "STARTUP"
)

// Sender delivers a message to the student.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler manages all cron tasks and chat commands.
type Scheduler struct {
	Cron     *cron.Cron
	Config   *config.Config
	Planner  *planner.Planner
	Profile  *profile.Manager
	Notifier Sender
	Recorder recorder.Recorder
	Clock    clock.Clock
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler. Cron expressions are evaluated in loc.
func NewScheduler(ctx context.Context, cfg *config.Config, pl *planner.Planner, pm *profile.Manager, n Sender, rec recorder.Recorder, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		Config:   cfg,
		Planner:  pl,
		Profile:  pm,
		Notifier: n,
		Recorder: rec,
		Clock:    pl.Clock,
		Ctx:      ctx,
	}
}

// RegisterAll registers the daily plan and weekly wellness tasks.
func (s *Scheduler) RegisterAll(dailyCron, weeklyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	if _, err := s.Cron.AddFunc(weeklyCron, s.weeklyTask); err != nil {
		return fmt.Errorf("register weekly task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunDailyNow builds and sends today's plan immediately (RUN_ON_START).
func (s *Scheduler) RunDailyNow() {
	if msg, err := s.buildPlan(TriggerStartup); err != nil {
		s.trySend(planFailure(err))
	} else {
		s.trySend(msg)
	}
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily plan task")
	msg, err := s.buildPlan(TriggerDaily)
	if err != nil {
		log.Printf("[ERROR] daily plan: %v", err)
		s.trySend(planFailure(err))
		return
	}
	s.trySend(msg)
}

func (s *Scheduler) weeklyTask() {
	log.Println("[INFO] running weekly wellness check")
	s.trySend(s.wellnessReport(7))
}

// buildPlan computes, records and formats a plan from the configured profile.
func (s *Scheduler) buildPlan(trigger string) (string, error) {
	req := s.Profile.Request(s.Config)
	plan, err := s.Planner.Build(req)
	if err != nil {
		return "", err
	}

	if err := s.Recorder.RecordPlan(&recorder.PlanRun{Plan: plan, Trigger: trigger}); err != nil {
		log.Printf("[ERROR] record plan: %v", err)
	}
	s.Profile.MarkPlanSent(plan.ID)
	log.Printf("[INFO] plan %s built: %d subjects, %d blocks", plan.ID, plan.Allocation.Len(), len(plan.Day.Blocks))
	return notifier.FormatPlan(plan), nil
}

// wellnessReport analyzes the last `days` days of logged habits.
func (s *Scheduler) wellnessReport(days int) string {
	since := s.Clock.Today().AddDate(0, 0, -(days - 1))
	history := s.Profile.HistorySince(since)
	if len(history) == 0 {
		return "No habits logged yet. Use /log &lt;study&gt; &lt;sleep&gt; [fluctuation]."
	}

	sum := wellness.Analyze(model.HabitSeries(history))

	var score *model.WellnessScore
	if s.Config.Student.DietQuality > 0 && s.Config.Student.ExerciseFrequency > 0 && sum.SleepSamples > 0 {
		ws := wellness.Score(sum.AvgSleepHours, float64(s.Config.Student.ExerciseFrequency), float64(s.Config.Student.DietQuality))
		score = &ws
	}

	if err := s.Recorder.RecordWellness(&recorder.WellnessCheck{Summary: sum, Score: score, Samples: len(history)}); err != nil {
		log.Printf("[ERROR] record wellness: %v", err)
	}
	return fmt.Sprintf("🧘 <b>Wellness check</b> | last %d days (%d logged)\n\n%s",
		days, len(history), notifier.FormatWellness(&sum, score))
}

// logHabits parses "/log <study> <sleep> [fluctuation]" arguments.
func (s *Scheduler) logHabits(args []string) string {
	if len(args) < 2 || len(args) > 3 {
		return "Usage: /log &lt;study hours&gt; &lt;sleep hours&gt; [score fluctuation]"
	}
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Sprintf("❌ %s is not a number", html.EscapeString(strconv.Quote(a)))
		}
		values[i] = v
	}
	sample := model.HabitSample{
		Date:       s.Clock.Today(),
		StudyHours: values[0],
		SleepHours: values[1],
	}
	if len(values) == 3 {
		sample.Fluctuation = &values[2]
	}
	if err := s.Profile.LogHabits(sample); err != nil {
		if errors.Is(err, planner.ErrInvalidHours) {
			return "❌ " + html.EscapeString(err.Error())
		}
		log.Printf("[ERROR] log habits: %v", err)
		return "❌ Could not save habits"
	}
	if err := s.Recorder.RecordHabit(&recorder.HabitEvent{Sample: sample}); err != nil {
		log.Printf("[ERROR] record habit: %v", err)
	}
	return fmt.Sprintf("✅ Logged %s: study %.1fh, sleep %.1fh, fluctuation %s",
		sample.Date.Format("2006-01-02"), sample.StudyHours, sample.SleepHours, notifier.FormatFluctuation(sample.Fluctuation))
}

func (s *Scheduler) recentPlans() string {
	runs, err := s.Recorder.RecentPlans(5)
	if err != nil {
		log.Printf("[ERROR] recent plans: %v", err)
		return "❌ Could not read plan history"
	}
	if len(runs) == 0 {
		return "No plans recorded yet."
	}
	var b strings.Builder
	b.WriteString("🗂 <b>Recent plans</b>\n\n")
	for _, r := range runs {
		b.WriteString(fmt.Sprintf("  %s: %.1fh over %d day(s), %.1fh/day %s\n",
			r.PlanDate, r.TotalHours, r.DaysNeeded, r.HoursPerDay, r.Burnout))
	}
	return b.String()
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return notifier.FormatHelp()
	}
	switch strings.ToLower(fields[0]) {
	case "/plan":
		msg, err := s.buildPlan(TriggerManual)
		if err != nil {
			return planFailure(err)
		}
		return msg
	case "/wellness":
		return s.wellnessReport(7)
	case "/log":
		return s.logHabits(fields[1:])
	case "/profile":
		state := s.Profile.GetState()
		return notifier.FormatProfile(&state)
	case "/history":
		return s.recentPlans()
	default:
		return notifier.FormatHelp()
	}
}

func planFailure(err error) string {
	return "❌ Could not build study plan: " + html.EscapeString(err.Error())
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
