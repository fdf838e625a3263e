package profile

import (
	"fmt"
	"log"
	"sync"
	"time"

	"StudyPlanner/internal/calculator"
	"StudyPlanner/internal/config"
	"StudyPlanner/internal/model"
	"StudyPlanner/internal/planner"
)

// Manager owns the student's habit history with concurrency safety.
type Manager struct {
	mu       sync.Mutex
	state    *model.ProfileState
	filePath string
	limit    int
}

// NewManager creates a Manager, loading or initializing state from disk.
// At most limit samples are kept; limit <= 0 keeps everything.
func NewManager(filePath string, limit int) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, fmt.Errorf("load profile state: %w", err)
	}
	m := &Manager{state: state, filePath: filePath, limit: limit}
	m.trim()
	if err := m.save(); err != nil {
		return nil, fmt.Errorf("save profile state: %w", err)
	}
	return m, nil
}

// GetState returns a copy of the current profile state.
func (m *Manager) GetState() model.ProfileState {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := *m.state
	st.History = append([]model.HabitSample(nil), m.state.History...)
	return st
}

// LogHabits records one day of habits. A sample for the same date replaces the earlier one.
func (m *Manager) LogHabits(sample model.HabitSample) error {
	if sample.StudyHours < 0 || sample.SleepHours < 0 {
		return fmt.Errorf("%w: study=%g sleep=%g", planner.ErrInvalidHours, sample.StudyHours, sample.SleepHours)
	}
	if sample.StudyHours+sample.SleepHours > 24 {
		return fmt.Errorf("%w: study and sleep exceed 24h", planner.ErrInvalidHours)
	}
	sample.Date = calculator.CivilDate(sample.Date)

	m.mu.Lock()
	defer m.mu.Unlock()

	replaced := false
	for i, s := range m.state.History {
		if s.Date.Equal(sample.Date) {
			m.state.History[i] = sample
			replaced = true
			break
		}
	}
	if !replaced {
		m.state.History = append(m.state.History, sample)
	}
	m.trim()
	return m.save()
}

// MarkPlanSent remembers the last plan delivered to the student.
func (m *Manager) MarkPlanSent(planID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.LastPlan = planID
	m.state.PlansSent++
	if err := m.save(); err != nil {
		log.Printf("[ERROR] failed to save profile state: %v", err)
	}
}

// Request assembles a planning request from the configured student profile
// and the logged habit history.
func (m *Manager) Request(cfg *config.Config) *planner.Request {
	m.mu.Lock()
	defer m.mu.Unlock()

	req := &planner.Request{
		TotalHours:        cfg.Student.TotalHours,
		DietQuality:       cfg.Student.DietQuality,
		ExerciseFrequency: cfg.Student.ExerciseFrequency,
	}
	for _, s := range cfg.Student.Subjects {
		req.Subjects = append(req.Subjects, s.Name)
		req.Scores = append(req.Scores, s.CurrentScore)
		req.DesiredScores = append(req.DesiredScores, s.DesiredScore)
		req.TestDates = append(req.TestDates, s.TestDate)
	}
	req.StudyHours, req.SleepHours, req.ScoreFluctuations = model.HabitSeries(m.state.History)
	return req
}

// HistorySince returns samples dated on or after from.
func (m *Manager) HistorySince(from time.Time) []model.HabitSample {
	m.mu.Lock()
	defer m.mu.Unlock()

	from = calculator.CivilDate(from)
	var out []model.HabitSample
	for _, s := range m.state.History {
		if !s.Date.Before(from) {
			out = append(out, s)
		}
	}
	return out
}

func (m *Manager) trim() {
	if m.limit > 0 && len(m.state.History) > m.limit {
		m.state.History = m.state.History[len(m.state.History)-m.limit:]
	}
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
