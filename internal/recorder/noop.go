package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordPlan(_ *PlanRun) error             { return nil }
func (n *NoopRecorder) RecordWellness(_ *WellnessCheck) error   { return nil }
func (n *NoopRecorder) RecordHabit(_ *HabitEvent) error         { return nil }
func (n *NoopRecorder) RecentPlans(_ int) ([]RunSummary, error) { return nil, nil }
func (n *NoopRecorder) Close() error                            { return nil }
