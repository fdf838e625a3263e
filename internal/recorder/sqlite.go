package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"StudyPlanner/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists historical data to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so report queries can read while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS plan_runs (
			id            TEXT PRIMARY KEY,
			timestamp     INTEGER NOT NULL,
			trigger_type  TEXT,
			plan_date     TEXT,
			total_hours   REAL,
			days_needed   INTEGER,
			hours_per_day REAL,
			burnout       TEXT,
			avg_study     REAL,
			avg_sleep     REAL,
			fluctuation   REAL,
			wellness      REAL,
			risk          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_plan_runs_ts ON plan_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS plan_allocations (
			run_id      TEXT NOT NULL REFERENCES plan_runs(id),
			position    INTEGER NOT NULL,
			subject     TEXT NOT NULL,
			hours       REAL,
			urgency     INTEGER,
			improvement REAL,
			weight      REAL,
			PRIMARY KEY (run_id, position)
		)`,

		`CREATE TABLE IF NOT EXISTS plan_blocks (
			run_id   TEXT NOT NULL REFERENCES plan_runs(id),
			position INTEGER NOT NULL,
			label    TEXT NOT NULL,
			start_at TEXT,
			end_at   TEXT,
			minutes  REAL,
			PRIMARY KEY (run_id, position)
		)`,

		`CREATE TABLE IF NOT EXISTS wellness_checks (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			samples     INTEGER,
			avg_study   REAL,
			avg_sleep   REAL,
			fluctuation REAL,
			burnout     TEXT,
			tips        INTEGER,
			wellness    REAL,
			risk        TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_wellness_ts ON wellness_checks(timestamp)`,

		`CREATE TABLE IF NOT EXISTS habit_log (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			sample_date TEXT,
			study_hours REAL,
			sleep_hours REAL,
			fluctuation REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_habit_ts ON habit_log(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordPlan(run *PlanRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := run.Plan
	var (
		burnout, risk                    string
		avgStudy, avgSleep, fluct, score float64
	)
	if p.Wellness != nil {
		burnout = p.Wellness.Burnout.String()
		avgStudy, avgSleep, fluct = p.Wellness.AvgStudyHours, p.Wellness.AvgSleepHours, p.Wellness.FluctuationStdDev
	}
	if p.Score != nil {
		score, risk = p.Score.Score, string(p.Score.Risk)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO plan_runs
		(id, timestamp, trigger_type, plan_date, total_hours, days_needed, hours_per_day,
		 burnout, avg_study, avg_sleep, fluctuation, wellness, risk)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		p.ID, time.Now().Unix(), run.Trigger, p.Date.Format("2006-01-02"),
		p.TotalHours, p.Day.DaysNeeded, p.Day.HoursPerDay,
		burnout, avgStudy, avgSleep, fluct, score, risk,
	); err != nil {
		return fmt.Errorf("insert plan run: %w", err)
	}

	for i, a := range p.Allocation.Entries {
		if _, err := tx.Exec(`INSERT INTO plan_allocations
			(run_id, position, subject, hours, urgency, improvement, weight)
			VALUES (?,?,?,?,?,?,?)`,
			p.ID, i, a.Subject, a.Hours, a.Urgency, a.Improvement, a.Weight,
		); err != nil {
			return fmt.Errorf("insert allocation %s: %w", a.Subject, err)
		}
	}

	for i, b := range p.Day.Blocks {
		if _, err := tx.Exec(`INSERT INTO plan_blocks
			(run_id, position, label, start_at, end_at, minutes)
			VALUES (?,?,?,?,?,?)`,
			p.ID, i, b.Label, model.FormatClock(b.Start), model.FormatClock(b.End), b.Duration().Minutes(),
		); err != nil {
			return fmt.Errorf("insert block %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) RecordWellness(chk *WellnessCheck) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var score float64
	var risk string
	if chk.Score != nil {
		score, risk = chk.Score.Score, string(chk.Score.Risk)
	}
	s := chk.Summary
	_, err := r.db.Exec(`INSERT INTO wellness_checks
		(timestamp, samples, avg_study, avg_sleep, fluctuation, burnout, tips, wellness, risk)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), chk.Samples, s.AvgStudyHours, s.AvgSleepHours, s.FluctuationStdDev,
		s.Burnout.String(), len(s.Tips), score, risk,
	)
	return err
}

func (r *SQLiteRecorder) RecordHabit(evt *HabitEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var fluct sql.NullFloat64
	if evt.Sample.Fluctuation != nil {
		fluct = sql.NullFloat64{Float64: *evt.Sample.Fluctuation, Valid: true}
	}
	_, err := r.db.Exec(`INSERT INTO habit_log
		(timestamp, sample_date, study_hours, sleep_hours, fluctuation)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.Sample.Date.Format("2006-01-02"),
		evt.Sample.StudyHours, evt.Sample.SleepHours, fluct,
	)
	return err
}

// RecentPlans returns the latest recorded runs, newest first.
func (r *SQLiteRecorder) RecentPlans(limit int) ([]RunSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT id, timestamp, plan_date, total_hours, days_needed, hours_per_day, burnout
		FROM plan_runs ORDER BY timestamp DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query plan runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var s RunSummary
		if err := rows.Scan(&s.ID, &s.Timestamp, &s.PlanDate, &s.TotalHours, &s.DaysNeeded, &s.HoursPerDay, &s.Burnout); err != nil {
			return nil, fmt.Errorf("scan plan run: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
