package config

import (
	"fmt"
	"os"
	"time"

	"StudyPlanner/internal/model"

	"gopkg.in/yaml.v3"
)

// SubjectConfig describes one subject in the student profile.
type SubjectConfig struct {
	Name         string `yaml:"name"`
	CurrentScore int    `yaml:"current_score"`
	DesiredScore int    `yaml:"desired_score"`
	TestDate     string `yaml:"test_date"` // YYYY-MM-DD
}

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		DailyCron  string `yaml:"daily_cron"`
		WeeklyCron string `yaml:"weekly_cron"`
	} `yaml:"schedule"`
	Planner struct {
		WindowStart   string         `yaml:"window_start"` // HH:MM
		WindowEnd     string         `yaml:"window_end"`
		StudyBlockMax time.Duration  `yaml:"study_block_max"`
		BreakBlock    *time.Duration `yaml:"break_block"` // 0 disables breaks
		TrailingBreak bool           `yaml:"trailing_break"`
		Precision     *int           `yaml:"precision"`
	} `yaml:"planner"`
	Student struct {
		Subjects          []SubjectConfig `yaml:"subjects"`
		TotalHours        float64         `yaml:"total_hours"`
		DietQuality       int             `yaml:"diet_quality"`
		ExerciseFrequency int             `yaml:"exercise_frequency"`
	} `yaml:"student"`
	State struct {
		ProfileFile  string `yaml:"profile_file"`
		HistoryLimit int    `yaml:"history_limit"`
	} `yaml:"state"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Timezone string `yaml:"timezone"`
	Proxy    string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("TOTAL_HOURS"); v != "" {
		var hours float64
		if _, err := fmt.Sscanf(v, "%f", &hours); err == nil {
			cfg.Student.TotalHours = hours
		}
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("CRON_WEEKLY"); v != "" {
		cfg.Schedule.WeeklyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("TIMEZONE"); v != "" {
		cfg.Timezone = v
	}

	// Defaults
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 8 * * *"
	}
	if cfg.Schedule.WeeklyCron == "" {
		cfg.Schedule.WeeklyCron = "0 0 20 * * 0"
	}
	if cfg.Planner.WindowStart == "" {
		cfg.Planner.WindowStart = "10:00"
	}
	if cfg.Planner.WindowEnd == "" {
		cfg.Planner.WindowEnd = "22:00"
	}
	if cfg.Planner.StudyBlockMax == 0 {
		cfg.Planner.StudyBlockMax = 90 * time.Minute
	}
	if cfg.Planner.BreakBlock == nil {
		d := 30 * time.Minute
		cfg.Planner.BreakBlock = &d
	}
	if cfg.Planner.Precision == nil {
		p := 1
		cfg.Planner.Precision = &p
	}
	if cfg.State.ProfileFile == "" {
		cfg.State.ProfileFile = "data/profile.json"
	}
	if cfg.State.HistoryLimit == 0 {
		cfg.State.HistoryLimit = 30
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/study_planner.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if len(c.Student.Subjects) == 0 {
		return fmt.Errorf("student.subjects must not be empty")
	}
	if c.Student.TotalHours <= 0 {
		return fmt.Errorf("student.total_hours must be positive")
	}
	window, err := c.Window()
	if err != nil {
		return err
	}
	if window.End <= window.Start {
		return fmt.Errorf("planner.window_end must be after planner.window_start")
	}
	if c.Planner.StudyBlockMax <= 0 {
		return fmt.Errorf("planner.study_block_max must be positive")
	}
	if c.Planner.BreakBlock != nil && *c.Planner.BreakBlock < 0 {
		return fmt.Errorf("planner.break_block must not be negative")
	}
	if c.Planner.Precision != nil && *c.Planner.Precision < 0 {
		return fmt.Errorf("planner.precision must not be negative")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Window parses the configured study window.
func (c *Config) Window() (model.Window, error) {
	start, err := model.ParseClock(c.Planner.WindowStart)
	if err != nil {
		return model.Window{}, fmt.Errorf("planner.window_start: %w", err)
	}
	end, err := model.ParseClock(c.Planner.WindowEnd)
	if err != nil {
		return model.Window{}, fmt.Errorf("planner.window_end: %w", err)
	}
	return model.Window{Start: start, End: end}, nil
}

// Location resolves the configured timezone, falling back to local time.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}
	return loc, nil
}
