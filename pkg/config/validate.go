package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

var validSeverities = map[string]bool{
	"error":   true,
	"warning": true,
}

// Validate checks the configuration for invalid values. It returns the
// first error found.
func Validate(cfg *Config) error {
	if cfg.Lint.Jobs < 1 {
		return fmt.Errorf("lint.jobs must be at least 1, got %d", cfg.Lint.Jobs)
	}
	if cfg.Lint.MaxFileSize < 1 {
		return fmt.Errorf("lint.max_file_size must be positive, got %d", cfg.Lint.MaxFileSize)
	}
	for id, sev := range cfg.Lint.SeverityOverrides {
		if !validSeverities[sev] {
			return fmt.Errorf("lint.severity_overrides[%s]: unknown severity %q", id, sev)
		}
	}

	if cfg.Watch.DebounceInterval < 0 {
		return fmt.Errorf("watch.debounce_interval must not be negative")
	}
	if cfg.Watch.RescanSchedule != "" {
		if _, err := cron.ParseStandard(cfg.Watch.RescanSchedule); err != nil {
			return fmt.Errorf("watch.rescan_schedule: invalid cron expression %q: %w",
				cfg.Watch.RescanSchedule, err)
		}
	}

	if cfg.History.RetentionDays < 1 {
		return fmt.Errorf("history.retention_days must be at least 1, got %d", cfg.History.RetentionDays)
	}

	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level: unknown level %q", cfg.Logging.Level)
	}
	if !validLogFormats[cfg.Logging.Format] {
		return fmt.Errorf("logging.format: unknown format %q", cfg.Logging.Format)
	}

	return nil
}
