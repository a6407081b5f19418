package config

import "time"

// Config is the root configuration for playlint, loaded from a YAML file
// (.playlint.yaml by default) with PLAYLINT_* environment overrides.
type Config struct {
	Lint    LintConfig    `yaml:"lint"`
	Watch   WatchConfig   `yaml:"watch"`
	History HistoryConfig `yaml:"history"`
	Logging LoggingConfig `yaml:"logging"`
}

// LintConfig controls rule selection and file discovery.
type LintConfig struct {
	// DisabledRules lists rule ids to skip entirely.
	DisabledRules []string `yaml:"disabled_rules"`

	// SeverityOverrides maps rule id to "error" or "warning".
	SeverityOverrides map[string]string `yaml:"severity_overrides"`

	// ExcludePatterns are glob patterns matched against both the base
	// name and the full path during directory walks.
	ExcludePatterns []string `yaml:"exclude_patterns"`

	// Jobs bounds the number of files linted concurrently.
	// Default: number of CPUs.
	Jobs int `yaml:"jobs"`

	// MaxFileSize is the largest playbook file accepted, in bytes.
	// Default: 10MB.
	MaxFileSize int64 `yaml:"max_file_size"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	// DebounceInterval is the quiet period after a file event before
	// re-linting (default: 250ms).
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// RescanSchedule is an optional cron expression for periodic full
	// rescans (e.g. "0 */6 * * *"). Empty disables scheduled rescans.
	RescanSchedule string `yaml:"rescan_schedule"`

	// MetricsListen is the address for the Prometheus metrics endpoint
	// in watch mode (default: ":9464"). Empty disables the endpoint.
	MetricsListen string `yaml:"metrics_listen"`
}

// HistoryConfig controls the run history store.
type HistoryConfig struct {
	// Enabled turns on recording of lint runs.
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file path (default: .playlint/history.db).
	Path string `yaml:"path"`

	// RetentionDays bounds how long recorded runs are kept (default: 90).
	RetentionDays int `yaml:"retention_days"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is the output format: text or json.
	Format string `yaml:"format"`
}
