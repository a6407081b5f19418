package config

import (
	"runtime"
	"time"
)

// Default values applied by ApplyDefaults.
const (
	DefaultMaxFileSize      = 10 * 1024 * 1024
	DefaultDebounceInterval = 250 * time.Millisecond
	DefaultMetricsListen    = ":9464"
	DefaultHistoryPath      = ".playlint/history.db"
	DefaultRetentionDays    = 90
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
)

// NewDefault returns a configuration with all defaults applied.
func NewDefault() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields with their defaults. It never
// overrides a value the user set.
func ApplyDefaults(cfg *Config) {
	if cfg.Lint.Jobs == 0 {
		cfg.Lint.Jobs = runtime.NumCPU()
	}
	if cfg.Lint.MaxFileSize == 0 {
		cfg.Lint.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = DefaultDebounceInterval
	}
	if cfg.Watch.MetricsListen == "" {
		cfg.Watch.MetricsListen = DefaultMetricsListen
	}
	if cfg.History.Path == "" {
		cfg.History.Path = DefaultHistoryPath
	}
	if cfg.History.RetentionDays == 0 {
		cfg.History.RetentionDays = DefaultRetentionDays
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
}
