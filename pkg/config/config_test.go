package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.Lint.Jobs != runtime.NumCPU() {
		t.Errorf("Jobs = %d, want %d", cfg.Lint.Jobs, runtime.NumCPU())
	}
	if cfg.Lint.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("MaxFileSize = %d, want %d", cfg.Lint.MaxFileSize, DefaultMaxFileSize)
	}
	if cfg.Watch.DebounceInterval != DefaultDebounceInterval {
		t.Errorf("DebounceInterval = %v, want %v", cfg.Watch.DebounceInterval, DefaultDebounceInterval)
	}
	if cfg.History.Path != DefaultHistoryPath {
		t.Errorf("History.Path = %q, want %q", cfg.History.Path, DefaultHistoryPath)
	}
	if cfg.Logging.Level != DefaultLogLevel || cfg.Logging.Format != DefaultLogFormat {
		t.Errorf("Logging = %s/%s, want %s/%s",
			cfg.Logging.Level, cfg.Logging.Format, DefaultLogLevel, DefaultLogFormat)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlint.yaml")
	content := `lint:
  jobs: 2
  disabled_rules:
    - quoting
  severity_overrides:
    spacing: warning
  exclude_patterns:
    - "molecule/*"
watch:
  debounce_interval: 500ms
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.Lint.Jobs != 2 {
		t.Errorf("Jobs = %d, want 2", cfg.Lint.Jobs)
	}
	if len(cfg.Lint.DisabledRules) != 1 || cfg.Lint.DisabledRules[0] != "quoting" {
		t.Errorf("DisabledRules = %v, want [quoting]", cfg.Lint.DisabledRules)
	}
	if cfg.Lint.SeverityOverrides["spacing"] != "warning" {
		t.Errorf("SeverityOverrides[spacing] = %q, want warning", cfg.Lint.SeverityOverrides["spacing"])
	}
	if cfg.Watch.DebounceInterval != 500*time.Millisecond {
		t.Errorf("DebounceInterval = %v, want 500ms", cfg.Watch.DebounceInterval)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}

	// Unset fields still get defaults.
	if cfg.History.RetentionDays != DefaultRetentionDays {
		t.Errorf("RetentionDays = %d, want default %d", cfg.History.RetentionDays, DefaultRetentionDays)
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	t.Setenv("PLAYLINT_LINT_JOBS", "7")
	t.Setenv("PLAYLINT_LOGGING_LEVEL", "warn")
	t.Setenv("PLAYLINT_WATCH_DEBOUNCE_INTERVAL", "1s")

	cfg, err := LoadConfigWithEnvOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides() failed: %v", err)
	}

	if cfg.Lint.Jobs != 7 {
		t.Errorf("Jobs = %d, want 7", cfg.Lint.Jobs)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.Watch.DebounceInterval != time.Second {
		t.Errorf("DebounceInterval = %v, want 1s", cfg.Watch.DebounceInterval)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "zero jobs",
			mutate:  func(cfg *Config) { cfg.Lint.Jobs = 0 },
			wantErr: "lint.jobs",
		},
		{
			name:    "unknown severity override",
			mutate:  func(cfg *Config) { cfg.Lint.SeverityOverrides = map[string]string{"fqcn": "fatal"} },
			wantErr: "unknown severity",
		},
		{
			name:    "bad cron expression",
			mutate:  func(cfg *Config) { cfg.Watch.RescanSchedule = "not a schedule" },
			wantErr: "invalid cron expression",
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "loud" },
			wantErr: "unknown level",
		},
		{
			name:    "unknown log format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: "unknown format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
