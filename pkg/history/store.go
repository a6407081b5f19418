package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/runner"
)

// Store persists lint run history in a SQLite database.
//
// Store uses a write-ahead log (WAL) for better concurrent performance. SQLite
// only supports a single writer, so the connection pool is pinned to one
// connection.
type Store struct {
	db   *sql.DB
	path string
}

// StoreConfig configures the history store.
type StoreConfig struct {
	// Path is the path to the SQLite database file. Parent directories are
	// created if missing.
	Path string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// Open opens a history store at path with default settings.
func Open(path string) (*Store, error) {
	return OpenWithConfig(StoreConfig{Path: path, BusyTimeout: 5 * time.Second})
}

// OpenWithConfig opens a history store with custom configuration.
func OpenWithConfig(cfg StoreConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("history path cannot be empty")
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		cfg.Path, int(cfg.BusyTimeout.Milliseconds()))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	store := &Store{db: db, path: cfg.Path}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		files INTEGER NOT NULL,
		errors INTEGER NOT NULL,
		warnings INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS violations (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		file TEXT NOT NULL,
		line INTEGER NOT NULL,
		column INTEGER NOT NULL,
		rule_id TEXT NOT NULL,
		severity TEXT NOT NULL,
		message TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
	CREATE INDEX IF NOT EXISTS idx_violations_run ON violations(run_id);
	CREATE INDEX IF NOT EXISTS idx_violations_key ON violations(file, line, column, rule_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// RunSummary is a stored run without its violations.
type RunSummary struct {
	ID        string        `json:"id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Files     int           `json:"files"`
	Errors    int           `json:"errors"`
	Warnings  int           `json:"warnings"`
}

// RecordRun stores a completed run and all of its violations.
func (s *Store) RecordRun(ctx context.Context, report *runner.Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	errors, warnings := 0, 0
	for _, file := range report.Files {
		errors += file.ErrorCount()
		warnings += file.WarningCount()
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, duration_ms, files, errors, warnings)
		VALUES (?, ?, ?, ?, ?, ?)
	`, report.RunID, report.StartedAt.UnixMilli(), report.Duration.Milliseconds(),
		len(report.Files), errors, warnings)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO violations (run_id, file, line, column, rule_id, severity, message)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare violation insert: %w", err)
	}
	defer stmt.Close()

	for _, file := range report.Files {
		for _, v := range file.Violations {
			if _, err := stmt.ExecContext(ctx, report.RunID,
				v.File, v.Line, v.Column, v.RuleID, string(v.Severity), v.Message); err != nil {
				return fmt.Errorf("failed to insert violation: %w", err)
			}
		}
	}

	return tx.Commit()
}

// LastRun returns the most recent stored run, or nil if the store is empty.
func (s *Store) LastRun(ctx context.Context) (*RunSummary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, duration_ms, files, errors, warnings
		FROM runs ORDER BY started_at DESC LIMIT 1
	`)
	summary, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load last run: %w", err)
	}
	return summary, nil
}

// ListRuns returns up to limit stored runs, most recent first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, duration_ms, files, errors, warnings
		FROM runs ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		summary, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *summary)
	}
	return runs, rows.Err()
}

// RunViolations returns the violations recorded for a run, in stored order.
func (s *Store) RunViolations(ctx context.Context, runID string) ([]lint.Violation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT file, line, column, rule_id, severity, message
		FROM violations WHERE run_id = ?
		ORDER BY file, line, column, rule_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run violations: %w", err)
	}
	defer rows.Close()

	var violations []lint.Violation
	for rows.Next() {
		var v lint.Violation
		var severity string
		if err := rows.Scan(&v.File, &v.Line, &v.Column, &v.RuleID, &severity, &v.Message); err != nil {
			return nil, fmt.Errorf("failed to scan violation: %w", err)
		}
		v.Severity = lint.Severity(severity)
		violations = append(violations, v)
	}
	return violations, rows.Err()
}

// NewSince returns the violations in report that were not present in the
// baseline run. A violation matches the baseline when its file, rule id, and
// message coincide; line and column are ignored so unrelated edits do not
// resurface old findings.
func (s *Store) NewSince(ctx context.Context, baselineRunID string, report *runner.Report) ([]lint.Violation, error) {
	baseline, err := s.RunViolations(ctx, baselineRunID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]int, len(baseline))
	for _, v := range baseline {
		seen[baselineKey(v)]++
	}

	var fresh []lint.Violation
	for _, file := range report.Files {
		for _, v := range file.Violations {
			key := baselineKey(v)
			if seen[key] > 0 {
				seen[key]--
				continue
			}
			fresh = append(fresh, v)
		}
	}
	return fresh, nil
}

func baselineKey(v lint.Violation) string {
	return v.File + "\x00" + v.RuleID + "\x00" + v.Message
}

// Prune deletes runs older than retentionDays and returns the number of runs
// removed. Violations are removed through the cascading foreign key.
func (s *Store) Prune(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays).UnixMilli()

	if _, err := s.db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
		return 0, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*RunSummary, error) {
	var summary RunSummary
	var startedAt, durationMS int64
	if err := row.Scan(&summary.ID, &startedAt, &durationMS,
		&summary.Files, &summary.Errors, &summary.Warnings); err != nil {
		return nil, err
	}
	summary.StartedAt = time.UnixMilli(startedAt)
	summary.Duration = time.Duration(durationMS) * time.Millisecond
	return &summary, nil
}
