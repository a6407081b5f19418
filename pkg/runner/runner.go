// Package runner drives the per-file lint pipeline: parse, evaluate,
// collect. Files are processed by a bounded pool of workers; each worker
// owns its document, so no locking is needed, and one file's parse
// failure never affects the others.
package runner

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/playbook/parser"
)

// FileResult is the outcome of one file's pipeline.
type FileResult struct {
	Path        string           `json:"path"`
	Violations  []lint.Violation `json:"violations,omitempty"`
	ParseFailed bool             `json:"parse_failed,omitempty"`
	Duration    time.Duration    `json:"duration_ns"`
}

// ErrorCount returns the number of error-severity violations.
func (r FileResult) ErrorCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == lint.SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-severity violations.
func (r FileResult) WarningCount() int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == lint.SeverityWarning {
			n++
		}
	}
	return n
}

// Report aggregates the results of one lint run.
type Report struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
	Files     []FileResult  `json:"files"`
}

// TotalViolations returns the number of violations across all files.
func (r *Report) TotalViolations() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Violations)
	}
	return n
}

// HasErrors reports whether any file produced an error-severity violation.
func (r *Report) HasErrors() bool {
	for _, f := range r.Files {
		if f.ErrorCount() > 0 {
			return true
		}
	}
	return false
}

// Runner executes lint runs over sets of files.
type Runner struct {
	parser *parser.Parser
	engine *lint.Engine
	jobs   int
	logger *slog.Logger
}

// New creates a runner. jobs bounds worker parallelism; values below one
// are treated as one.
func New(p *parser.Parser, engine *lint.Engine, jobs int) *Runner {
	if jobs < 1 {
		jobs = 1
	}
	return &Runner{
		parser: p,
		engine: engine,
		jobs:   jobs,
		logger: slog.Default().With("component", "runner"),
	}
}

// Run lints all paths and returns an aggregated report. Results are
// ordered by path regardless of worker scheduling, so output is
// deterministic. The only error returned is context cancellation;
// per-file faults are reported inside the results.
func (r *Runner) Run(ctx context.Context, paths []string) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Files:     make([]FileResult, len(paths)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report.Files[i] = r.RunFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].Path < report.Files[j].Path
	})
	report.Duration = time.Since(report.StartedAt)

	r.logger.Debug("lint run complete",
		"run_id", report.RunID,
		"files", len(report.Files),
		"violations", report.TotalViolations(),
	)
	return report, nil
}

// RunFile executes the pipeline for a single file. A parse failure yields
// exactly one fatal parse-error violation; style rules do not run.
func (r *Runner) RunFile(path string) FileResult {
	start := time.Now()

	doc, err := r.parser.Parse(path)
	if err != nil {
		return FileResult{
			Path:        path,
			Violations:  []lint.Violation{lint.ParseFailure(path, err)},
			ParseFailed: true,
			Duration:    time.Since(start),
		}
	}

	return FileResult{
		Path:       path,
		Violations: r.engine.Evaluate(doc),
		Duration:   time.Since(start),
	}
}
