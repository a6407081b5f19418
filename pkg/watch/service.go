package watch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"playlint-hq/playlint/pkg/config"
	"playlint-hq/playlint/pkg/history"
	"playlint-hq/playlint/pkg/report"
	"playlint-hq/playlint/pkg/runner"
	"playlint-hq/playlint/pkg/telemetry/metrics"
)

// Service runs the linter continuously: an initial full pass, debounced
// re-lints on file changes, optional scheduled rescans, and an optional
// Prometheus metrics endpoint.
type Service struct {
	paths     []string
	cfg       *config.Config
	runner    *runner.Runner
	watcher   *FileWatcher
	scheduler *RescanScheduler
	collector *metrics.Collector
	store     *history.Store
	out       io.Writer
	logger    *slog.Logger

	mu sync.Mutex // serializes lint passes
}

// NewService creates a watch service. store may be nil when history recording
// is disabled.
func NewService(paths []string, cfg *config.Config, r *runner.Runner, collector *metrics.Collector, store *history.Store, out io.Writer, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "watch")

	watcherCfg := DefaultFileWatcherConfig()
	watcherCfg.Paths = paths
	watcherCfg.DebounceInterval = cfg.Watch.DebounceInterval

	watcher, err := NewFileWatcher(watcherCfg, logger)
	if err != nil {
		return nil, err
	}

	return &Service{
		paths:     paths,
		cfg:       cfg,
		runner:    r,
		watcher:   watcher,
		scheduler: NewRescanScheduler(cfg.Watch.RescanSchedule, logger),
		collector: collector,
		store:     store,
		out:       out,
		logger:    logger,
	}, nil
}

// Run performs an initial full lint pass and then blocks, re-linting on file
// changes and scheduled rescans, until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Watch.MetricsListen != "" && s.collector != nil {
		go s.serveMetrics(ctx)
	}

	s.rescan(ctx)

	if err := s.scheduler.Start(ctx, s.rescan); err != nil {
		return err
	}

	return s.watcher.Watch(ctx, func([]string) error {
		// A full rescan keeps results deterministic regardless of which
		// files changed.
		s.rescan(ctx)
		return nil
	})
}

func (s *Service) rescan(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	paths, err := runner.Discover(s.paths, s.cfg.Lint.ExcludePatterns)
	if err != nil {
		s.logger.Error("file discovery failed", "error", err)
		return
	}

	rpt, err := s.runner.Run(ctx, paths)
	if err != nil {
		s.logger.Error("lint run failed", "error", err)
		return
	}

	if s.collector != nil {
		for _, file := range rpt.Files {
			byRule := make(map[string]int)
			for _, v := range file.Violations {
				byRule[v.RuleID]++
			}
			s.collector.RecordFile(file.Duration, file.ParseFailed, byRule)
		}
	}

	if s.store != nil {
		if err := s.store.RecordRun(ctx, rpt); err != nil {
			s.logger.Error("failed to record run", "error", err)
		}
	}

	report.WriteText(s.out, rpt, false)

	s.logger.Info("lint pass complete",
		"run_id", rpt.RunID,
		"files", len(rpt.Files),
		"violations", rpt.TotalViolations(),
		"duration_ms", rpt.Duration.Milliseconds(),
	)
}

func (s *Service) serveMetrics(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.collector.Handler())

	server := &http.Server{
		Addr:              s.cfg.Watch.MetricsListen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	s.logger.Info("metrics endpoint listening", "addr", s.cfg.Watch.MetricsListen)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("metrics server failed", "error", err)
	}
}
