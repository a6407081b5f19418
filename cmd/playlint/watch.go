package main

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"playlint-hq/playlint/pkg/cli"
	"playlint-hq/playlint/pkg/history"
	"playlint-hq/playlint/pkg/telemetry/metrics"
	"playlint-hq/playlint/pkg/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [files or directories...]",
	Short: "Continuously lint playbooks as they change",
	Long: `Continuously lint playbooks: an initial full pass, then debounced
re-lints on file changes. Optionally runs scheduled full rescans (see
watch.rescan_schedule) and serves Prometheus metrics (watch.metrics_listen).

Runs until interrupted.

Examples:
  # Watch a playbook tree
  playlint watch playbooks/

  # Watch with a rescan every 6 hours
  PLAYLINT_WATCH_RESCAN_SCHEDULE="0 */6 * * *" playlint watch playbooks/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	collector := metrics.NewCollector(prometheus.NewRegistry())

	service, err := watch.NewService(args, cfg, newRunner(cfg), collector, store, os.Stdout, nil)
	if err != nil {
		return err
	}

	ctx := cli.SetupSignalHandler()
	return service.Run(ctx)
}
