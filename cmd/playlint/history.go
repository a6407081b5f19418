package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"playlint-hq/playlint/pkg/cli"
	"playlint-hq/playlint/pkg/history"
	"playlint-hq/playlint/pkg/runner"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded lint runs",
	Long:  `Inspect, compare, and prune lint runs recorded in the history store.`,
}

var historyListFlags struct {
	limit int
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cli.SetupSignalHandler()
		runs, err := store.ListRuns(ctx, historyListFlags.limit)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Run", "Started", "Duration", "Files", "Errors", "Warnings"})
		table.SetBorder(false)
		for _, run := range runs {
			table.Append([]string{
				run.ID,
				run.StartedAt.Format("2006-01-02 15:04:05"),
				run.Duration.String(),
				fmt.Sprintf("%d", run.Files),
				fmt.Sprintf("%d", run.Errors),
				fmt.Sprintf("%d", run.Warnings),
			})
		}
		table.Render()
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the violations recorded for a run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cli.SetupSignalHandler()
		violations, err := store.RunViolations(ctx, args[0])
		if err != nil {
			return err
		}

		for _, v := range violations {
			fmt.Println(v.String())
		}
		fmt.Printf("\n%d violation(s)\n", len(violations))
		return nil
	},
}

var historyDiffCmd = &cobra.Command{
	Use:   "diff [files or directories...]",
	Short: "Lint now and show only violations new since the last recorded run",
	Long: `Lint the given paths and report only the violations that were not
present in the most recent recorded run. A violation matches the baseline by
file, rule id, and message, so moved lines do not resurface old findings.

Exits 1 when new violations are found.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cli.SetupSignalHandler()
		baseline, err := store.LastRun(ctx)
		if err != nil {
			return err
		}
		if baseline == nil {
			return fmt.Errorf("no recorded runs to compare against; run 'playlint lint --record' first")
		}

		paths, err := runner.Discover(args, cfg.Lint.ExcludePatterns)
		if err != nil {
			return err
		}

		rpt, err := newRunner(cfg).Run(ctx, paths)
		if err != nil {
			return err
		}

		fresh, err := store.NewSince(ctx, baseline.ID, rpt)
		if err != nil {
			return err
		}

		for _, v := range fresh {
			fmt.Println(v.String())
		}
		fmt.Printf("\n%d new violation(s) since run %s\n", len(fresh), baseline.ID)

		if len(fresh) > 0 {
			return cli.NewExitError(1, nil)
		}
		return nil
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete runs older than the retention period",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cli.SetupSignalHandler()
		deleted, err := store.Prune(ctx, cfg.History.RetentionDays)
		if err != nil {
			return err
		}

		fmt.Printf("pruned %d run(s) older than %d days\n", deleted, cfg.History.RetentionDays)
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntVar(&historyListFlags.limit, "limit", 20, "maximum runs to list")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDiffCmd)
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}
