package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"playlint-hq/playlint/pkg/cli"
	"playlint-hq/playlint/pkg/config"
	"playlint-hq/playlint/pkg/history"
	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/lint/rules"
	"playlint-hq/playlint/pkg/playbook/parser"
	"playlint-hq/playlint/pkg/report"
	"playlint-hq/playlint/pkg/runner"
)

var lintFlags struct {
	format  string
	strict  bool
	summary bool
	record  bool
}

var lintCmd = &cobra.Command{
	Use:   "lint [files or directories...]",
	Short: "Check playbooks for style violations",
	Long: `Check Ansible playbooks and task files for style violations.

Files are parsed with a structure-preserving YAML parser, then every
registered rule runs against each file. Violations are reported sorted
by file, line, column, and rule id.

Exit codes:
  0 - no violations of severity error (and no warnings with --strict)
  1 - violations found
  2 - operational failure (unreadable files, bad configuration)

Examples:
  # Lint a playbook and a role directory
  playlint lint site.yml roles/

  # Strict mode (warnings as errors)
  playlint lint --strict playbooks/

  # JSON output for CI/CD
  playlint lint --format json playbooks/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
	lintCmd.Flags().BoolVar(&lintFlags.strict, "strict", false, "treat warnings as errors")
	lintCmd.Flags().BoolVar(&lintFlags.summary, "summary", false, "append a per-file summary table")
	lintCmd.Flags().BoolVar(&lintFlags.record, "record", false, "record this run in the history store")
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if lintFlags.format != "text" && lintFlags.format != "json" {
		return cli.NewConfigError("format", fmt.Sprintf("unsupported output format %q", lintFlags.format))
	}

	paths, err := runner.Discover(args, cfg.Lint.ExcludePatterns)
	if err != nil {
		return fmt.Errorf("file discovery failed: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no playbook files found")
	}

	r := newRunner(cfg)
	ctx := cli.SetupSignalHandler()

	rpt, err := r.Run(ctx, paths)
	if err != nil {
		return err
	}

	if lintFlags.record || cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("failed to open history store: %w", err)
		}
		defer store.Close()
		if err := store.RecordRun(ctx, rpt); err != nil {
			return fmt.Errorf("failed to record run: %w", err)
		}
	}

	if lintFlags.format == "json" {
		if err := report.WriteJSON(os.Stdout, rpt); err != nil {
			return err
		}
	} else {
		report.WriteText(os.Stdout, rpt, lintFlags.strict)
		if lintFlags.summary {
			report.WriteSummaryTable(os.Stdout, rpt)
		}
	}

	if rpt.HasErrors() || (lintFlags.strict && rpt.TotalViolations() > 0) {
		return cli.NewExitError(1, nil)
	}
	return nil
}

// newRunner builds a runner from the loaded configuration: the rule set minus
// disabled rules, severity overrides, and the parallelism bound.
func newRunner(cfg *config.Config) *runner.Runner {
	p := parser.NewParser().WithMaxFileSize(cfg.Lint.MaxFileSize)
	return runner.New(p, newEngine(cfg), cfg.Lint.Jobs)
}

func newEngine(cfg *config.Config) *lint.Engine {
	disabled := make(map[string]bool, len(cfg.Lint.DisabledRules))
	for _, id := range cfg.Lint.DisabledRules {
		disabled[id] = true
	}

	var active []lint.Rule
	for _, rule := range rules.Default() {
		if !disabled[rule.ID()] {
			active = append(active, rule)
		}
	}

	overrides := make(map[string]lint.Severity, len(cfg.Lint.SeverityOverrides))
	for id, severity := range cfg.Lint.SeverityOverrides {
		overrides[id] = lint.Severity(severity)
	}

	return lint.NewEngine(active, lint.WithSeverityOverrides(overrides))
}
