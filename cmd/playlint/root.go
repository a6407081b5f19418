package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"playlint-hq/playlint/pkg/cli"
	"playlint-hq/playlint/pkg/config"
	"playlint-hq/playlint/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "playlint",
	Short: "Playlint - style conformance linter for Ansible playbooks",
	Long: `Playlint is a style conformance linter for Ansible playbooks and task files.

It parses YAML with a structure-preserving parser and checks:
  - File headers, document markers, and trailing newlines
  - Quoting, boolean literals, and colon spacing
  - Fully qualified module names and map-style module arguments
  - Key ordering in plays and tasks
  - Blank-line separation and indentation
  - Deprecated options and variable naming

For more information, visit: https://github.com/playlint-hq/playlint`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintln(os.Stderr, exitErr.Err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", ".playlint.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration file and installs the default logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	logging.Setup(cfg.Logging)
	return cfg, nil
}
