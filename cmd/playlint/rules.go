package main

import (
	"os"

	"github.com/spf13/cobra"

	"playlint-hq/playlint/pkg/lint/rules"
	"playlint-hq/playlint/pkg/report"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the registered style rules",
	Long:  `List every registered style rule with its id, default severity, and description.`,
	Run: func(cmd *cobra.Command, args []string) {
		report.WriteRuleTable(os.Stdout, rules.Default())
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
