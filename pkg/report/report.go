// Package report formats lint run results for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/runner"
)

// WriteText writes the conventional file:line:col diagnostic lines plus a
// summary. With strict set, the summary notes that warnings count as
// failures.
func WriteText(w io.Writer, report *runner.Report, strict bool) {
	errors, warnings := 0, 0

	for _, file := range report.Files {
		for _, v := range file.Violations {
			fmt.Fprintf(w, "%s:%d:%d: [%s] %s (%s)\n",
				v.File, v.Line, v.Column, v.Severity, v.Message, v.RuleID)
			if v.Severity == lint.SeverityError {
				errors++
			} else {
				warnings++
			}
		}
	}

	fmt.Fprintf(w, "\n%d file(s) checked: %d error(s), %d warning(s)\n",
		len(report.Files), errors, warnings)
	if strict && warnings > 0 {
		fmt.Fprintln(w, "strict mode: warnings are treated as errors")
	}
}

// WriteJSON writes the full report as indented JSON.
func WriteJSON(w io.Writer, report *runner.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// WriteSummaryTable writes a per-file summary table.
func WriteSummaryTable(w io.Writer, report *runner.Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Errors", "Warnings", "Parse"})
	table.SetBorder(false)

	for _, file := range report.Files {
		status := "ok"
		if file.ParseFailed {
			status = "failed"
		}
		table.Append([]string{
			file.Path,
			fmt.Sprintf("%d", file.ErrorCount()),
			fmt.Sprintf("%d", file.WarningCount()),
			status,
		})
	}
	table.Render()
}

// WriteRuleTable writes the registered rules with their ids, default
// severities, and descriptions.
func WriteRuleTable(w io.Writer, rules []lint.Rule) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rule", "Severity", "Description"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for _, rule := range rules {
		table.Append([]string{rule.ID(), string(rule.DefaultSeverity()), rule.Description()})
	}
	table.Render()
}
