package rules

import (
	"fmt"

	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/playbook/ast"
)

// DeprecatedOptions checks for deprecated keys (sudo, with_items, ...) and
// names the replacement in each finding.
type DeprecatedOptions struct{}

func (DeprecatedOptions) ID() string { return "deprecated-options" }

func (DeprecatedOptions) Description() string {
	return "no deprecated keys such as sudo or with_items"
}

func (DeprecatedOptions) DefaultSeverity() lint.Severity { return lint.SeverityError }

func (DeprecatedOptions) Check(doc *ast.Document) []lint.Violation {
	var out []lint.Violation

	check := func(entry *ast.MappingEntry) {
		if replacement, ok := ast.DeprecatedReplacement(entry.Key.Value); ok {
			out = append(out, at(entry.Key.SourceSpan.Start,
				fmt.Sprintf("%q is deprecated, use %s", entry.Key.Value, replacement)))
		}
	}

	for _, play := range ast.CollectPlays(doc) {
		for _, entry := range play.Options {
			check(entry)
		}
	}
	for _, task := range ast.CollectTasks(doc) {
		for _, entry := range task.Loops {
			check(entry)
		}
		for _, entry := range task.Options {
			check(entry)
		}
	}

	return out
}
