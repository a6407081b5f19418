package rules

import (
	"fmt"

	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/playbook/ast"
)

// VariableNaming checks that variables introduced by fact-setting
// constructs are snake_case: set_fact parameters, register targets, and
// vars entries on plays and tasks.
type VariableNaming struct{}

func (VariableNaming) ID() string { return "variable-naming" }

func (VariableNaming) Description() string {
	return "variables assigned via set_fact, register, and vars are snake_case"
}

func (VariableNaming) DefaultSeverity() lint.Severity { return lint.SeverityError }

func (VariableNaming) Check(doc *ast.Document) []lint.Violation {
	var out []lint.Violation

	flagKey := func(entry *ast.MappingEntry, construct string) {
		name := entry.Key.Value
		if !snakeCasePattern.MatchString(name) {
			out = append(out, at(entry.Key.SourceSpan.Start,
				fmt.Sprintf("variable %q assigned via %s should be snake_case", name, construct)))
		}
	}

	checkVarsEntry := func(entry *ast.MappingEntry) {
		if m, ok := entry.Value.(*ast.Mapping); ok {
			for _, v := range m.Entries {
				flagKey(v, "vars")
			}
		}
	}

	for _, play := range ast.CollectPlays(doc) {
		for _, entry := range play.Options {
			if entry.Key.Value == "vars" {
				checkVarsEntry(entry)
			}
		}
	}

	for _, task := range ast.CollectTasks(doc) {
		if task.Module != nil && shortModuleName(task.ModuleName()) == "set_fact" {
			if params, ok := task.Module.Value.(*ast.Mapping); ok {
				for _, entry := range params.Entries {
					flagKey(entry, "set_fact")
				}
			}
		}

		for _, entry := range task.Options {
			switch entry.Key.Value {
			case "register":
				if scalar, ok := entry.Value.(*ast.Scalar); ok {
					if !snakeCasePattern.MatchString(scalar.Value) {
						out = append(out, at(scalar.SourceSpan.Start,
							fmt.Sprintf("variable %q assigned via register should be snake_case", scalar.Value)))
					}
				}
			case "vars":
				checkVarsEntry(entry)
			}
		}
	}

	return out
}
