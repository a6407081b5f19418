package rules

import (
	"fmt"

	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/playbook/ast"
)

// TaskOrder checks field ordering inside a task: name, tags, the module
// invocation with alphabetical parameters, loop constructs, then task
// options in alphabetical order.
type TaskOrder struct{}

func (TaskOrder) ID() string { return "task-order" }

func (TaskOrder) Description() string {
	return "task fields order: name, tags, module, loop, alphabetical options"
}

func (TaskOrder) DefaultSeverity() lint.Severity { return lint.SeverityError }

func (TaskOrder) Check(doc *ast.Document) []lint.Violation {
	var out []lint.Violation
	for _, task := range ast.CollectTasks(doc) {
		out = append(out, checkTaskOrder(task)...)
	}
	return out
}

func checkTaskOrder(task *ast.Task) []lint.Violation {
	var out []lint.Violation

	// Rank classes: 0 name, 1 tags, 2 module/block, 3 loop, 4 options.
	prevClass := -1
	prevOption := ""

	for _, entry := range task.Mapping.Entries {
		key := entry.Key.Value
		pos := entry.Key.SourceSpan.Start

		var class int
		switch {
		case key == "name":
			class = 0
		case key == "tags":
			class = 1
		case ast.IsLoopKey(key):
			class = 3
		case ast.IsTaskOptionKey(key) || isDeprecatedOption(key):
			class = 4
		default:
			// The module invocation or a block construct.
			class = 2
		}

		if class < prevClass {
			out = append(out, at(pos, fmt.Sprintf("%q is out of order within the task", key)))
			continue
		}

		if class == 4 {
			if prevClass == 4 && prevOption > key {
				out = append(out, at(pos,
					fmt.Sprintf("task option %q should be listed alphabetically (after %q)", key, prevOption)))
			}
			prevOption = key
		}
		prevClass = class
	}

	if task.Module != nil {
		if params, ok := task.Module.Value.(*ast.Mapping); ok {
			out = append(out, checkAlphabetical(params, "module parameter")...)
		}
	}

	return out
}

func isDeprecatedOption(key string) bool {
	_, ok := ast.DeprecatedReplacement(key)
	return ok && !ast.IsLoopKey(key)
}

func checkAlphabetical(m *ast.Mapping, what string) []lint.Violation {
	var out []lint.Violation
	prev := ""
	for _, entry := range m.Entries {
		key := entry.Key.Value
		if prev != "" && prev > key {
			out = append(out, at(entry.Key.SourceSpan.Start,
				fmt.Sprintf("%s %q should be listed alphabetically (after %q)", what, key, prev)))
		}
		prev = key
	}
	return out
}
