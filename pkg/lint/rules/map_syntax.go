package rules

import (
	"fmt"

	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/playbook/ast"
)

// MapSyntax checks that module arguments are expressed as a mapping, not
// as an inline key=value string.
type MapSyntax struct{}

func (MapSyntax) ID() string { return "map-syntax" }

func (MapSyntax) Description() string {
	return "module arguments use map syntax, not inline key=value strings"
}

func (MapSyntax) DefaultSeverity() lint.Severity { return lint.SeverityError }

// freeFormModules accept an arbitrary command string; key=value fragments
// inside one are part of the command, not module arguments.
var freeFormModules = map[string]bool{
	"command":     true,
	"shell":       true,
	"raw":         true,
	"script":      true,
	"win_command": true,
	"win_shell":   true,
}

func (MapSyntax) Check(doc *ast.Document) []lint.Violation {
	var out []lint.Violation
	for _, task := range ast.CollectTasks(doc) {
		if task.Module == nil {
			continue
		}
		if freeFormModules[shortModuleName(task.ModuleName())] {
			continue
		}
		scalar, ok := task.Module.Value.(*ast.Scalar)
		if !ok || scalar.Style != ast.StylePlain {
			continue
		}
		if inlineArgPattern.MatchString(scalar.Value) {
			out = append(out, at(scalar.SourceSpan.Start,
				fmt.Sprintf("arguments of module %q should use map syntax", task.ModuleName())))
		}
	}
	return out
}

// shortModuleName strips the collection prefix from an FQCN.
func shortModuleName(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}
	return name
}
