package rules

import (
	"fmt"

	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/playbook/ast"
)

// FQCN checks that module invocations use the dotted fully-qualified
// collection name, e.g. ansible.builtin.service instead of service.
type FQCN struct{}

func (FQCN) ID() string { return "fqcn" }

func (FQCN) Description() string {
	return "modules are invoked by fully-qualified collection name"
}

func (FQCN) DefaultSeverity() lint.Severity { return lint.SeverityError }

func (FQCN) Check(doc *ast.Document) []lint.Violation {
	var out []lint.Violation
	for _, task := range ast.CollectTasks(doc) {
		if task.Module == nil {
			continue
		}
		name := task.ModuleName()
		if ast.IsFQCN(name) {
			continue
		}
		out = append(out, at(task.Module.Key.SourceSpan.Start,
			fmt.Sprintf("module %q should use its fully-qualified collection name (e.g. ansible.builtin.%s)", name, name)))
	}
	return out
}
