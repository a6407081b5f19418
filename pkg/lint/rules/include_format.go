package rules

import (
	"strings"

	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/playbook/ast"
)

// IncludeFormat checks include and import statements: the included
// filename is quoted, single-line includes are grouped without blank
// lines, and a multi-line include block is separated from a preceding
// include by a blank line. Boundaries with non-include neighbors are
// the spacing rule's.
type IncludeFormat struct{}

func (IncludeFormat) ID() string { return "include-format" }

func (IncludeFormat) Description() string {
	return "include filenames quoted; blank lines only around multi-line includes"
}

func (IncludeFormat) DefaultSeverity() lint.Severity { return lint.SeverityError }

func isIncludeModule(name string) bool {
	short := shortModuleName(name)
	return strings.HasPrefix(short, "include_") || strings.HasPrefix(short, "import_")
}

// isIncludeItem reports whether a sequence item is an include task, and
// whether it spans a single line.
func isIncludeItem(item *ast.SequenceItem) (include, singleLine bool) {
	m, ok := item.Node.(*ast.Mapping)
	if !ok {
		return false, false
	}
	task, ok := ast.ClassifyTask(m)
	if !ok || task.Module == nil || !isIncludeModule(task.ModuleName()) {
		return false, false
	}
	span := m.Span()
	return true, span.Start.Line == span.End.Line
}

func (IncludeFormat) Check(doc *ast.Document) []lint.Violation {
	var out []lint.Violation

	ast.Walk(doc.Root, func(n ast.Node) bool {
		seq, ok := n.(*ast.Sequence)
		if !ok {
			return true
		}

		// Blank-line policy applies between two includes; a boundary with
		// a non-include neighbor belongs to the spacing rule.
		prevInclude := false
		prevSingle := false
		for _, item := range seq.Items {
			include, single := isIncludeItem(item)
			if !include {
				prevInclude = false
				continue
			}

			task, _ := ast.ClassifyTask(item.Node.(*ast.Mapping))
			if scalar, ok := task.Module.Value.(*ast.Scalar); ok && !scalar.IsQuoted() {
				out = append(out, at(scalar.SourceSpan.Start,
					"include filename should be quoted"))
			}

			if single && prevInclude && prevSingle && item.BlankLinesBefore > 0 {
				out = append(out, at(item.Dash,
					"no blank line between single-line includes"))
			}
			if !single && prevInclude && item.BlankLinesBefore == 0 {
				out = append(out, at(item.Dash,
					"blank line required before a multi-line include block"))
			}

			prevInclude = true
			prevSingle = single
		}
		return true
	})

	return out
}
