package rules

import (
	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/playbook/ast"
)

// ColonSpacing checks that mapping separators have no space before the
// colon and exactly one space after it.
type ColonSpacing struct{}

func (ColonSpacing) ID() string { return "colon-spacing" }

func (ColonSpacing) Description() string {
	return "no space before ':', exactly one space after"
}

func (ColonSpacing) DefaultSeverity() lint.Severity { return lint.SeverityError }

func (ColonSpacing) Check(doc *ast.Document) []lint.Violation {
	var out []lint.Violation

	ast.Walk(doc.Root, func(n ast.Node) bool {
		m, ok := n.(*ast.Mapping)
		if !ok {
			return true
		}
		for _, entry := range m.Entries {
			keyEnd := entry.Key.SourceSpan.End
			if entry.SpacesBeforeColon != 0 {
				out = append(out, at(keyEnd, "no space allowed before ':'"))
			}
			// SpacesAfterColon is -1 when the value starts on a later
			// line; only inline values carry the constraint.
			if entry.SpacesAfterColon >= 0 && entry.SpacesAfterColon != 1 {
				colon := ast.Position{
					Line:   keyEnd.Line,
					Column: keyEnd.Column + entry.SpacesBeforeColon,
				}
				out = append(out, at(colon, "exactly one space required after ':'"))
			}
		}
		return true
	})

	return out
}
