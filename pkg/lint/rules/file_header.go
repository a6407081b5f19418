package rules

import (
	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/playbook/ast"
)

// FileHeader checks that a playbook opens with a comment block describing
// the file, one blank line, the "---" document start, and one more blank
// line before content. It reports at most one violation: the first point
// where the header deviates.
type FileHeader struct{}

func (FileHeader) ID() string { return "file-header" }

func (FileHeader) Description() string {
	return "file starts with a comment block, a blank line, '---', and a blank line"
}

func (FileHeader) DefaultSeverity() lint.Severity { return lint.SeverityError }

func (FileHeader) Check(doc *ast.Document) []lint.Violation {
	if len(doc.HeaderComments) == 0 {
		return []lint.Violation{at(ast.Position{Line: 1, Column: 1},
			"file must start with a comment block describing the playbook")}
	}

	if first := doc.HeaderComments[0]; first.SourceSpan.Start.Line != 1 {
		return []lint.Violation{at(ast.Position{Line: 1, Column: 1},
			"header comment block must start on the first line")}
	}

	if !doc.HasDocStart {
		last := doc.HeaderComments[len(doc.HeaderComments)-1]
		return []lint.Violation{at(ast.Position{Line: last.SourceSpan.End.Line, Column: 1},
			"missing '---' document start after the header comment block")}
	}

	if doc.BlankAfterHeader != 1 {
		return []lint.Violation{at(doc.DocStart,
			"expected exactly one blank line between the header comment block and '---'")}
	}

	if doc.Root != nil && doc.BlankAfterDocStart != 1 {
		return []lint.Violation{at(doc.DocStart,
			"expected exactly one blank line after '---'")}
	}

	return nil
}
