package rules

import (
	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/playbook/ast"
)

// TrailingNewline checks that the file ends with exactly one newline.
type TrailingNewline struct{}

func (TrailingNewline) ID() string { return "trailing-newline" }

func (TrailingNewline) Description() string {
	return "file ends with exactly one trailing newline"
}

func (TrailingNewline) DefaultSeverity() lint.Severity { return lint.SeverityError }

func (TrailingNewline) Check(doc *ast.Document) []lint.Violation {
	lastLine := len(doc.Lines)
	if lastLine == 0 {
		lastLine = 1
	}

	switch {
	case doc.TrailingNewlines == 0:
		return []lint.Violation{at(ast.Position{Line: lastLine, Column: 1},
			"file must end with a trailing newline")}
	case doc.TrailingNewlines > 1:
		return []lint.Violation{at(ast.Position{Line: lastLine + 1, Column: 1},
			"file must end with exactly one trailing newline")}
	}
	return nil
}
