package rules

import (
	"fmt"

	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/playbook/ast"
)

// Spacing checks blank lines between adjacent host/task blocks and the
// two-space indentation of nested maps and sequences.
type Spacing struct{}

func (Spacing) ID() string { return "spacing" }

func (Spacing) Description() string {
	return "blank line between blocks; nested elements indented two spaces"
}

func (Spacing) DefaultSeverity() lint.Severity { return lint.SeverityError }

func (Spacing) Check(doc *ast.Document) []lint.Violation {
	var out []lint.Violation

	ast.Walk(doc.Root, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.Sequence:
			out = append(out, checkBlockSeparation(v)...)
			for _, item := range v.Items {
				out = append(out, checkItemIndent(item)...)
			}
		case *ast.Mapping:
			for _, entry := range v.Entries {
				out = append(out, checkEntryIndent(entry)...)
			}
		}
		return true
	})

	return out
}

// checkBlockSeparation requires a blank line between adjacent block items
// (plays and tasks). Simple value lists are exempt, as are boundaries
// between two includes, which the include-format rule governs.
func checkBlockSeparation(seq *ast.Sequence) []lint.Violation {
	var out []lint.Violation

	prevBlock := false
	prevInclude := false
	for _, item := range seq.Items {
		isBlock := isBlockItem(item)
		include, _ := isIncludeItem(item)

		if isBlock && prevBlock && item.BlankLinesBefore == 0 {
			if !(include && prevInclude) {
				out = append(out, at(item.Dash, "expected blank line between blocks"))
			}
		}

		prevBlock = isBlock
		prevInclude = include
	}
	return out
}

// isBlockItem reports whether a sequence item is a play or task block
// rather than a plain list value.
func isBlockItem(item *ast.SequenceItem) bool {
	m, ok := item.Node.(*ast.Mapping)
	if !ok {
		return false
	}
	if _, ok := ast.ClassifyPlay(m); ok {
		return true
	}
	_, ok = ast.ClassifyTask(m)
	return ok
}

// checkEntryIndent verifies nested blocks sit two spaces deeper than their
// key.
func checkEntryIndent(entry *ast.MappingEntry) []lint.Violation {
	if entry.Value == nil {
		return nil
	}

	keyCol := entry.Key.SourceSpan.Start.Column
	switch v := entry.Value.(type) {
	case *ast.Mapping:
		childCol := v.SourceSpan.Start.Column
		if v.SourceSpan.Start.Line > entry.Key.SourceSpan.Start.Line && childCol-keyCol != 2 {
			return []lint.Violation{at(v.SourceSpan.Start,
				fmt.Sprintf("nested map under %q should be indented 2 spaces, got %d", entry.Key.Value, childCol-keyCol))}
		}
	case *ast.Sequence:
		if len(v.Items) == 0 {
			return nil
		}
		dashCol := v.Items[0].Dash.Column
		if dashCol-keyCol != 2 {
			return []lint.Violation{at(v.Items[0].Dash,
				fmt.Sprintf("sequence under %q should be indented 2 spaces, got %d", entry.Key.Value, dashCol-keyCol))}
		}
	}
	return nil
}

// checkItemIndent verifies the gap after a sequence dash: one space before
// an inline value, two-space indentation for a block on the next line.
func checkItemIndent(item *ast.SequenceItem) []lint.Violation {
	if item.Node == nil {
		return nil
	}

	start := item.Node.Span().Start
	if start.Line == item.Dash.Line {
		if gap := start.Column - item.Dash.Column - 1; gap != 1 {
			return []lint.Violation{at(start,
				fmt.Sprintf("expected one space after '-', got %d", gap))}
		}
		return nil
	}

	if indent := start.Column - item.Dash.Column - 1; indent != 1 {
		return []lint.Violation{at(start,
			"block under '-' should be indented 2 spaces from the dash column")}
	}
	return nil
}
