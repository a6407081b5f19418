package parser

import (
	"strings"

	"playlint-hq/playlint/pkg/playbook/ast"
)

// Encode reconstructs source text from a parsed document. Because the
// model is lossless, encoding an unmodified document and re-parsing it
// yields a structurally equal document.
func Encode(doc *ast.Document) []byte {
	e := &encoder{}

	for _, c := range doc.HeaderComments {
		e.commentLine(c)
	}
	e.blanks(doc.BlankAfterHeader)
	if doc.HasDocStart {
		e.line("---")
		e.blanks(doc.BlankAfterDocStart)
	}

	if doc.Root != nil {
		e.node(doc.Root)
	}

	for _, raw := range doc.TrailingLines {
		e.line(raw)
	}

	out := strings.Join(e.lines, "\n")
	return []byte(out + strings.Repeat("\n", doc.TrailingNewlines))
}

type encoder struct {
	lines []string
}

func (e *encoder) line(s string) { e.lines = append(e.lines, s) }

func (e *encoder) blanks(n int) {
	for i := 0; i < n; i++ {
		e.line("")
	}
}

func (e *encoder) commentLine(c *ast.Comment) {
	e.line(pad(c.SourceSpan.Start.Column-1) + c.Text)
}

func (e *encoder) node(n ast.Node) {
	switch v := n.(type) {
	case *ast.Mapping:
		e.mapping(v, 0)
	case *ast.Sequence:
		e.sequence(v)
	case *ast.Scalar:
		e.blanks(v.BlankLinesBefore)
		for _, c := range v.LeadingComments {
			e.commentLine(c)
		}
		e.scalarLines(pad(v.SourceSpan.Start.Column-1), v, v.TrailingComment)
	}
}

// mapping emits entries starting at skip (used when the first entry was
// already emitted on its sequence item's dash line).
func (e *encoder) mapping(m *ast.Mapping, skip int) {
	for _, entry := range m.Entries[skip:] {
		e.blanks(entry.BlankLinesBefore)
		for _, c := range entry.LeadingComments {
			e.commentLine(c)
		}
		e.entry(pad(entry.Key.SourceSpan.Start.Column-1), entry)
	}
}

// entry emits one "key: value" pair, with prefix holding everything on the
// line before the key.
func (e *encoder) entry(prefix string, entry *ast.MappingEntry) {
	head := prefix + entry.Key.Raw + pad(entry.SpacesBeforeColon) + ":"

	scalar, isScalar := entry.Value.(*ast.Scalar)
	switch {
	case entry.Value == nil:
		e.line(e.withTrailing(head, entry.TrailingComment))

	case isScalar && scalar.SourceSpan.Start.Line == entry.Key.SourceSpan.Start.Line:
		head += pad(entry.SpacesAfterColon)
		e.scalarLines(head, scalar, entry.TrailingComment)

	default:
		e.line(e.withTrailing(head, entry.TrailingComment))
		e.node(entry.Value)
	}
}

// scalarLines emits a scalar whose first line begins with head, followed by
// its raw block or continuation lines.
func (e *encoder) scalarLines(head string, scalar *ast.Scalar, trailing *ast.Comment) {
	e.line(e.withTrailing(head+scalar.Raw, trailing))
	for _, raw := range scalar.BlockLines {
		e.line(raw)
	}
}

func (e *encoder) sequence(seq *ast.Sequence) {
	for _, item := range seq.Items {
		e.blanks(item.BlankLinesBefore)
		for _, c := range item.LeadingComments {
			e.commentLine(c)
		}
		e.item(item)
	}
}

func (e *encoder) item(item *ast.SequenceItem) {
	head := pad(item.Dash.Column-1) + "-"

	if item.Node == nil {
		e.line(e.withTrailing(head, item.TrailingComment))
		return
	}

	start := item.Node.Span().Start
	if start.Line != item.Dash.Line {
		// Value is a nested block on the following lines.
		e.line(e.withTrailing(head, item.TrailingComment))
		e.node(item.Node)
		return
	}

	head += pad(start.Column - item.Dash.Column - 1)
	switch v := item.Node.(type) {
	case *ast.Scalar:
		e.scalarLines(head, v, item.TrailingComment)
	case *ast.Mapping:
		e.entry(head, v.Entries[0])
		e.mapping(v, 1)
	}
}

// withTrailing appends a trailing comment, padded to its recorded column.
func (e *encoder) withTrailing(line string, c *ast.Comment) string {
	if c == nil {
		return line
	}
	gap := c.SourceSpan.Start.Column - 1 - len(line)
	if gap < 1 {
		gap = 1
	}
	return line + pad(gap) + c.Text
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
