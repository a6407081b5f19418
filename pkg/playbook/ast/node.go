package ast

// ScalarStyle identifies the lexical form a scalar was written in. The
// parser never normalizes quoting; style rules depend on seeing the exact
// form used in the source.
type ScalarStyle int

const (
	StylePlain        ScalarStyle = iota // no quotes
	StyleSingleQuoted                    // 'value'
	StyleDoubleQuoted                    // "value"
	StyleLiteral                         // | block scalar
	StyleFolded                          // > block scalar
	StyleFlow                            // [..] or {..} flow collection, kept as raw text
)

// String returns the style name as used in diagnostics.
func (s ScalarStyle) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleSingleQuoted:
		return "single-quoted"
	case StyleDoubleQuoted:
		return "double-quoted"
	case StyleLiteral:
		return "literal"
	case StyleFolded:
		return "folded"
	case StyleFlow:
		return "flow"
	default:
		return "unknown"
	}
}

// Node is a structural element of a parsed playbook. Every node carries the
// source span it was read from; sibling spans never overlap and increase
// monotonically in document order.
type Node interface {
	Span() Span
}

// Scalar is a leaf value. Value holds the decoded text (quotes stripped,
// block scalar lines joined per style); Raw holds the exact source text
// including quote characters and block indicator.
type Scalar struct {
	Value string
	Raw   string
	Style ScalarStyle

	// BlockLines holds the original body lines of a literal or folded
	// scalar, without indentation stripping applied to Raw.
	BlockLines []string

	// ChompIndicator is "-", "+" or "" for block scalars.
	ChompIndicator string

	// BlankLinesBefore, LeadingComments, and TrailingComment hold the
	// trivia around a scalar that stands alone as a node (a document
	// root or a block value on the line after its key). For scalars
	// inline with their key or dash, the owning entry or item carries
	// the trivia instead.
	BlankLinesBefore int
	LeadingComments  []*Comment
	TrailingComment  *Comment

	SourceSpan Span
}

func (s *Scalar) Span() Span { return s.SourceSpan }

// IsQuoted reports whether the scalar was written with any quoting style.
func (s *Scalar) IsQuoted() bool {
	return s.Style == StyleSingleQuoted || s.Style == StyleDoubleQuoted
}

// Comment is a full-line comment ("# ...") outside any scalar.
type Comment struct {
	// Text is the comment content including the leading '#'.
	Text       string
	SourceSpan Span
}

func (c *Comment) Span() Span { return c.SourceSpan }

// BlankLine marks an empty line between sibling entries.
type BlankLine struct {
	SourceSpan Span
}

func (b *BlankLine) Span() Span { return b.SourceSpan }

// MappingEntry is a single "key: value" pair with the colon-spacing
// metadata standard YAML loaders discard.
type MappingEntry struct {
	Key   *Scalar
	Value Node // nil when the key has an empty value

	// SpacesBeforeColon and SpacesAfterColon count the spaces around the
	// ':' separator. SpacesAfterColon is -1 when the value starts on the
	// next line (nested block).
	SpacesBeforeColon int
	SpacesAfterColon  int

	// Index is the source-order position of the entry within its mapping.
	Index int

	// BlankLinesBefore counts the blank lines immediately preceding the
	// entry's first line.
	BlankLinesBefore int

	LeadingComments []*Comment
	TrailingComment *Comment

	SourceSpan Span
}

// Mapping is an ordered block mapping.
type Mapping struct {
	Entries    []*MappingEntry
	SourceSpan Span
}

func (m *Mapping) Span() Span { return m.SourceSpan }

// Entry returns the entry for key, or nil when absent.
func (m *Mapping) Entry(key string) *MappingEntry {
	for _, e := range m.Entries {
		if e.Key.Value == key {
			return e
		}
	}
	return nil
}

// Keys returns entry keys in source order.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		keys[i] = e.Key.Value
	}
	return keys
}

// SequenceItem is one "- item" element of a block sequence.
type SequenceItem struct {
	Node Node

	// Dash is the position of the '-' marker.
	Dash Position

	// BlankLinesBefore counts the blank lines immediately preceding the
	// item's first line.
	BlankLinesBefore int

	LeadingComments []*Comment
	TrailingComment *Comment // comment after an inline scalar item
}

// Sequence is an ordered block sequence.
type Sequence struct {
	Items      []*SequenceItem
	SourceSpan Span
}

func (s *Sequence) Span() Span { return s.SourceSpan }

// Document is the root of a parsed playbook file. It is immutable after
// parse; rules only read it.
type Document struct {
	// Path is the source file path, empty for in-memory input.
	Path string

	// HeaderComments are the comment lines before the "---" marker.
	HeaderComments []*Comment

	// BlankAfterHeader counts blank lines between the header comment
	// block and the "---" marker.
	BlankAfterHeader int

	// HasDocStart reports whether a "---" marker is present.
	HasDocStart bool
	DocStart    Position

	// BlankAfterDocStart counts blank lines between "---" and the first
	// content node.
	BlankAfterDocStart int

	// Root is the top-level node, nil for an empty document.
	Root Node

	// TrailingNewlines counts '\n' characters at the very end of the
	// file, after the last content line.
	TrailingNewlines int

	// TrailingLines holds raw comment and blank lines that follow the
	// last content node. They carry no structure but are kept so a
	// re-encoded document matches its source.
	TrailingLines []string

	// Lines holds the raw source split on newlines, for diagnostics.
	Lines []string
}

// Location resolves a position within this document to a full Location.
func (d *Document) Location(pos Position) Location {
	return Location{File: d.Path, Line: pos.Line, Column: pos.Column}
}
