package ast

import "fmt"

// Position is a 1-based line/column position within a source file.
type Position struct {
	Line   int
	Column int
}

// Before reports whether p appears strictly before other in document order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Span is the half-open source range [Start, End) covered by a node.
type Span struct {
	Start Position
	End   Position
}

// Contains reports whether pos falls inside the span.
func (s Span) Contains(pos Position) bool {
	return !pos.Before(s.Start) && pos.Before(s.End)
}

// Location represents the source location of a node or diagnostic in a
// playbook file. It enables precise reporting with file, line, and column
// information.
type Location struct {
	File   string // Path to the playbook file
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
}

// String returns a human-readable representation of the location.
// Format: "file:line:column"
func (l Location) String() string {
	if l.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// IsValid returns true if the location has valid file and line information.
func (l Location) IsValid() bool {
	return l.File != "" && l.Line > 0
}
