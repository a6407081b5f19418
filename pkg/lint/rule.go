package lint

import (
	"playlint-hq/playlint/pkg/playbook/ast"
)

// Rule is a single style check over a parsed document. Implementations
// must be pure: they read the document, never mutate it, and hold no state
// between invocations, so one Rule value may check any number of documents
// concurrently.
//
// The engine holds an open set of rules rather than a closed enumeration;
// adding a rule never requires touching the engine.
type Rule interface {
	// ID returns the stable rule identifier used in violations and
	// configuration (kebab-case, e.g. "boolean-literal").
	ID() string

	// Description returns a one-line summary for rule listings.
	Description() string

	// DefaultSeverity is the severity applied unless configuration
	// overrides it.
	DefaultSeverity() Severity

	// Check inspects doc and returns zero or more violations.
	Check(doc *ast.Document) []Violation
}
