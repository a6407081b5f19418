package lint

import "fmt"

// Severity indicates the severity level of a violation.
type Severity string

// Severity levels.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Violation is a single style finding. It always references a valid
// position within the originating document and is never mutated after
// creation.
type Violation struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// String formats the violation in the conventional file:line:col form.
func (v Violation) String() string {
	return fmt.Sprintf("%s:%d:%d: [%s] %s (%s)", v.File, v.Line, v.Column, v.Severity, v.Message, v.RuleID)
}

// Rule identifiers reserved by the engine rather than implemented as
// pluggable rules.
const (
	// RuleIDParseError marks the single fatal violation emitted when a
	// file cannot be parsed.
	RuleIDParseError = "parse-error"

	// RuleIDInternalError marks a violation produced when a rule panics.
	// The fault is isolated; remaining rules still run.
	RuleIDInternalError = "internal-rule-error"
)
