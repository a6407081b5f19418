package lint

import (
	"fmt"
	"sort"

	"playlint-hq/playlint/pkg/playbook/ast"
	pberrors "playlint-hq/playlint/pkg/playbook/errors"
)

// Engine evaluates a set of rules against parsed documents. Rules run
// independently: no rule observes another's output, and a panicking rule
// is isolated into a single internal-rule-error violation instead of
// aborting the run.
type Engine struct {
	rules      []Rule
	severities map[string]Severity
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeverityOverrides replaces the default severity of the named rules.
func WithSeverityOverrides(overrides map[string]Severity) Option {
	return func(e *Engine) {
		for id, sev := range overrides {
			e.severities[id] = sev
		}
	}
}

// NewEngine creates an engine over the given rule set.
func NewEngine(rules []Rule, opts ...Option) *Engine {
	e := &Engine{
		rules:      rules,
		severities: make(map[string]Severity),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns the registered rules.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Evaluate runs every rule against doc and returns the merged violations
// sorted by (line, column, rule id). Evaluating the same document twice
// yields identical output.
func (e *Engine) Evaluate(doc *ast.Document) []Violation {
	var out []Violation
	for _, rule := range e.rules {
		out = append(out, e.runRule(rule, doc)...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Line != out[j].Line {
			return out[i].Line < out[j].Line
		}
		if out[i].Column != out[j].Column {
			return out[i].Column < out[j].Column
		}
		return out[i].RuleID < out[j].RuleID
	})
	return out
}

// runRule executes a single rule with a fault boundary. A panic inside the
// rule becomes one violation tagged with the rule id, and evaluation
// continues for the remaining rules.
func (e *Engine) runRule(rule Rule, doc *ast.Document) (violations []Violation) {
	defer func() {
		if r := recover(); r != nil {
			violations = []Violation{{
				File:     doc.Path,
				Line:     1,
				Column:   1,
				RuleID:   RuleIDInternalError,
				Severity: SeverityError,
				Message:  fmt.Sprintf("rule %s failed: %v", rule.ID(), r),
			}}
		}
	}()

	severity := rule.DefaultSeverity()
	if sev, ok := e.severities[rule.ID()]; ok {
		severity = sev
	}

	for _, v := range rule.Check(doc) {
		v.File = doc.Path
		v.RuleID = rule.ID()
		v.Severity = severity
		violations = append(violations, v)
	}
	return violations
}

// ParseFailure converts a parse error into the single fatal violation
// reported for a file that could not be read or parsed.
func ParseFailure(path string, err error) Violation {
	v := Violation{
		File:     path,
		Line:     1,
		Column:   1,
		RuleID:   RuleIDParseError,
		Severity: SeverityError,
		Message:  err.Error(),
	}
	if pe, ok := pberrors.AsParseError(err); ok {
		if pe.Location.Line > 0 {
			v.Line = pe.Location.Line
		}
		if pe.Location.Column > 0 {
			v.Column = pe.Location.Column
		}
		v.Message = pe.Message
	}
	return v
}
