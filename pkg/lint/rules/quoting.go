package rules

import (
	"strings"

	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/playbook/ast"
)

// Quoting checks scalar quoting style:
//
//   - string values are quoted, except task and play names
//   - booleans, numbers, and null stay unquoted
//   - raw Jinja condition expressions (when and friends) stay unquoted
//   - nested quoting puts double quotes inside single quotes, so a
//     double-quoted scalar never escapes inner double quotes
//
// Boolean-typed keys are owned by the boolean-literal rule and skipped
// here, so one scalar never draws both findings.
type Quoting struct{}

func (Quoting) ID() string { return "quoting" }

func (Quoting) Description() string {
	return "string values are quoted; booleans, numbers and names are not"
}

func (Quoting) DefaultSeverity() lint.Severity { return lint.SeverityError }

// quotingExemptKeys are keys whose values follow their own conventions:
// hosts patterns are bare words, register and loop_var name local
// variables. Task and play names are exempted by identity, not by key,
// so a module parameter that happens to be called "name" is still held
// to string quoting.
var quotingExemptKeys = map[string]bool{
	"hosts":     true,
	"register":  true,
	"loop_var":  true,
	"index_var": true,
}

func (Quoting) Check(doc *ast.Document) []lint.Violation {
	var out []lint.Violation

	names := nameEntries(doc)

	ast.Walk(doc.Root, func(n ast.Node) bool {
		m, ok := n.(*ast.Mapping)
		if !ok {
			return true
		}
		for _, entry := range m.Entries {
			key := entry.Key.Value
			scalar, ok := entry.Value.(*ast.Scalar)
			if !ok {
				continue
			}

			if booleanTypedKeys[key] || conditionKeys[key] || quotingExemptKeys[key] {
				continue
			}

			// Include filenames are governed by the include-format rule.
			if isIncludeModule(key) {
				continue
			}

			if names[entry] {
				if scalar.IsQuoted() {
					out = append(out, at(scalar.SourceSpan.Start, "name value should not be quoted"))
				}
				continue
			}

			out = append(out, checkScalarQuoting(scalar)...)
		}
		return true
	})

	return out
}

// nameEntries collects the name entries of plays and tasks, the scalars
// the quoting requirement does not apply to.
func nameEntries(doc *ast.Document) map[*ast.MappingEntry]bool {
	names := make(map[*ast.MappingEntry]bool)
	for _, play := range ast.CollectPlays(doc) {
		if play.Name != nil {
			names[play.Name] = true
		}
	}
	for _, task := range ast.CollectTasks(doc) {
		if task.Name != nil {
			names[task.Name] = true
		}
	}
	return names
}

func checkScalarQuoting(s *ast.Scalar) []lint.Violation {
	switch s.Style {
	case ast.StyleLiteral, ast.StyleFolded:
		return nil

	case ast.StyleFlow:
		// A flow collection is a list or map, not a string; quoting it
		// would change its type.
		return nil

	case ast.StyleDoubleQuoted:
		// Inner double quotes force escaping; the styleguide nests double
		// inside single instead.
		if strings.Contains(s.Raw[1:len(s.Raw)-1], `\"`) {
			return []lint.Violation{at(s.SourceSpan.Start,
				"use single quotes outside and double quotes inside nested quoting")}
		}
		return nil

	case ast.StyleSingleQuoted:
		return nil
	}

	// Plain scalar: only non-strings may stay unquoted.
	v := s.Value
	if isNull(v) || isNumber(v) || boolWords[v] {
		return nil
	}
	return []lint.Violation{at(s.SourceSpan.Start,
		"string value should be quoted")}
}
