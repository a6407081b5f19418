package rules

import (
	"fmt"
	"strings"

	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/playbook/ast"
)

// BooleanLiteral checks that boolean-typed keys use the literal true or
// false, not the YAML 1.1 alternates (yes/no/on/off), numerals, or
// capitalized spellings.
type BooleanLiteral struct{}

func (BooleanLiteral) ID() string { return "boolean-literal" }

func (BooleanLiteral) Description() string {
	return "boolean values are written as literal true/false"
}

func (BooleanLiteral) DefaultSeverity() lint.Severity { return lint.SeverityError }

func (BooleanLiteral) Check(doc *ast.Document) []lint.Violation {
	var out []lint.Violation

	ast.Walk(doc.Root, func(n ast.Node) bool {
		m, ok := n.(*ast.Mapping)
		if !ok {
			return true
		}
		for _, entry := range m.Entries {
			if !booleanTypedKeys[entry.Key.Value] {
				continue
			}
			scalar, ok := entry.Value.(*ast.Scalar)
			if !ok {
				continue
			}
			if v, bad := nonLiteralBool(scalar); bad {
				out = append(out, at(scalar.SourceSpan.Start,
					fmt.Sprintf("boolean value %s should be %s", scalar.Raw, v)))
			}
		}
		return true
	})

	return out
}

// nonLiteralBool reports whether the scalar is a boolean written in a
// non-conforming form, returning the literal it should be.
func nonLiteralBool(s *ast.Scalar) (string, bool) {
	value := s.Value

	// Quoted booleans are strings to YAML; the key is boolean-typed, so
	// flag them too.
	if s.IsQuoted() && (boolWords[value] || value == "1" || value == "0") {
		return literalFor(value), true
	}
	if s.Style != ast.StylePlain {
		return "", false
	}
	if value == "true" || value == "false" {
		return "", false
	}
	if boolWords[value] || value == "1" || value == "0" {
		return literalFor(value), true
	}
	return "", false
}

func literalFor(word string) string {
	switch strings.ToLower(word) {
	case "yes", "y", "on", "true", "1":
		return "true"
	default:
		return "false"
	}
}
