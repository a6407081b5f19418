// Package rules implements the built-in style rules, one per styleguide
// section. Each rule is a pure predicate over a parsed document; the
// engine stamps file, rule id, and severity onto the returned violations.
package rules

import (
	"regexp"

	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/playbook/ast"
)

// Default returns all built-in rules in registration order. The engine
// sorts merged output, so registration order never affects results.
func Default() []lint.Rule {
	return []lint.Rule{
		FileHeader{},
		TrailingNewline{},
		FQCN{},
		Quoting{},
		BooleanLiteral{},
		ColonSpacing{},
		MapSyntax{},
		DeprecatedOptions{},
		HostsOrder{},
		TaskOrder{},
		IncludeFormat{},
		Spacing{},
		VariableNaming{},
	}
}

// at builds a violation carrying only position and message; the engine
// fills in the rest.
func at(pos ast.Position, message string) lint.Violation {
	return lint.Violation{Line: pos.Line, Column: pos.Column, Message: message}
}

var (
	numberPattern    = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
	snakeCasePattern = regexp.MustCompile(`^_?[a-z][a-z0-9_]*$`)
	inlineArgPattern = regexp.MustCompile(`^\S+=\S+(\s+\S+=\S+)*$`)
)

// boolWords are the spellings YAML 1.1 accepts as booleans. Only the
// lowercase literals true and false conform.
var boolWords = map[string]bool{
	"true": true, "false": true,
	"True": true, "False": true,
	"TRUE": true, "FALSE": true,
	"yes": true, "no": true,
	"Yes": true, "No": true,
	"YES": true, "NO": true,
	"on": true, "off": true,
	"On": true, "Off": true,
	"y": true, "n": true,
}

func isNumber(s string) bool { return numberPattern.MatchString(s) }

func isNull(s string) bool { return s == "" || s == "~" || s == "null" || s == "Null" || s == "NULL" }

// booleanTypedKeys are keys whose values are booleans by contract; the
// boolean-literal rule owns their values.
var booleanTypedKeys = map[string]bool{
	"any_errors_fatal": true,
	"append":           true,
	"backup":           true,
	"become":           true,
	"check_mode":       true,
	"create":           true,
	"daemon_reload":    true,
	"delegate_facts":   true,
	"diff":             true,
	"enabled":          true,
	"flat":             true,
	"force":            true,
	"gather_facts":     true,
	"ignore_errors":    true,
	"masked":           true,
	"no_log":           true,
	"purge":            true,
	"recurse":          true,
	"remote_src":       true,
	"run_once":         true,
	"system":           true,
	"update_cache":     true,
	"validate_certs":   true,
}

// conditionKeys hold raw Jinja expressions; quoting them changes meaning,
// so the quoting rule leaves them alone.
var conditionKeys = map[string]bool{
	"when":         true,
	"changed_when": true,
	"failed_when":  true,
	"until":        true,
	"that":         true,
}
