// Package lint provides the rule engine that evaluates style rules against
// parsed playbook documents.
//
// The engine holds an open set of Rule implementations. Each rule is a
// pure predicate from document to violations; rules run independently and
// their merged output is sorted by (line, column, rule id) so repeated
// evaluation of an unmodified document is byte-for-byte deterministic.
//
// A rule that panics is contained by a fault boundary: the panic becomes a
// single internal-rule-error violation tagged with the rule id, and the
// remaining rules still run. A file that fails to parse yields exactly one
// parse-error violation via ParseFailure; no style rules run for that file.
package lint
