// Package ast defines the lossless document model for parsed Ansible
// playbooks.
//
// Unlike a generic YAML object model, every node here preserves the lexical
// detail that style checking depends on and that standard loaders discard:
// the exact quoting style of each scalar, the spacing around mapping colons,
// blank-line positions between siblings, block scalar indicators, and
// comment placement. All nodes carry their source span for precise
// diagnostics.
//
// # Core Types
//
// Document: root of a parsed file, including header comments, the "---"
// marker, and the trailing-newline count
//
// Node: structural variant over Scalar, Mapping, Sequence, Comment, and
// BlankLine
//
// Scalar: leaf value with its ScalarStyle (plain, single-quoted,
// double-quoted, literal, folded) and raw source text
//
// MappingEntry: "key: value" pair with colon-spacing metadata and source
// order index
//
// Task, Play: semantic views derived from generic mappings by
// classification over key sets (ClassifyTask, ClassifyPlay)
//
// A Document is immutable after parse. Lint rules only read it, so a
// single Document may be evaluated by any number of rules without
// synchronization.
package ast
