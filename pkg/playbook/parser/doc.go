// Package parser converts playbook YAML text into the lossless document
// model defined in pkg/playbook/ast.
//
// Off-the-shelf YAML loaders normalize away exactly the detail style
// checking needs: scalar quoting style, colon spacing, blank-line
// placement, and comment positions. This parser is therefore a hand-rolled
// two-phase pipeline over the block-structured subset of YAML that Ansible
// playbooks use:
//
//  1. Scanner: splits source into classified lines (blank, comment,
//     document marker, content) with indentation counts, rejecting tabs in
//     indentation.
//
//  2. Block parser: a recursive descent over the line stream, driven by
//     indentation, producing mappings, sequences, and scalars with their
//     exact lexical form and source spans.
//
// Syntax faults (unclosed quotes, tabs, bad dedents, unterminated flow
// collections) surface as *errors.ParseError with the line and column of
// the break.
//
// # Limitations
//
// Flow collections ("[a, b]", "{k: v}") are lexed as raw plain scalars and
// must close on the line they open on. Anchors, aliases, tags, and
// multi-document streams are out of scope; playbooks in the wild do not
// exercise them in ways the style rules inspect.
//
// # Round-tripping
//
// Encode reconstructs source text from a document. For any document this
// parser accepts, parse -> Encode -> parse yields a structurally equal
// document, which is the property that guarantees no style signal is lost.
package parser
