package parser

import (
	"strings"

	"playlint-hq/playlint/pkg/playbook/ast"
	pberrors "playlint-hq/playlint/pkg/playbook/errors"
)

// lineKind classifies a scanned source line.
type lineKind int

const (
	lineBlank    lineKind = iota // only whitespace
	lineComment                  // first non-space character is '#'
	lineDocStart                 // "---"
	lineDocEnd                   // "..."
	lineContent                  // anything else
)

// scanLine is a single source line after the scanning phase. Text holds the
// full raw line; indent is the count of leading spaces.
type scanLine struct {
	text   string
	indent int
	kind   lineKind
	num    int // 1-based line number
}

// scanResult is the output of the scanning phase.
type scanResult struct {
	lines            []scanLine
	trailingNewlines int
	rawLines         []string
}

// scan converts source text into classified lines. It validates the lexical
// constraints the block parser relies on: no tab characters in indentation.
func scan(source string, path string) (*scanResult, error) {
	trailing := 0
	for strings.HasSuffix(source, "\n") {
		source = strings.TrimSuffix(source, "\n")
		trailing++
	}

	var rawLines []string
	if source != "" {
		rawLines = strings.Split(source, "\n")
	}

	// Interior blank lines stay in the line list; blanks swallowed into the
	// trailing-newline count never reach the parser.
	lines := make([]scanLine, 0, len(rawLines))
	for i, raw := range rawLines {
		num := i + 1

		indent := 0
		for indent < len(raw) && raw[indent] == ' ' {
			indent++
		}
		if indent < len(raw) && raw[indent] == '\t' {
			return nil, pberrors.NewSyntaxError(
				"tab character in indentation; YAML requires spaces",
				ast.Location{File: path, Line: num, Column: indent + 1},
			)
		}

		lines = append(lines, scanLine{
			text:   raw,
			indent: indent,
			kind:   classifyLine(raw, indent),
			num:    num,
		})
	}

	return &scanResult{lines: lines, trailingNewlines: trailing, rawLines: rawLines}, nil
}

func classifyLine(raw string, indent int) lineKind {
	rest := raw[indent:]
	switch {
	case strings.TrimSpace(rest) == "":
		return lineBlank
	case rest[0] == '#':
		return lineComment
	case indent == 0 && strings.TrimRight(rest, " ") == "---":
		return lineDocStart
	case indent == 0 && strings.TrimRight(rest, " ") == "...":
		return lineDocEnd
	default:
		return lineContent
	}
}
