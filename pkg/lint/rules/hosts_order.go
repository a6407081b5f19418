package rules

import (
	"fmt"

	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/playbook/ast"
)

// HostsOrder checks section ordering inside a host block: name and hosts
// declaration first, then play options in alphabetical order, then
// pre_tasks, roles, tasks, post_tasks, and handlers.
type HostsOrder struct{}

func (HostsOrder) ID() string { return "hosts-order" }

func (HostsOrder) Description() string {
	return "host blocks order: declaration, alphabetical options, then task sections"
}

func (HostsOrder) DefaultSeverity() lint.Severity { return lint.SeverityError }

// sectionRank orders the fixed play sections after the options.
var sectionRank = map[string]int{
	"pre_tasks":  0,
	"roles":      1,
	"tasks":      2,
	"post_tasks": 3,
	"handlers":   4,
}

func (HostsOrder) Check(doc *ast.Document) []lint.Violation {
	var out []lint.Violation

	for _, play := range ast.CollectPlays(doc) {
		out = append(out, checkPlayOrder(play)...)
	}
	return out
}

func checkPlayOrder(play *ast.Play) []lint.Violation {
	var out []lint.Violation

	// Rank classes: 0 name, 1 hosts, 2 options, 3 sections.
	prevClass := -1
	prevOption := ""
	prevSection := -1

	for _, entry := range play.Mapping.Entries {
		key := entry.Key.Value
		pos := entry.Key.SourceSpan.Start

		var class int
		switch {
		case key == "name":
			class = 0
		case key == "hosts":
			class = 1
		case ast.IsPlaySectionKey(key):
			class = 3
		default:
			class = 2
		}

		if class < prevClass {
			out = append(out, at(pos, fmt.Sprintf("%q is out of order within the host block", key)))
			continue
		}

		switch class {
		case 2:
			if prevClass == 2 && prevOption > key {
				out = append(out, at(pos,
					fmt.Sprintf("play option %q should be listed alphabetically (after %q)", key, prevOption)))
			}
			prevOption = key
		case 3:
			rank := sectionRank[key]
			if prevClass == 3 && rank < prevSection {
				out = append(out, at(pos, fmt.Sprintf("section %q is out of order within the host block", key)))
			}
			prevSection = rank
		}
		prevClass = class
	}

	return out
}
