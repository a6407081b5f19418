package parser

import (
	"strings"
	"testing"

	"playlint-hq/playlint/pkg/playbook/ast"
	pberrors "playlint-hq/playlint/pkg/playbook/errors"
)

const simplePlaybook = `# Deploy the web tier
---
- name: 'Deploy web servers'
  hosts: webservers
  become: true

  tasks:
    - name: 'Install nginx'
      ansible.builtin.package:
        name: nginx
        state: present
`

func TestParser_ParseBytes_Simple(t *testing.T) {
	doc, err := NewParser().ParseBytes([]byte(simplePlaybook), "site.yml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	if len(doc.HeaderComments) != 1 {
		t.Fatalf("len(HeaderComments) = %d, want 1", len(doc.HeaderComments))
	}
	if doc.HeaderComments[0].Text != "# Deploy the web tier" {
		t.Errorf("header comment = %q, want %q", doc.HeaderComments[0].Text, "# Deploy the web tier")
	}
	if !doc.HasDocStart {
		t.Error("HasDocStart = false, want true")
	}
	if doc.DocStart.Line != 2 {
		t.Errorf("DocStart.Line = %d, want 2", doc.DocStart.Line)
	}
	if doc.TrailingNewlines != 1 {
		t.Errorf("TrailingNewlines = %d, want 1", doc.TrailingNewlines)
	}

	plays := ast.CollectPlays(doc)
	if len(plays) != 1 {
		t.Fatalf("len(CollectPlays) = %d, want 1", len(plays))
	}
	hosts, ok := plays[0].Hosts.Value.(*ast.Scalar)
	if !ok || hosts.Value != "webservers" {
		t.Errorf("play hosts = %v, want webservers", plays[0].Hosts.Value)
	}
	name, ok := plays[0].Name.Value.(*ast.Scalar)
	if !ok || name.Style != ast.StyleSingleQuoted {
		t.Error("play name should be a single-quoted scalar")
	}

	tasks := ast.CollectTasks(doc)
	if len(tasks) != 1 {
		t.Fatalf("len(CollectTasks) = %d, want 1", len(tasks))
	}
	if got := tasks[0].ModuleName(); got != "ansible.builtin.package" {
		t.Errorf("ModuleName() = %q, want %q", got, "ansible.builtin.package")
	}
}

func TestParser_ParseBytes_BlankLinesAndComments(t *testing.T) {
	input := "---\n" +
		"- name: first\n" +
		"  hosts: all\n" +
		"\n" +
		"# second play\n" +
		"- name: second\n" +
		"  hosts: all\n"

	doc, err := NewParser().ParseBytes([]byte(input), "plays.yml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	seq, ok := doc.Root.(*ast.Sequence)
	if !ok {
		t.Fatalf("Root is %T, want *ast.Sequence", doc.Root)
	}
	if len(seq.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(seq.Items))
	}

	second := seq.Items[1]
	if second.BlankLinesBefore != 1 {
		t.Errorf("BlankLinesBefore = %d, want 1", second.BlankLinesBefore)
	}
	if len(second.LeadingComments) != 1 || second.LeadingComments[0].Text != "# second play" {
		t.Errorf("LeadingComments = %v, want one '# second play'", second.LeadingComments)
	}
}

func TestParser_ParseBytes_ColonWithoutSpace(t *testing.T) {
	doc, err := NewParser().ParseBytes([]byte("---\nkey:value\n"), "x.yml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	m, ok := doc.Root.(*ast.Mapping)
	if !ok {
		t.Fatalf("Root is %T, want *ast.Mapping", doc.Root)
	}
	entry := m.Entry("key")
	if entry == nil {
		t.Fatal("entry 'key' missing")
	}
	if entry.SpacesAfterColon != 0 {
		t.Errorf("SpacesAfterColon = %d, want 0", entry.SpacesAfterColon)
	}
	value, ok := entry.Value.(*ast.Scalar)
	if !ok || value.Value != "value" {
		t.Errorf("value = %v, want scalar 'value'", entry.Value)
	}
}

func TestParser_ParseBytes_SpacesBeforeColon(t *testing.T) {
	doc, err := NewParser().ParseBytes([]byte("---\nkey : value\n"), "x.yml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	entry := doc.Root.(*ast.Mapping).Entry("key")
	if entry == nil {
		t.Fatal("entry 'key' missing")
	}
	if entry.SpacesBeforeColon != 1 {
		t.Errorf("SpacesBeforeColon = %d, want 1", entry.SpacesBeforeColon)
	}
}

func TestParser_ParseBytes_BlockScalar(t *testing.T) {
	input := "---\n" +
		"script: |\n" +
		"  line one\n" +
		"  line two\n"

	doc, err := NewParser().ParseBytes([]byte(input), "x.yml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	entry := doc.Root.(*ast.Mapping).Entry("script")
	scalar, ok := entry.Value.(*ast.Scalar)
	if !ok {
		t.Fatalf("value is %T, want *ast.Scalar", entry.Value)
	}
	if scalar.Style != ast.StyleLiteral {
		t.Errorf("Style = %v, want literal", scalar.Style)
	}
	if scalar.Value != "line one\nline two" {
		t.Errorf("Value = %q, want %q", scalar.Value, "line one\nline two")
	}
	if len(scalar.BlockLines) != 2 {
		t.Errorf("len(BlockLines) = %d, want 2", len(scalar.BlockLines))
	}
}

func TestParser_ParseBytes_BlockScalarChomping(t *testing.T) {
	doc, err := NewParser().ParseBytes([]byte("---\nmsg: >-\n  hello\n  world\n"), "x.yml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	scalar := doc.Root.(*ast.Mapping).Entry("msg").Value.(*ast.Scalar)
	if scalar.Style != ast.StyleFolded {
		t.Errorf("Style = %v, want folded", scalar.Style)
	}
	if scalar.ChompIndicator != "-" {
		t.Errorf("ChompIndicator = %q, want %q", scalar.ChompIndicator, "-")
	}
	if scalar.Value != "hello world" {
		t.Errorf("Value = %q, want %q", scalar.Value, "hello world")
	}
}

func TestParser_ParseBytes_TrailingComment(t *testing.T) {
	doc, err := NewParser().ParseBytes([]byte("---\nbecome: true # escalate\n"), "x.yml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	entry := doc.Root.(*ast.Mapping).Entry("become")
	if entry.TrailingComment == nil {
		t.Fatal("TrailingComment = nil, want comment")
	}
	if entry.TrailingComment.Text != "# escalate" {
		t.Errorf("TrailingComment.Text = %q, want %q", entry.TrailingComment.Text, "# escalate")
	}
}

func TestParser_ParseBytes_FlowCollection(t *testing.T) {
	doc, err := NewParser().ParseBytes([]byte("---\ntags: [web, deploy]\n"), "x.yml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	scalar := doc.Root.(*ast.Mapping).Entry("tags").Value.(*ast.Scalar)
	if scalar.Raw != "[web, deploy]" {
		t.Errorf("Raw = %q, want %q", scalar.Raw, "[web, deploy]")
	}
	if scalar.Style != ast.StyleFlow {
		t.Errorf("Style = %v, want flow", scalar.Style)
	}
}

func TestParser_ParseBytes_ScalarRootTrivia(t *testing.T) {
	doc, err := NewParser().ParseBytes([]byte("---\n# release channel\nstable  # pinned\n"), "x.yml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	scalar, ok := doc.Root.(*ast.Scalar)
	if !ok {
		t.Fatalf("Root = %T, want *ast.Scalar", doc.Root)
	}
	if len(scalar.LeadingComments) != 1 || scalar.LeadingComments[0].Text != "# release channel" {
		t.Errorf("LeadingComments = %+v, want one %q comment", scalar.LeadingComments, "# release channel")
	}
	if scalar.TrailingComment == nil {
		t.Fatal("TrailingComment = nil, want comment")
	}
	if scalar.TrailingComment.Text != "# pinned" {
		t.Errorf("TrailingComment.Text = %q, want %q", scalar.TrailingComment.Text, "# pinned")
	}
}

func TestParser_ParseBytes_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		line    int
		column  int
		message string
	}{
		{
			name:    "tab in indentation",
			input:   "---\n\tfoo: bar\n",
			line:    2,
			column:  1,
			message: "tab",
		},
		{
			name:    "unclosed single quote",
			input:   "---\nname: 'oops\n",
			line:    2,
			column:  7,
			message: "unclosed single quote",
		},
		{
			name:    "unclosed double quote",
			input:   "---\nname: \"oops\n",
			line:    2,
			column:  7,
			message: "unclosed double quote",
		},
		{
			name:    "unterminated flow collection",
			input:   "---\ntags: [web\n",
			line:    2,
			column:  7,
			message: "unterminated flow collection",
		},
		{
			name:    "content after quoted scalar",
			input:   "---\nname: 'a' b\n",
			line:    2,
			column:  11,
			message: "unexpected content after scalar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().ParseBytes([]byte(tt.input), "bad.yml")
			if err == nil {
				t.Fatal("ParseBytes() succeeded, want error")
			}

			parseErr, ok := pberrors.AsParseError(err)
			if !ok {
				t.Fatalf("error %T is not a ParseError", err)
			}
			if parseErr.Type != pberrors.ErrorTypeSyntax {
				t.Errorf("Type = %v, want syntax", parseErr.Type)
			}
			if parseErr.Location.Line != tt.line {
				t.Errorf("Line = %d, want %d", parseErr.Location.Line, tt.line)
			}
			if parseErr.Location.Column != tt.column {
				t.Errorf("Column = %d, want %d", parseErr.Location.Column, tt.column)
			}
			if !strings.Contains(parseErr.Message, tt.message) {
				t.Errorf("Message = %q, want substring %q", parseErr.Message, tt.message)
			}
		})
	}
}

func TestParser_ParseBytes_SizeLimit(t *testing.T) {
	p := NewParser().WithMaxFileSize(8)
	_, err := p.ParseBytes([]byte("---\nkey: value\n"), "big.yml")
	if err == nil {
		t.Fatal("ParseBytes() succeeded, want size error")
	}
	parseErr, ok := pberrors.AsParseError(err)
	if !ok || parseErr.Type != pberrors.ErrorTypeIO {
		t.Errorf("error = %v, want IO ParseError", err)
	}
}

func TestParser_ParseBytes_ZeroIndentedSequence(t *testing.T) {
	input := "---\n" +
		"tasks:\n" +
		"- name: hi\n" +
		"  ansible.builtin.debug:\n" +
		"    msg: hi\n"

	doc, err := NewParser().ParseBytes([]byte(input), "x.yml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	entry := doc.Root.(*ast.Mapping).Entry("tasks")
	if _, ok := entry.Value.(*ast.Sequence); !ok {
		t.Errorf("tasks value is %T, want *ast.Sequence", entry.Value)
	}
}

func TestParser_ParseBytes_PlainContinuation(t *testing.T) {
	input := "---\n" +
		"msg: a long value\n" +
		"  that continues\n"

	doc, err := NewParser().ParseBytes([]byte(input), "x.yml")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	scalar := doc.Root.(*ast.Mapping).Entry("msg").Value.(*ast.Scalar)
	if scalar.Value != "a long value that continues" {
		t.Errorf("Value = %q, want folded continuation", scalar.Value)
	}
}
