package parser

import "testing"

func TestEncode_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "simple playbook",
			input: simplePlaybook,
		},
		{
			name: "comments and blank lines",
			input: "# Header one\n" +
				"# Header two\n" +
				"\n" +
				"---\n" +
				"\n" +
				"- name: play  # inline note\n" +
				"  hosts: all\n" +
				"\n" +
				"  # section comment\n" +
				"  tasks:\n" +
				"    - name: task\n" +
				"      ansible.builtin.debug:\n" +
				"        msg: hello\n",
		},
		{
			name: "quoting styles preserved",
			input: "---\n" +
				"single: 'kept as-is'\n" +
				"double: \"also kept\"\n" +
				"plain: bare\n" +
				"flow: [a, b]\n",
		},
		{
			name: "block scalars",
			input: "---\n" +
				"literal: |\n" +
				"  line one\n" +
				"  line two\n" +
				"folded: >-\n" +
				"  joined\n" +
				"  text\n",
		},
		{
			name: "style deviations survive",
			input: "---\n" +
				"key :  odd\n" +
				"other:packed\n",
		},
		{
			name:  "no trailing newline",
			input: "---\nkey: value",
		},
		{
			name:  "extra trailing newlines",
			input: "---\nkey: value\n\n\n",
		},
		{
			name: "scalar document with comments",
			input: "---\n" +
				"# release channel\n" +
				"stable  # pinned\n",
		},
		{
			name: "commented scalar under key",
			input: "---\n" +
				"channel:\n" +
				"  # default\n" +
				"  stable\n",
		},
		{
			name: "document end marker",
			input: "---\n" +
				"key: value\n" +
				"...\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := NewParser().ParseBytes([]byte(tt.input), "roundtrip.yml")
			if err != nil {
				t.Fatalf("ParseBytes() failed: %v", err)
			}

			got := string(Encode(doc))
			if got != tt.input {
				t.Errorf("Encode() round trip mismatch:\n got: %q\nwant: %q", got, tt.input)
			}
		})
	}
}
