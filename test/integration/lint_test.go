//go:build integration

package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"playlint-hq/playlint/pkg/lint"
	"playlint-hq/playlint/pkg/lint/rules"
	"playlint-hq/playlint/pkg/playbook/parser"
	"playlint-hq/playlint/pkg/runner"
)

const cleanPlaybook = `# Configure web servers
# Maintained by the platform team

---

- name: Configure web servers
  hosts: webservers
  become: true
  gather_facts: false

  tasks:
    - name: Install nginx
      ansible.builtin.package:
        name: 'nginx'
        state: 'present'
`

const dirtyPlaybook = `- hosts: all
  tasks:
    - shell: ls /tmp
`

// TestLintPipelineIntegration runs the full discover, parse, and lint
// pipeline over a directory tree of playbooks.
func TestLintPipelineIntegration(t *testing.T) {
	dir := t.TempDir()
	roleDir := filepath.Join(dir, "roles", "web", "tasks")
	if err := os.MkdirAll(roleDir, 0755); err != nil {
		t.Fatal(err)
	}

	files := map[string]string{
		filepath.Join(dir, "site.yml"):     cleanPlaybook,
		filepath.Join(dir, "dirty.yml"):    dirtyPlaybook,
		filepath.Join(roleDir, "main.yml"): cleanPlaybook,
		filepath.Join(dir, "notes.txt"):    "not yaml",
		filepath.Join(dir, "broken.yml"):   "key: 'unclosed\n",
	}
	for path, src := range files {
		if err := os.WriteFile(path, []byte(src), 0644); err != nil {
			t.Fatal(err)
		}
	}

	paths, err := runner.Discover([]string{dir}, nil)
	if err != nil {
		t.Fatalf("Discover() failed: %v", err)
	}
	if len(paths) != 4 {
		t.Fatalf("Discover() found %d files, want 4: %v", len(paths), paths)
	}

	r := runner.New(parser.NewParser(), lint.NewEngine(rules.Default()), 4)
	rpt, err := r.Run(context.Background(), paths)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	byFile := make(map[string]runner.FileResult)
	for _, fr := range rpt.Files {
		byFile[filepath.Base(fr.Path)] = fr
	}

	if fr := byFile["site.yml"]; len(fr.Violations) != 0 {
		t.Errorf("site.yml has %d violation(s), want 0: %+v", len(fr.Violations), fr.Violations)
	}
	if fr := byFile["dirty.yml"]; len(fr.Violations) == 0 {
		t.Error("dirty.yml has no violations, want at least one")
	}

	broken := byFile["broken.yml"]
	if !broken.ParseFailed {
		t.Error("broken.yml ParseFailed = false, want true")
	}
	if len(broken.Violations) != 1 || broken.Violations[0].RuleID != lint.RuleIDParseError {
		t.Errorf("broken.yml violations = %+v, want single parse-error", broken.Violations)
	}

	if !rpt.HasErrors() {
		t.Error("report.HasErrors() = false, want true")
	}
}

// TestRoundTripIntegration verifies discovered files re-encode to their
// original bytes after parsing.
func TestRoundTripIntegration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yml")
	if err := os.WriteFile(path, []byte(cleanPlaybook), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := parser.NewParser().Parse(path)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	got := string(parser.Encode(doc))
	if got != cleanPlaybook {
		t.Errorf("Encode() did not reproduce source:\ngot:\n%s\nwant:\n%s", got, cleanPlaybook)
	}
}
