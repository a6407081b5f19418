// Playlint checks Ansible playbooks and task files for style conformance.
//
// It parses YAML with a structure-preserving parser, so rules can see
// quoting, spacing, blank lines, and comments exactly as written, and
// reports deterministic, position-sorted violations.
//
// Usage:
//
//	# Lint files or directories
//	playlint lint site.yml roles/
//
//	# JSON output for CI/CD
//	playlint lint --format json playbooks/
//
//	# Continuous linting with a metrics endpoint
//	playlint watch playbooks/
//
//	# List the registered rules
//	playlint rules
//
//	# Inspect recorded runs
//	playlint history list
package main

func main() {
	Execute()
}
