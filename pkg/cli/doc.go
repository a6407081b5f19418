// Package cli provides shared helpers for command implementations: typed
// command errors with exit codes and signal-aware contexts.
package cli
