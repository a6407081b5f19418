package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("lint.jobs", "must be positive")

	want := "config error in lint.jobs: must be positive"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestExitError(t *testing.T) {
	inner := fmt.Errorf("open playbooks: permission denied")
	err := NewExitError(2, inner)

	if err.Error() != inner.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), inner.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is(err, inner) = false, want true")
	}

	var exitErr *ExitError
	if !errors.As(fmt.Errorf("wrapped: %w", err), &exitErr) {
		t.Fatal("errors.As failed to find ExitError")
	}
	if exitErr.Code != 2 {
		t.Errorf("Code = %d, want 2", exitErr.Code)
	}
}

func TestExitError_NilInner(t *testing.T) {
	err := NewExitError(1, nil)

	if err.Error() != "exit code 1" {
		t.Errorf("Error() = %q, want %q", err.Error(), "exit code 1")
	}
	if err.Unwrap() != nil {
		t.Errorf("Unwrap() = %v, want nil", err.Unwrap())
	}
}
