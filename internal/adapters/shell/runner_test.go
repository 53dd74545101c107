package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunner_Run(t *testing.T) {
	requireSh(t)
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	r := NewRunnerWithStreams(strings.NewReader(""), &stdout, &stderr)

	err := r.Run(context.Background(), dir, "sh", "-c", "pwd; echo oops >&2")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(stdout.String(), dir) {
		t.Errorf("expected command to run in %s, got %q", dir, stdout.String())
	}
	if strings.TrimSpace(stderr.String()) != "oops" {
		t.Errorf("expected stderr 'oops', got %q", stderr.String())
	}
}

func TestRunner_NonZeroExit(t *testing.T) {
	requireSh(t)
	r := NewRunnerWithStreams(nil, &bytes.Buffer{}, &bytes.Buffer{})

	err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "exit 3")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *exec.ExitError, got %T", err)
	}
	if exitErr.ExitCode() != 3 {
		t.Errorf("expected exit code 3, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(err.Error(), "sh -c exit 3") {
		t.Errorf("expected command line in error, got %q", err.Error())
	}
}

func TestRunner_MissingCommand(t *testing.T) {
	r := NewRunnerWithStreams(nil, &bytes.Buffer{}, &bytes.Buffer{})

	err := r.Run(context.Background(), t.TempDir(), "frodo-no-such-command")
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("expected exec.ErrNotFound, got %v", err)
	}
}
