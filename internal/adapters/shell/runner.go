// Package shell runs external commands for the generator.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/example/frodo/internal/ports/secondary"
)

// Runner implements secondary.ShellAdapter with os/exec.
type Runner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a Runner attached to the process's standard streams.
func NewRunner() *Runner {
	return &Runner{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

// NewRunnerWithStreams creates a Runner attached to the given streams.
func NewRunnerWithStreams(stdin io.Reader, stdout, stderr io.Writer) *Runner {
	return &Runner{stdin: stdin, stdout: stdout, stderr: stderr}
}

// Run executes name with args in dir and waits for it to exit.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", strings.Join(append([]string{name}, args...), " "), err)
	}
	return nil
}

var _ secondary.ShellAdapter = (*Runner)(nil)
