package secondary

import "context"

// ShellAdapter defines the secondary port for running external commands
// (package manager, generated app) with inherited standard streams.
type ShellAdapter interface {
	// Run executes name with args in dir and blocks until it exits.
	// A non-zero exit status is returned as an error.
	Run(ctx context.Context, dir, name string, args ...string) error
}
