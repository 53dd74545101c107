// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// WorkspaceAdapter defines the secondary port for filesystem operations on the
// project being generated.
type WorkspaceAdapter interface {
	// Directory operations
	CreateDirectory(ctx context.Context, path string) error                    // fails if path exists
	EnsureDirectory(ctx context.Context, path string) (created bool, err error) // tolerates existing path
	DirectoryExists(ctx context.Context, path string) (bool, error)

	// File operations. Missing parent directories are errors wrapping os.ErrNotExist.
	CreateFile(ctx context.Context, path string, content []byte) (created bool, err error) // create if absent
	WriteFile(ctx context.Context, path string, content []byte) error                      // overwrite
	ReadFile(ctx context.Context, path string) ([]byte, error)
	FileExists(ctx context.Context, path string) (bool, error)
}
