// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/example/frodo/internal/ports/secondary"
)

const (
	dirMode  = 0755
	fileMode = 0644
)

// WorkspaceAdapter implements secondary.WorkspaceAdapter over an afero.Fs.
// Directories are created one level at a time: a missing parent is an error.
type WorkspaceAdapter struct {
	fs afero.Fs
}

// NewWorkspaceAdapter creates a new workspace adapter backed by fs.
func NewWorkspaceAdapter(fs afero.Fs) *WorkspaceAdapter {
	return &WorkspaceAdapter{fs: fs}
}

// CreateDirectory creates path. It fails if path already exists.
func (a *WorkspaceAdapter) CreateDirectory(ctx context.Context, path string) error {
	if err := a.requireParent(path); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	exists, err := afero.Exists(a.fs, path)
	if err != nil {
		return fmt.Errorf("failed to check directory: %w", err)
	}
	if exists {
		return fmt.Errorf("failed to create directory: %s: %w", path, os.ErrExist)
	}
	if err := a.fs.Mkdir(path, dirMode); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// EnsureDirectory creates path unless a directory is already there.
// It reports whether the directory was created.
func (a *WorkspaceAdapter) EnsureDirectory(ctx context.Context, path string) (bool, error) {
	exists, err := a.DirectoryExists(ctx, path)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := a.CreateDirectory(ctx, path); err != nil {
		return false, err
	}
	return true, nil
}

// DirectoryExists checks if a directory exists.
func (a *WorkspaceAdapter) DirectoryExists(ctx context.Context, path string) (bool, error) {
	exists, err := afero.DirExists(a.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to check directory: %w", err)
	}
	return exists, nil
}

// CreateFile writes content to path unless something already exists there.
// It reports whether the file was created.
func (a *WorkspaceAdapter) CreateFile(ctx context.Context, path string, content []byte) (bool, error) {
	exists, err := afero.Exists(a.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to check file: %w", err)
	}
	if exists {
		return false, nil
	}
	if err := a.WriteFile(ctx, path, content); err != nil {
		return false, err
	}
	return true, nil
}

// WriteFile creates or truncates path and writes content.
func (a *WorkspaceAdapter) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := a.requireParent(path); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := afero.WriteFile(a.fs, path, content, fileMode); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// ReadFile returns the content of path.
func (a *WorkspaceAdapter) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// FileExists checks if a regular file exists.
func (a *WorkspaceAdapter) FileExists(ctx context.Context, path string) (bool, error) {
	info, err := a.fs.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check file: %w", err)
	}
	return !info.IsDir(), nil
}

// requireParent returns an error wrapping os.ErrNotExist when the parent
// directory of path is missing.
func (a *WorkspaceAdapter) requireParent(path string) error {
	parent := filepath.Dir(path)
	exists, err := afero.DirExists(a.fs, parent)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%s: %w", parent, os.ErrNotExist)
	}
	return nil
}

// Ensure WorkspaceAdapter implements the interface
var _ secondary.WorkspaceAdapter = (*WorkspaceAdapter)(nil)
