package filesystem_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/example/frodo/internal/adapters/filesystem"
)

func newMemAdapter(t *testing.T) (*filesystem.WorkspaceAdapter, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/work", 0755); err != nil {
		t.Fatalf("failed to seed fs: %v", err)
	}
	return filesystem.NewWorkspaceAdapter(fs), fs
}

func TestWorkspaceAdapter_DirectoryOperations(t *testing.T) {
	tmpDir := t.TempDir()
	adapter := filesystem.NewWorkspaceAdapter(afero.NewOsFs())

	ctx := context.Background()
	testDir := filepath.Join(tmpDir, "test-dir")

	// Directory should not exist initially
	exists, err := adapter.DirectoryExists(ctx, testDir)
	if err != nil {
		t.Fatalf("DirectoryExists failed: %v", err)
	}
	if exists {
		t.Error("expected directory to not exist")
	}

	if err := adapter.CreateDirectory(ctx, testDir); err != nil {
		t.Fatalf("CreateDirectory failed: %v", err)
	}

	exists, err = adapter.DirectoryExists(ctx, testDir)
	if err != nil {
		t.Fatalf("DirectoryExists failed: %v", err)
	}
	if !exists {
		t.Error("expected directory to exist")
	}

	// Second create fails
	err = adapter.CreateDirectory(ctx, testDir)
	if !errors.Is(err, os.ErrExist) {
		t.Errorf("expected os.ErrExist, got %v", err)
	}

	// Ensure tolerates the existing directory
	created, err := adapter.EnsureDirectory(ctx, testDir)
	if err != nil {
		t.Errorf("EnsureDirectory failed: %v", err)
	}
	if created {
		t.Error("expected EnsureDirectory to report an existing directory")
	}
}

func TestWorkspaceAdapter_EnsureDirectory(t *testing.T) {
	adapter, fs := newMemAdapter(t)
	ctx := context.Background()

	created, err := adapter.EnsureDirectory(ctx, "/work/views")
	if err != nil {
		t.Fatalf("EnsureDirectory failed: %v", err)
	}
	if !created {
		t.Error("expected EnsureDirectory to report a new directory")
	}
	if ok, _ := afero.DirExists(fs, "/work/views"); !ok {
		t.Error("expected /work/views to exist")
	}

	if _, err := adapter.EnsureDirectory(ctx, "/work/a/b"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist for missing parent, got %v", err)
	}
}

func TestWorkspaceAdapter_CreateDirectoryMissingParent(t *testing.T) {
	adapter, _ := newMemAdapter(t)

	err := adapter.CreateDirectory(context.Background(), "/work/a/b")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestWorkspaceAdapter_CreateFile(t *testing.T) {
	adapter, fs := newMemAdapter(t)
	ctx := context.Background()
	path := "/work/index.js"

	created, err := adapter.CreateFile(ctx, path, []byte("first"))
	if err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}
	if !created {
		t.Error("expected file to be created")
	}

	// Existing file is left untouched
	created, err = adapter.CreateFile(ctx, path, []byte("second"))
	if err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}
	if created {
		t.Error("expected existing file to be kept")
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(data) != "first" {
		t.Errorf("expected content 'first', got %q", string(data))
	}
}

func TestWorkspaceAdapter_CreateFileMissingParent(t *testing.T) {
	adapter, fs := newMemAdapter(t)

	_, err := adapter.CreateFile(context.Background(), "/work/missing/file.js", nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
	if ok, _ := afero.Exists(fs, "/work/missing"); ok {
		t.Error("expected parent to stay absent")
	}
}

func TestWorkspaceAdapter_WriteAndReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	adapter := filesystem.NewWorkspaceAdapter(afero.NewOsFs())
	ctx := context.Background()
	path := filepath.Join(tmpDir, "routes.js")

	if err := adapter.WriteFile(ctx, path, []byte("one")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := adapter.WriteFile(ctx, path, []byte("two")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := adapter.ReadFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "two" {
		t.Errorf("expected overwritten content 'two', got %q", string(data))
	}

	_, err = adapter.ReadFile(ctx, filepath.Join(tmpDir, "absent.js"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestWorkspaceAdapter_FileExists(t *testing.T) {
	adapter, fs := newMemAdapter(t)
	ctx := context.Background()
	if err := afero.WriteFile(fs, "/work/a.js", nil, 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"/work/a.js", true},
		{"/work", false},
		{"/work/b.js", false},
	}

	for _, tt := range tests {
		got, err := adapter.FileExists(ctx, tt.path)
		if err != nil {
			t.Fatalf("FileExists(%q) failed: %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
