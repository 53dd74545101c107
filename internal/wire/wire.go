// Package wire provides dependency injection for the frodo application.
// Stateless collaborators are singletons with lazy initialization; services
// are built per command because they carry that command's options.
package wire

import (
	"fmt"
	"io"
	"sync"

	"github.com/spf13/afero"

	cliadapter "github.com/example/frodo/internal/adapters/cli"
	"github.com/example/frodo/internal/adapters/filesystem"
	"github.com/example/frodo/internal/adapters/shell"
	"github.com/example/frodo/internal/app"
	"github.com/example/frodo/internal/config"
	"github.com/example/frodo/internal/ports/primary"
	"github.com/example/frodo/internal/scaffold"
	"github.com/example/frodo/internal/templates"
)

var (
	fs          afero.Fs
	renderer    *templates.Renderer
	rendererErr error
	once        sync.Once
)

// initShared initializes the collaborators shared by every command.
// This is called once via sync.Once.
func initShared() {
	fs = afero.NewOsFs()
	renderer, rendererErr = templates.NewRenderer()
}

// FS returns the file system commands operate on.
func FS() afero.Fs {
	once.Do(initShared)
	return fs
}

// Options loads the generation options for workingDir.
func Options(workingDir string) (config.Options, error) {
	return config.LoadOptions(FS(), workingDir)
}

// GeneratorService returns a GeneratorService for opts, reporting progress on out.
func GeneratorService(opts config.Options, out io.Writer) (primary.GeneratorService, error) {
	once.Do(initShared)
	if rendererErr != nil {
		return nil, fmt.Errorf("failed to load templates: %w", rendererErr)
	}

	// Create adapters (secondary ports)
	workspace := filesystem.NewWorkspaceAdapter(fs)
	runner := shell.NewRunner()

	// Create effect executor with injected adapters
	executor := app.NewEffectExecutor(workspace, runner, out, opts.WorkingDir)

	return app.NewGeneratorService(opts, workspace, scaffold.NewGenerator(renderer), executor), nil
}

// GeneratorAdapterWithOutput returns a new GeneratorAdapter writing to out.
func GeneratorAdapterWithOutput(opts config.Options, out io.Writer) (*cliadapter.GeneratorAdapter, error) {
	service, err := GeneratorService(opts, out)
	if err != nil {
		return nil, err
	}
	return cliadapter.NewGeneratorAdapter(service, out), nil
}
