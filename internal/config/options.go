package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Options is the generation configuration built once at startup.
// Generators receive it by value and never modify it.
type Options struct {
	WorkingDir    string
	AppName       string
	SkipViews     bool
	SkipAssets    bool
	Scaffold      bool
	Preprocessors Preprocessors
}

// LoadOptions builds Options for workingDir: preprocessors come from the
// project config when present, and assets are skipped when app/assets is absent.
func LoadOptions(fs afero.Fs, workingDir string) (Options, error) {
	opts := Options{
		WorkingDir:    workingDir,
		AppName:       filepath.Base(workingDir),
		Preprocessors: DefaultPreprocessors(),
	}

	cfg, err := LoadProjectConfig(fs, workingDir)
	if err != nil {
		return Options{}, err
	}
	if cfg != nil {
		opts.Preprocessors = opts.Preprocessors.Merge(cfg.Preprocessors)
	}

	assetsExist, err := afero.DirExists(fs, opts.AssetsDir())
	if err != nil {
		return Options{}, fmt.Errorf("failed to check assets directory: %w", err)
	}
	opts.SkipAssets = !assetsExist

	return opts, nil
}

// WithScaffold returns a copy of o with scaffold mode on.
func (o Options) WithScaffold() Options {
	o.Scaffold = true
	return o
}

// AppDir returns <working dir>/app.
func (o Options) AppDir() string { return filepath.Join(o.WorkingDir, "app") }

// AssetsDir returns <working dir>/app/assets.
func (o Options) AssetsDir() string { return filepath.Join(o.AppDir(), "assets") }

// ControllersDir returns <working dir>/app/controllers.
func (o Options) ControllersDir() string { return filepath.Join(o.AppDir(), "controllers") }

// ModelsDir returns <working dir>/app/models.
func (o Options) ModelsDir() string { return filepath.Join(o.AppDir(), "models") }

// ViewsDir returns <working dir>/app/views.
func (o Options) ViewsDir() string { return filepath.Join(o.AppDir(), "views") }

// RoutesFile returns <working dir>/config/routes.js.
func (o Options) RoutesFile() string { return filepath.Join(o.WorkingDir, "config", "routes.js") }
