package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/frodo/internal/config"
	"github.com/example/frodo/internal/core/controller"
	"github.com/example/frodo/internal/core/effects"
	"github.com/example/frodo/internal/core/routes"
	"github.com/example/frodo/internal/core/skeleton"
	"github.com/example/frodo/internal/ctxutil"
	"github.com/example/frodo/internal/ports/primary"
	"github.com/example/frodo/internal/ports/secondary"
	"github.com/example/frodo/internal/scaffold"
)

// Package manager invocation for new projects.
const (
	PackageManager = "npm"
	ServerCommand  = "node"
	ServerEntry    = "index.js"
	ManifestFile   = "package.json"
)

// BaseDependencies are installed into every new project, in order.
// The views preprocessor is appended unless views are skipped.
var BaseDependencies = []string{"express", "body-parser", "mongoose", "async"}

// Steps reported in GenerateResponse.Skipped.
const (
	SkippedViews  = "views"
	SkippedModel  = "model"
	SkippedRoutes = "routes"
)

// GeneratorServiceImpl implements the GeneratorService interface.
type GeneratorServiceImpl struct {
	opts      config.Options
	workspace secondary.WorkspaceAdapter
	generator *scaffold.Generator
	executor  EffectExecutor
}

// NewGeneratorService creates a new GeneratorService. opts is fixed for the
// lifetime of the service.
func NewGeneratorService(
	opts config.Options,
	workspace secondary.WorkspaceAdapter,
	generator *scaffold.Generator,
	executor EffectExecutor,
) *GeneratorServiceImpl {
	return &GeneratorServiceImpl{
		opts:      opts,
		workspace: workspace,
		generator: generator,
		executor:  executor,
	}
}

// manifest is package.json; field order is the output order.
type manifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Main        string `json:"main"`
	License     string `json:"license"`
}

// NewProject creates the project directory, materializes the skeleton, writes
// package.json and installs dependencies.
func (s *GeneratorServiceImpl) NewProject(ctx context.Context, req primary.NewProjectRequest) (*primary.NewProjectResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	root, err := s.loadSkeleton(ctx, req.SkeletonPath)
	if err != nil {
		return nil, err
	}

	projectPath := filepath.Join(s.opts.WorkingDir, req.Name)
	exists, err := s.workspace.DirectoryExists(ctx, projectPath)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("failed to create project %s: %w", req.Name, os.ErrExist)
	}

	placeholders, err := s.generator.Placeholders(s.appSpec(req.Name))
	if err != nil {
		return nil, err
	}

	pkg, err := json.MarshalIndent(manifest{
		Name:    req.Name,
		Version: "0.0.1",
		Main:    ServerEntry,
		License: "ISC",
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", ManifestFile, err)
	}

	effs := []effects.Effect{effects.Mkdir(projectPath)}
	effs = append(effs, skeleton.Plan(skeleton.PlanInput{
		Root:         root,
		BasePath:     projectPath,
		SkipViews:    s.opts.SkipViews,
		Placeholders: placeholders,
	})...)
	effs = append(effs, effects.Create(filepath.Join(projectPath, ManifestFile), string(pkg)))

	deps := s.dependencies()
	if req.SkipInstall {
		effs = append(effs, skipEffect("skipping dependency install", "project", req.Name))
		deps = nil
	}
	for _, dep := range deps {
		effs = append(effs, effects.ExecEffect{
			Dir:  projectPath,
			Name: PackageManager,
			Args: []string{"install", dep, "--save"},
		})
	}

	result, err := s.executor.Execute(ctx, effs)
	if err != nil {
		return nil, fmt.Errorf("failed to create project %s: %w", req.Name, err)
	}

	return &primary.NewProjectResponse{
		ProjectPath:  projectPath,
		Directories:  len(result.Directories),
		Files:        len(result.Created),
		Dependencies: deps,
	}, nil
}

// GenerateController creates a controller, its views and assets, and registers its routes.
func (s *GeneratorServiceImpl) GenerateController(ctx context.Context, req primary.GenerateControllerRequest) (*primary.GenerateResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("controller name is required")
	}
	if err := scaffold.ValidateController(req.Name, req.Actions); err != nil {
		return nil, err
	}

	effs, skipped, err := s.planController(ctx, s.opts, req.Name, req.Actions)
	if err != nil {
		return nil, err
	}
	return s.execute(ctx, effs, skipped)
}

// GenerateModel validates the properties and creates app/models/<name>.js.
func (s *GeneratorServiceImpl) GenerateModel(ctx context.Context, req primary.GenerateModelRequest) (*primary.GenerateResponse, error) {
	spec, err := scaffold.BuildModelSpec(req.Name, req.Properties)
	if err != nil {
		return nil, err
	}

	effs, skipped, err := s.planModel(ctx, spec)
	if err != nil {
		return nil, err
	}
	return s.execute(ctx, effs, skipped)
}

// GenerateScaffold creates a controller with the scaffold action set, its
// views, assets and routes, then the model. Properties are validated before
// anything is written.
func (s *GeneratorServiceImpl) GenerateScaffold(ctx context.Context, req primary.GenerateModelRequest) (*primary.GenerateResponse, error) {
	spec, err := scaffold.BuildModelSpec(req.Name, req.Properties)
	if err != nil {
		return nil, err
	}

	effs, skipped, err := s.planController(ctx, s.opts.WithScaffold(), req.Name, scaffold.ScaffoldActions)
	if err != nil {
		return nil, err
	}

	modelEffs, modelSkipped, err := s.planModel(ctx, spec)
	if err != nil {
		return nil, err
	}

	return s.execute(ctx, append(effs, modelEffs...), append(skipped, modelSkipped...))
}

// RunServer runs node index.js in the working directory. Failures of the
// child process are logged at debug level and otherwise ignored.
func (s *GeneratorServiceImpl) RunServer(ctx context.Context) error {
	_, err := s.executor.Execute(ctx, []effects.Effect{
		effects.ExecEffect{Dir: s.opts.WorkingDir, Name: ServerCommand, Args: []string{ServerEntry}},
	})
	if err != nil {
		ctxutil.Logger(ctx).Debug("server exited", "error", err)
	}
	return nil
}

func (s *GeneratorServiceImpl) planController(ctx context.Context, opts config.Options, name string, actions []string) ([]effects.Effect, []string, error) {
	viewsDirExists, err := s.workspace.DirectoryExists(ctx, opts.ViewsDir())
	if err != nil {
		return nil, nil, err
	}

	plan := controller.GeneratePlan(controller.PlanInput{
		Name:           name,
		Actions:        actions,
		Scaffold:       opts.Scaffold,
		SkipViews:      opts.SkipViews,
		SkipAssets:     opts.SkipAssets,
		ControllersDir: opts.ControllersDir(),
		ViewsDir:       opts.ViewsDir(),
		AssetsDir:      opts.AssetsDir(),
		ViewsDirExists: viewsDirExists,
		ViewExt:        opts.Preprocessors.Views,
		StylesheetExt:  opts.Preprocessors.Stylesheets,
		JavascriptExt:  opts.Preprocessors.Javascripts,
	})

	content, err := s.generator.Controller(plan.Spec)
	if err != nil {
		return nil, nil, err
	}

	var steps []string
	effs := []effects.Effect{effects.Create(plan.Controller, content)}

	if plan.ViewsSkipped {
		effs = append(effs, skipEffect("views directory not found, skipping views", "path", opts.ViewsDir()))
		steps = append(steps, SkippedViews)
	}
	if plan.ViewsDir != "" {
		effs = append(effs, effects.EnsureDir(plan.ViewsDir))
		layout := controller.Layout(opts.Preprocessors.Views)
		for _, v := range plan.Views {
			view, err := s.generator.View(scaffold.ViewSpec{Path: v.DisplayPath, Layout: layout})
			if err != nil {
				return nil, nil, err
			}
			effs = append(effs, effects.Create(v.Path, view))
		}
	}

	for _, asset := range plan.Assets {
		effs = append(effs, effects.Create(asset, ""))
	}

	routeEffs, routesSkipped, err := s.planRoutes(ctx, plan.Route)
	if err != nil {
		return nil, nil, err
	}
	if routesSkipped {
		steps = append(steps, SkippedRoutes)
	}

	return append(effs, routeEffs...), steps, nil
}

// planRoutes merges entry into the routes file. A missing routes file is
// started from the routes template; a missing config directory skips routes.
func (s *GeneratorServiceImpl) planRoutes(ctx context.Context, entry routes.Entry) ([]effects.Effect, bool, error) {
	path := s.opts.RoutesFile()

	exists, err := s.workspace.FileExists(ctx, path)
	if err != nil {
		return nil, false, err
	}

	var content string
	if exists {
		data, err := s.workspace.ReadFile(ctx, path)
		if err != nil {
			return nil, false, err
		}
		content = string(data)
	} else {
		dirExists, err := s.workspace.DirectoryExists(ctx, filepath.Dir(path))
		if err != nil {
			return nil, false, err
		}
		if !dirExists {
			return []effects.Effect{skipEffect("config directory not found, skipping routes", "path", filepath.Dir(path))}, true, nil
		}
		content, err = s.generator.Routes(s.appSpec(s.opts.AppName))
		if err != nil {
			return nil, false, err
		}
	}

	updated, added := routes.Apply(content, entry)
	if len(added) == 0 {
		return []effects.Effect{effects.NoEffect{}}, false, nil
	}
	return []effects.Effect{
		effects.Write(path, updated),
		effects.RouteEffect{Path: path, Lines: added},
	}, false, nil
}

func (s *GeneratorServiceImpl) planModel(ctx context.Context, spec *scaffold.ModelSpec) ([]effects.Effect, []string, error) {
	exists, err := s.workspace.DirectoryExists(ctx, s.opts.ModelsDir())
	if err != nil {
		return nil, nil, err
	}
	if !exists {
		return []effects.Effect{skipEffect("models directory not found, skipping model", "path", s.opts.ModelsDir())}, []string{SkippedModel}, nil
	}

	content, err := s.generator.Model(spec)
	if err != nil {
		return nil, nil, err
	}
	return []effects.Effect{effects.Create(filepath.Join(s.opts.ModelsDir(), spec.Name+".js"), content)}, nil, nil
}

func (s *GeneratorServiceImpl) execute(ctx context.Context, effs []effects.Effect, skipped []string) (*primary.GenerateResponse, error) {
	result, err := s.executor.Execute(ctx, effs)
	if err != nil {
		return nil, err
	}
	return &primary.GenerateResponse{
		Created: result.Created,
		Skipped: skipped,
		Routes:  result.Routes,
	}, nil
}

func (s *GeneratorServiceImpl) loadSkeleton(ctx context.Context, path string) (skeleton.Directory, error) {
	if path == "" {
		return skeleton.Default()
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.opts.WorkingDir, path)
	}

	data, err := s.workspace.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return skeleton.Directory{}, fmt.Errorf("skeleton file %s not found", path)
		}
		return skeleton.Directory{}, err
	}

	root, err := skeleton.Parse(data)
	if err != nil {
		return skeleton.Directory{}, fmt.Errorf("failed to parse skeleton %s: %w", path, err)
	}
	return root, nil
}

// skipEffect describes a step left out on purpose; it is logged at debug level only.
func skipEffect(msg, key string, value any) effects.LogEffect {
	return effects.LogEffect{Level: "debug", Message: msg, Fields: map[string]any{key: value}}
}

func (s *GeneratorServiceImpl) dependencies() []string {
	deps := append([]string{}, BaseDependencies...)
	if !s.opts.SkipViews {
		deps = append(deps, s.opts.Preprocessors.Views)
	}
	return deps
}

func (s *GeneratorServiceImpl) appSpec(name string) scaffold.AppSpec {
	return scaffold.AppSpec{
		AppName:     name,
		SkipViews:   s.opts.SkipViews,
		Views:       s.opts.Preprocessors.Views,
		Stylesheets: s.opts.Preprocessors.Stylesheets,
		Javascripts: s.opts.Preprocessors.Javascripts,
	}
}

// Ensure GeneratorServiceImpl implements the interface
var _ primary.GeneratorService = (*GeneratorServiceImpl)(nil)
