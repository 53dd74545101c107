package primary

import "context"

// GeneratorService defines the primary port for project generation.
type GeneratorService interface {
	// NewProject creates a project directory, its skeleton and manifest,
	// then installs dependencies.
	NewProject(ctx context.Context, req NewProjectRequest) (*NewProjectResponse, error)

	// GenerateController creates a controller with its views, assets and routes.
	GenerateController(ctx context.Context, req GenerateControllerRequest) (*GenerateResponse, error)

	// GenerateModel creates a model schema file.
	GenerateModel(ctx context.Context, req GenerateModelRequest) (*GenerateResponse, error)

	// GenerateScaffold creates a controller with the conventional action set and a model.
	GenerateScaffold(ctx context.Context, req GenerateModelRequest) (*GenerateResponse, error)

	// RunServer runs the generated application in the foreground.
	// Failures of the child process are not reported.
	RunServer(ctx context.Context) error
}

// NewProjectRequest contains parameters for creating a project.
type NewProjectRequest struct {
	Name         string
	SkeletonPath string // Optional JSON/YAML skeleton, defaults to the built-in one
	SkipInstall  bool   // Do not run the package manager
}

// NewProjectResponse contains the result of project creation.
type NewProjectResponse struct {
	ProjectPath  string
	Directories  int
	Files        int
	Dependencies []string // Installed packages, in install order
}

// GenerateControllerRequest contains parameters for generating a controller.
type GenerateControllerRequest struct {
	Name    string
	Actions []string
}

// GenerateModelRequest contains parameters for generating a model or scaffold.
type GenerateModelRequest struct {
	Name       string
	Properties []string // "name:type:required" specs
}

// GenerateResponse lists what a generate command touched.
type GenerateResponse struct {
	Created []string // Absolute paths of files created
	Skipped []string // Steps skipped because their directory is absent
	Routes  []string // Route statements added
}
