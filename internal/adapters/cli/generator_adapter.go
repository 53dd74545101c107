// Package cli contains thin adapters translating CLI operations to service calls.
package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/example/frodo/internal/ports/primary"
)

// GeneratorAdapter is a thin adapter that translates CLI operations to GeneratorService calls.
// It depends only on the GeneratorService interface, enabling easy testing with mocks.
type GeneratorAdapter struct {
	service primary.GeneratorService
	out     io.Writer
}

// NewGeneratorAdapter creates a new GeneratorAdapter with the given service.
func NewGeneratorAdapter(service primary.GeneratorService, out io.Writer) *GeneratorAdapter {
	return &GeneratorAdapter{
		service: service,
		out:     out,
	}
}

// NewProject creates a project and prints the next steps.
func (a *GeneratorAdapter) NewProject(ctx context.Context, req primary.NewProjectRequest) (*primary.NewProjectResponse, error) {
	resp, err := a.service.NewProject(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "\n✓ Created project %s (%d directories, %d files)\n", req.Name, resp.Directories, resp.Files)
	if len(resp.Dependencies) > 0 {
		fmt.Fprintf(a.out, "  Installed: %s\n", strings.Join(resp.Dependencies, ", "))
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Next steps:")
	fmt.Fprintf(a.out, "  cd %s\n", filepath.Base(resp.ProjectPath))
	if len(resp.Dependencies) == 0 {
		fmt.Fprintln(a.out, "  npm install")
	}
	fmt.Fprintln(a.out, "  frodo server")
	return resp, nil
}

// GenerateController generates a controller with its views, assets and routes.
func (a *GeneratorAdapter) GenerateController(ctx context.Context, req primary.GenerateControllerRequest) (*primary.GenerateResponse, error) {
	resp, err := a.service.GenerateController(ctx, req)
	if err != nil {
		return nil, err
	}
	a.summary("controller", req.Name, resp)
	return resp, nil
}

// GenerateModel generates a model schema.
func (a *GeneratorAdapter) GenerateModel(ctx context.Context, req primary.GenerateModelRequest) (*primary.GenerateResponse, error) {
	resp, err := a.service.GenerateModel(ctx, req)
	if err != nil {
		return nil, err
	}
	a.summary("model", req.Name, resp)
	return resp, nil
}

// GenerateScaffold generates a controller, views, assets, routes and a model.
func (a *GeneratorAdapter) GenerateScaffold(ctx context.Context, req primary.GenerateModelRequest) (*primary.GenerateResponse, error) {
	resp, err := a.service.GenerateScaffold(ctx, req)
	if err != nil {
		return nil, err
	}
	a.summary("scaffold", req.Name, resp)
	return resp, nil
}

// Server runs the generated application in the foreground.
func (a *GeneratorAdapter) Server(ctx context.Context) error {
	return a.service.RunServer(ctx)
}

func (a *GeneratorAdapter) summary(kind, name string, resp *primary.GenerateResponse) {
	if len(resp.Created) == 0 && len(resp.Routes) == 0 {
		fmt.Fprintf(a.out, "\nNothing to do: %s %s is up to date\n", kind, name)
		return
	}

	fmt.Fprintf(a.out, "\n✓ Generated %s %s (%s", kind, name, plural(len(resp.Created), "file"))
	if len(resp.Routes) > 0 {
		fmt.Fprintf(a.out, ", %s", plural(len(resp.Routes), "route statement"))
	}
	fmt.Fprintln(a.out, ")")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
