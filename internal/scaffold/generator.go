package scaffold

import (
	"fmt"
	"path"
	"strings"

	"github.com/example/frodo/internal/ports/secondary"
)

// Template names used by the generator.
const (
	ControllerTemplate = "dynamic/controller.js"
	ModelTemplate      = "dynamic/model.js"
	ViewTemplate       = "dynamic/view"
	RoutesTemplate     = "static/config/routes.js"

	staticPrefix = "static/"
)

// Generator renders file contents from templates.
type Generator struct {
	renderer secondary.Renderer
}

// NewGenerator creates a new Generator.
func NewGenerator(renderer secondary.Renderer) *Generator {
	return &Generator{renderer: renderer}
}

// Controller renders the controller body.
func (g *Generator) Controller(spec *ControllerSpec) (string, error) {
	return g.render(ControllerTemplate, spec)
}

// Model renders the mongoose schema module.
func (g *Generator) Model(spec *ModelSpec) (string, error) {
	return g.render(ModelTemplate, spec)
}

// View renders the default content of a view file.
func (g *Generator) View(spec ViewSpec) (string, error) {
	return g.render(ViewTemplate, spec)
}

// Routes renders an empty routes file.
func (g *Generator) Routes(app AppSpec) (string, error) {
	return g.render(RoutesTemplate, app)
}

// Placeholders renders every static template, keyed by the slash-separated
// path of the project file it fills (e.g. "config/routes.js").
func (g *Generator) Placeholders(app AppSpec) (map[string]string, error) {
	placeholders := make(map[string]string)
	for _, name := range g.renderer.List(staticPrefix) {
		content, err := g.render(name, app)
		if err != nil {
			return nil, err
		}
		placeholders[strings.TrimPrefix(name, staticPrefix)] = content
	}
	return placeholders, nil
}

func (g *Generator) render(name string, data any) (string, error) {
	content, err := g.renderer.Render(name, data)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", path.Base(name), err)
	}
	return content, nil
}
