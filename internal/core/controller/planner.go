// Package controller contains pure planning logic for controller generation.
package controller

import (
	"path"
	"path/filepath"

	"github.com/example/frodo/internal/core/routes"
	"github.com/example/frodo/internal/scaffold"
)

// PlanInput contains pre-fetched data for controller plan generation.
// All values must be gathered by the caller - no I/O in the planner.
type PlanInput struct {
	Name     string // singular, as typed on the command line
	Actions  []string
	Scaffold bool

	SkipViews  bool
	SkipAssets bool

	// Project layout
	ControllersDir string
	ViewsDir       string
	AssetsDir      string
	ViewsDirExists bool

	// Preprocessor extensions, without the dot
	ViewExt       string
	StylesheetExt string
	JavascriptExt string
}

// Plan describes the files a controller generation creates.
type Plan struct {
	Plural     string
	Spec       *scaffold.ControllerSpec
	Controller string // controller file path

	ViewsDir     string // empty when no views are planned
	Views        []ViewOp
	ViewsSkipped bool // views were wanted but the views directory is absent

	Assets []string
	Route  routes.Entry
}

// ViewOp describes one view file.
type ViewOp struct {
	Action      string
	Path        string
	DisplayPath string // project-relative path shown in the view body
}

// GeneratePlan creates a controller plan from pre-fetched input.
func GeneratePlan(input PlanInput) *Plan {
	plural := scaffold.Pluralize(input.Name)
	spec := scaffold.BuildControllerSpec(input.Name, input.Actions, input.Scaffold, input.SkipViews)

	plan := &Plan{
		Plural:     plural,
		Spec:       spec,
		Controller: filepath.Join(input.ControllersDir, spec.FileName),
		Route: routes.Entry{
			Prefix:   plural,
			FileName: spec.FileName,
			Actions:  input.Actions,
			Scaffold: input.Scaffold,
		},
	}

	if !input.SkipViews && len(input.Actions) > 0 {
		if input.ViewsDirExists {
			plan.ViewsDir = filepath.Join(input.ViewsDir, plural)
			plan.Views = planViews(input, plural)
		} else {
			plan.ViewsSkipped = true
		}
	}

	if !input.SkipAssets {
		plan.Assets = []string{
			filepath.Join(input.AssetsDir, "javascripts", plural+"."+input.JavascriptExt),
			filepath.Join(input.AssetsDir, "stylesheets", plural+"."+input.StylesheetExt),
		}
	}

	return plan
}

func planViews(input PlanInput, plural string) []ViewOp {
	views := make([]ViewOp, 0, len(input.Actions))
	for _, action := range input.Actions {
		if input.Scaffold && scaffold.IsMutatingAction(action) {
			continue
		}
		name := action + "." + input.ViewExt
		views = append(views, ViewOp{
			Action:      action,
			Path:        filepath.Join(input.ViewsDir, plural, name),
			DisplayPath: path.Join("app", "views", plural, name),
		})
	}
	return views
}

// Layout returns the shared layout file name views extend.
func Layout(viewExt string) string {
	return "application." + viewExt
}
