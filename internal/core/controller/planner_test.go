package controller

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func baseInput() PlanInput {
	return PlanInput{
		Name:           "post",
		Actions:        []string{"index", "show"},
		ControllersDir: "/blog/app/controllers",
		ViewsDir:       "/blog/app/views",
		AssetsDir:      "/blog/app/assets",
		ViewsDirExists: true,
		ViewExt:        "pug",
		StylesheetExt:  "css",
		JavascriptExt:  "js",
	}
}

func TestGeneratePlan_Controller(t *testing.T) {
	plan := GeneratePlan(baseInput())

	if plan.Plural != "posts" {
		t.Errorf("expected plural 'posts', got %q", plan.Plural)
	}
	if plan.Controller != "/blog/app/controllers/posts_controller.js" {
		t.Errorf("unexpected controller path %q", plan.Controller)
	}
	if plan.ViewsDir != "/blog/app/views/posts" {
		t.Errorf("unexpected views dir %q", plan.ViewsDir)
	}

	wantViews := []ViewOp{
		{Action: "index", Path: "/blog/app/views/posts/index.pug", DisplayPath: "app/views/posts/index.pug"},
		{Action: "show", Path: "/blog/app/views/posts/show.pug", DisplayPath: "app/views/posts/show.pug"},
	}
	if diff := cmp.Diff(wantViews, plan.Views); diff != "" {
		t.Errorf("views mismatch (-want +got):\n%s", diff)
	}

	wantAssets := []string{
		"/blog/app/assets/javascripts/posts.js",
		"/blog/app/assets/stylesheets/posts.css",
	}
	if diff := cmp.Diff(wantAssets, plan.Assets); diff != "" {
		t.Errorf("assets mismatch (-want +got):\n%s", diff)
	}

	if plan.Route.Prefix != "posts" || plan.Route.FileName != "posts_controller.js" || plan.Route.Scaffold {
		t.Errorf("unexpected route entry %+v", plan.Route)
	}
}

func TestGeneratePlan_ScaffoldSkipsMutatingViews(t *testing.T) {
	input := baseInput()
	input.Actions = []string{"index", "show", "new", "edit", "create", "update", "delete"}
	input.Scaffold = true

	plan := GeneratePlan(input)

	var got []string
	for _, v := range plan.Views {
		got = append(got, v.Action)
	}
	if diff := cmp.Diff([]string{"index", "show", "new", "edit"}, got); diff != "" {
		t.Errorf("view actions mismatch (-want +got):\n%s", diff)
	}
	if len(plan.Spec.Actions) != 7 {
		t.Errorf("expected 7 controller actions, got %d", len(plan.Spec.Actions))
	}
	if !plan.Route.Scaffold {
		t.Error("expected scaffold route entry")
	}
}

func TestGeneratePlan_Views(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*PlanInput)
		wantViews   int
		wantSkipped bool
	}{
		{
			name:      "views dir present",
			modify:    func(*PlanInput) {},
			wantViews: 2,
		},
		{
			name:        "views dir absent",
			modify:      func(in *PlanInput) { in.ViewsDirExists = false },
			wantSkipped: true,
		},
		{
			name:   "skip views",
			modify: func(in *PlanInput) { in.SkipViews = true; in.ViewsDirExists = false },
		},
		{
			name:   "no actions",
			modify: func(in *PlanInput) { in.Actions = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := baseInput()
			tt.modify(&input)

			plan := GeneratePlan(input)

			if len(plan.Views) != tt.wantViews {
				t.Errorf("expected %d views, got %d", tt.wantViews, len(plan.Views))
			}
			if plan.ViewsSkipped != tt.wantSkipped {
				t.Errorf("expected ViewsSkipped=%v, got %v", tt.wantSkipped, plan.ViewsSkipped)
			}
			if tt.wantViews == 0 && plan.ViewsDir != "" {
				t.Errorf("expected no views dir, got %q", plan.ViewsDir)
			}
		})
	}
}

func TestGeneratePlan_SkipAssets(t *testing.T) {
	input := baseInput()
	input.SkipAssets = true

	plan := GeneratePlan(input)

	if len(plan.Assets) != 0 {
		t.Errorf("expected no assets, got %v", plan.Assets)
	}
}

func TestGeneratePlan_CustomExtensions(t *testing.T) {
	input := baseInput()
	input.ViewExt = "ejs"
	input.StylesheetExt = "scss"
	input.JavascriptExt = "coffee"

	plan := GeneratePlan(input)

	if plan.Views[0].Path != "/blog/app/views/posts/index.ejs" {
		t.Errorf("unexpected view path %q", plan.Views[0].Path)
	}
	if plan.Assets[0] != "/blog/app/assets/javascripts/posts.coffee" {
		t.Errorf("unexpected javascript asset %q", plan.Assets[0])
	}
	if plan.Assets[1] != "/blog/app/assets/stylesheets/posts.scss" {
		t.Errorf("unexpected stylesheet asset %q", plan.Assets[1])
	}
	if Layout(input.ViewExt) != "application.ejs" {
		t.Errorf("unexpected layout %q", Layout(input.ViewExt))
	}
}

func TestGeneratePlan_RouteActionsKeepOrder(t *testing.T) {
	input := baseInput()
	input.Actions = []string{"show", "index"}

	plan := GeneratePlan(input)

	if diff := cmp.Diff([]string{"show", "index"}, plan.Route.Actions); diff != "" {
		t.Errorf("route actions mismatch (-want +got):\n%s", diff)
	}
}
