package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := RootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no arguments", nil, "too few arguments"},
		{"unknown command", []string{"deploy"}, `=> Unknown command "deploy"`},
		{"new without name", []string{"new"}, NewUsage},
		{"generate without kind", []string{"generate"}, GenerateUsage},
		{"generate without name", []string{"generate", "controller"}, GenerateUsage},
		{"generate unknown kind", []string{"generate", "widget", "thing"}, GenerateUsage},
		{"generate alias", []string{"g", "model"}, GenerateUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("expected output to contain %q, got %q", tt.want, out)
			}
		})
	}
}

func TestRootCmd_Structure(t *testing.T) {
	cmd := RootCmd()

	for _, name := range []string{"new", "generate", "server"} {
		sub, _, err := cmd.Find([]string{name})
		if err != nil || sub.Name() != name {
			t.Errorf("expected subcommand %q, got %v (err %v)", name, sub, err)
		}
	}

	gen, _, _ := cmd.Find([]string{"g"})
	for _, name := range []string{"controller", "model", "scaffold"} {
		sub, _, err := gen.Find([]string{name})
		if err != nil || sub.Name() != name {
			t.Errorf("expected generate subcommand %q, got %v (err %v)", name, sub, err)
		}
	}

	if cmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("expected persistent --verbose flag")
	}
}

func TestRootCmd_Version(t *testing.T) {
	out, err := executeCommand(t, "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "frodo 0.6.0") {
		t.Errorf("expected version line, got %q", out)
	}
}

func TestNewAndGenerate(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := executeCommand(t, "new", "blog", "--skipInstall")
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if !strings.Contains(out, "create  blog/config/routes.js") {
		t.Errorf("expected create lines, got:\n%s", out)
	}

	chdir(t, filepath.Join(dir, "blog"))

	if _, err := executeCommand(t, "generate", "scaffold", "post", "title", "published:Boolean:true"); err != nil {
		t.Fatalf("generate scaffold failed: %v", err)
	}
	for _, path := range []string{
		"app/controllers/posts_controller.js",
		"app/views/posts/edit.pug",
		"app/assets/stylesheets/posts.css",
		"app/models/post.js",
	} {
		if _, err := os.Stat(filepath.Join(dir, "blog", path)); err != nil {
			t.Errorf("expected %s: %v", path, err)
		}
	}

	if _, err := executeCommand(t, "g", "controller", "page", "about", "--skipViews", "--skipAssets"); err != nil {
		t.Fatalf("generate controller failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "blog", "app", "views", "pages")); !os.IsNotExist(err) {
		t.Errorf("expected no pages views, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "blog", "app", "assets", "javascripts", "pages.js")); !os.IsNotExist(err) {
		t.Errorf("expected no pages assets, got %v", err)
	}

	_, err = executeCommand(t, "g", "controller", "page", "../../../escaped")
	if err == nil || !strings.Contains(err.Error(), `invalid action "../../../escaped"`) {
		t.Errorf("expected action validation error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "blog", "escaped.pug")); !os.IsNotExist(err) {
		t.Errorf("expected no escaped view, got %v", err)
	}

	_, err = executeCommand(t, "generate", "model", "user", "age:Integer")
	if err == nil || !strings.Contains(err.Error(), `unknown type "Integer"`) {
		t.Errorf("expected validation error, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "blog", "app", "models", "user.js")); !os.IsNotExist(err) {
		t.Errorf("expected no user model, got %v", err)
	}
}

func TestServerCmd_IgnoresExtraArgs(t *testing.T) {
	cmd := ServerCmd()
	if err := cmd.Args(cmd, []string{"extra", "args"}); err != nil {
		t.Errorf("server rejected extra arguments: %v", err)
	}
}

func TestNew_ExistingProject(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	if err := os.Mkdir(filepath.Join(dir, "blog"), 0755); err != nil {
		t.Fatalf("failed to seed dir: %v", err)
	}

	_, err := executeCommand(t, "new", "blog", "--skipInstall")
	if err == nil {
		t.Fatal("expected error for existing project")
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
