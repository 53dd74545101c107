// Package templates holds the embedded file templates and renders them.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
	"text/template"

	"github.com/example/frodo/internal/ports/secondary"
	"github.com/example/frodo/internal/scaffold"
)

//go:embed all:dynamic all:static
var files embed.FS

const templateExt = ".tmpl"

// Renderer renders the embedded templates. Templates are addressed by their
// path without the .tmpl extension, e.g. "dynamic/controller.js".
type Renderer struct {
	tmpl  *template.Template
	names []string
}

// NewRenderer parses every embedded template.
func NewRenderer() (*Renderer, error) {
	return newRenderer(files)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	root := template.New("").Funcs(TemplateFuncs())
	var names []string

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, templateExt) {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path, templateExt)
		if _, err := root.New(name).Parse(string(content)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", path, err)
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(names)
	return &Renderer{tmpl: root, names: names}, nil
}

// Render renders the named template with data.
func (r *Renderer) Render(name string, data any) (string, error) {
	t := r.tmpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// List returns the names of all templates starting with prefix, sorted.
func (r *Renderer) List(prefix string) []string {
	var out []string
	for _, name := range r.names {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

// TemplateFuncs returns the template function map.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"title":  scaffold.Capitalize,
		"snake":  scaffold.ToSnakeCase,
		"jsType": mongooseType,
		"jsKey":  jsKey,
		"last":   func(i, n int) bool { return i == n-1 },
	}
}

// mongooseType maps a schema type to the mongoose schema expression.
// e.g. "ObjectId" -> "mongoose.Schema.Types.ObjectId"
func mongooseType(t any) string {
	s := fmt.Sprint(t)
	switch s {
	case "Mixed", "ObjectId":
		return "mongoose.Schema.Types." + s
	}
	return s
}

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// jsKey quotes an object key that is not a plain identifier.
func jsKey(s string) string {
	if identifier.MatchString(s) {
		return s
	}
	return "'" + s + "'"
}

var _ secondary.Renderer = (*Renderer)(nil)
