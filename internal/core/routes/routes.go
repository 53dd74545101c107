// Package routes builds route registration statements and merges them into
// the routes file of a generated project.
package routes

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
)

// Marker is the line above which new routes are inserted.
const Marker = "// frodo:routes"

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Entry is one controller's route registration.
type Entry struct {
	Prefix   string // pluralized controller name: "posts"
	FileName string // controller file: "posts_controller.js"
	Actions  []string
	Scaffold bool
}

// Route maps an HTTP method and path to a controller action.
type Route struct {
	Method string // express router method: get, post, put, delete
	Path   string
	Action string
}

// restRoutes maps scaffold actions to REST routes; %s is the prefix.
var restRoutes = map[string]Route{
	"index":  {Method: "get", Path: "/%s"},
	"new":    {Method: "get", Path: "/%s/new"},
	"create": {Method: "post", Path: "/%s"},
	"show":   {Method: "get", Path: "/%s/:id"},
	"edit":   {Method: "get", Path: "/%s/:id/edit"},
	"update": {Method: "put", Path: "/%s/:id"},
	"delete": {Method: "delete", Path: "/%s/:id"},
}

// Routes returns the entry's routes. Outside scaffold mode every action is a
// GET on /<prefix>/<action> except index, which is GET /<prefix>.
// Parameterized paths are ordered after static ones so /posts/new is not
// shadowed by /posts/:id.
func (e Entry) Routes() []Route {
	routes := make([]Route, 0, len(e.Actions))
	for _, action := range e.Actions {
		r := Route{Method: "get", Path: fmt.Sprintf("/%s/%s", e.Prefix, action), Action: action}
		if action == "index" {
			r.Path = "/" + e.Prefix
		}
		if rest, ok := restRoutes[action]; ok && e.Scaffold {
			r = Route{Method: rest.Method, Path: fmt.Sprintf(rest.Path, e.Prefix), Action: action}
		}
		routes = append(routes, r)
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return !isParameterized(routes[i].Path) && isParameterized(routes[j].Path)
	})
	return routes
}

// VarName returns the JavaScript variable holding the controller module.
func (e Entry) VarName() string {
	return strcase.ToLowerCamel(e.Prefix)
}

// Lines returns the statements registering the entry, without indentation.
func (e Entry) Lines() []string {
	module := strings.TrimSuffix(e.FileName, ".js")
	lines := []string{fmt.Sprintf("var %s = require('../app/controllers/%s');", e.VarName(), module)}
	for _, r := range e.Routes() {
		lines = append(lines, fmt.Sprintf("app.%s('%s', %s%s);", r.Method, r.Path, e.VarName(), accessor(r.Action)))
	}
	return lines
}

// Apply merges the entry into the routes file content. Statements already
// present are skipped. New statements go above the Marker line when there is
// one, else at the end of the file. It returns the new content and the
// statements added; content is unchanged when nothing is added.
func Apply(content string, e Entry) (string, []string) {
	existing := make(map[string]bool)
	for _, line := range strings.Split(content, "\n") {
		existing[strings.TrimSpace(line)] = true
	}

	var added []string
	for _, line := range e.Lines() {
		if !existing[line] {
			added = append(added, line)
		}
	}
	if len(added) == 0 {
		return content, nil
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != Marker {
			continue
		}
		prefix := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		block := make([]string, 0, len(added)+1)
		for _, a := range added {
			block = append(block, prefix+a)
		}
		block = append(block, "")

		out := append([]string{}, lines[:i]...)
		out = append(out, block...)
		out = append(out, lines[i:]...)
		return strings.Join(out, "\n"), added
	}

	var b strings.Builder
	b.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	for _, a := range added {
		b.WriteString(a)
		b.WriteString("\n")
	}
	return b.String(), added
}

func isParameterized(path string) bool {
	return strings.Contains(path, "/:")
}

// accessor returns ".action", or "['action']" when action is not an identifier.
func accessor(action string) string {
	if identifier.MatchString(action) {
		return "." + action
	}
	return fmt.Sprintf("['%s']", action)
}
