package skeleton

import (
	"path"
	"path/filepath"

	"github.com/example/frodo/internal/core/effects"
)

// DefaultSkipList names the view-related folders left out when views are skipped.
var DefaultSkipList = []string{"assets", "views", "vendor", "public"}

// PlanInput contains pre-fetched data for skeleton plan generation.
// All values must be gathered by the caller - no I/O in the planner.
type PlanInput struct {
	Root      Directory
	BasePath  string
	SkipViews bool
	SkipList  []string // defaults to DefaultSkipList when nil

	// Placeholders maps slash-separated paths relative to BasePath to file contents.
	// Files without a placeholder are created empty.
	Placeholders map[string]string
}

// Plan returns the effects materializing the skeleton under BasePath, in
// description order. Directories are created with OpMkdir and fail if they exist.
func Plan(input PlanInput) []effects.Effect {
	skip := input.SkipList
	if skip == nil {
		skip = DefaultSkipList
	}

	p := planner{input: input, skip: make(map[string]bool, len(skip))}
	if input.SkipViews {
		for _, name := range skip {
			p.skip[name] = true
		}
	}

	p.walk(input.Root, input.BasePath, "")
	return p.effects
}

type planner struct {
	input   PlanInput
	skip    map[string]bool
	effects []effects.Effect
}

func (p *planner) walk(dir Directory, base, rel string) {
	for _, entry := range dir.Entries {
		if p.skip[entry.Name] {
			continue
		}

		switch node := entry.Node.(type) {
		case Directory:
			childBase := filepath.Join(base, entry.Name)
			p.effects = append(p.effects, effects.Mkdir(childBase))
			p.walk(node, childBase, path.Join(rel, entry.Name))
		case FileList:
			for _, name := range node {
				content := p.input.Placeholders[path.Join(rel, name)]
				p.effects = append(p.effects, effects.Create(filepath.Join(base, name), content))
			}
		}
	}
}
