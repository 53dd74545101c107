// Package skeleton describes project skeletons and plans their creation.
package skeleton

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// FilesKey is the key holding a directory's file list.
const FilesKey = "files"

// Node is either a Directory or a FileList.
type Node interface {
	node()
}

// Directory is an ordered mapping from folder name to child node.
type Directory struct {
	Entries []Entry
}

// FileList holds the names of files created directly in a directory.
type FileList []string

// Entry is one key of a Directory.
type Entry struct {
	Name string
	Node Node
}

func (Directory) node() {}
func (FileList) node()  {}

// Parse decodes a JSON or YAML skeleton description. Key order is preserved.
func Parse(data []byte) (Directory, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Directory{}, fmt.Errorf("failed to parse skeleton: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Directory{}, errors.New("failed to parse skeleton: empty description")
	}
	return parseDirectory(doc.Content[0], "")
}

func parseDirectory(n *yaml.Node, at string) (Directory, error) {
	n = resolve(n)
	if isNull(n) {
		return Directory{}, nil
	}
	if n.Kind != yaml.MappingNode {
		return Directory{}, fmt.Errorf("skeleton %s: expected a mapping of folders, got %s", location(at), kindName(n))
	}

	var dir Directory
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		value := n.Content[i+1]
		childAt := path.Join(at, name)

		if name == FilesKey {
			files, err := parseFiles(value, childAt)
			if err != nil {
				return Directory{}, err
			}
			dir.Entries = append(dir.Entries, Entry{Name: name, Node: files})
			continue
		}

		if err := validateName(name); err != nil {
			return Directory{}, fmt.Errorf("skeleton %s: %w", location(at), err)
		}
		if resolve(value).Kind == yaml.SequenceNode {
			return Directory{}, fmt.Errorf("skeleton %s: file list must be under %q", location(childAt), FilesKey)
		}

		child, err := parseDirectory(value, childAt)
		if err != nil {
			return Directory{}, err
		}
		dir.Entries = append(dir.Entries, Entry{Name: name, Node: child})
	}
	return dir, nil
}

func parseFiles(n *yaml.Node, at string) (FileList, error) {
	n = resolve(n)
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("skeleton %s: expected a list of file names, got %s", location(at), kindName(n))
	}

	files := make(FileList, 0, len(n.Content))
	for _, item := range n.Content {
		item = resolve(item)
		if item.Kind != yaml.ScalarNode || isNull(item) {
			return nil, fmt.Errorf("skeleton %s: file names must be strings", location(at))
		}
		if err := validateName(item.Value); err != nil {
			return nil, fmt.Errorf("skeleton %s: %w", location(at), err)
		}
		files = append(files, item.Value)
	}
	return files, nil
}

// validateName rejects names that would escape their parent directory.
func validateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("invalid name %q", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("invalid name %q: path separators are not allowed", name)
	}
	return nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "list"
	case yaml.ScalarNode:
		return "scalar " + n.Value
	}
	return "unknown node"
}

func location(at string) string {
	if at == "" {
		return "root"
	}
	return at
}
