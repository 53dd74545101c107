// Package effects defines effect types as data structures representing I/O operations.
// This is the foundation of the Functional Core / Imperative Shell pattern.
// Effects are pure data - they describe what should happen, not how.
package effects

// Effect is the base interface for all effects.
// Effects represent I/O operations as data that can be interpreted by the shell.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// File operations.
const (
	OpMkdir     = "mkdir"      // create a directory, fail if it exists
	OpEnsureDir = "ensure_dir" // create a directory unless it exists
	OpCreate    = "create"     // create a file unless it exists
	OpWrite     = "write"      // create or overwrite a file
)

// FileEffect represents a file system operation.
type FileEffect struct {
	Operation string // OpMkdir, OpEnsureDir, OpCreate, OpWrite
	Path      string
	Content   []byte // For create/write operations
}

func (e FileEffect) EffectType() string { return "file" }

// ExecEffect represents running an external command.
type ExecEffect struct {
	Dir  string
	Name string
	Args []string
}

func (e ExecEffect) EffectType() string { return "exec" }

// RouteEffect reports route statements added to the routes file.
// The file write itself is a FileEffect.
type RouteEffect struct {
	Path  string
	Lines []string
}

func (e RouteEffect) EffectType() string { return "route" }

// LogEffect represents a logging operation.
type LogEffect struct {
	Level   string
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// NoEffect represents an operation that produces no side effects.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }

// Mkdir returns a FileEffect creating path, failing if it exists.
func Mkdir(path string) FileEffect {
	return FileEffect{Operation: OpMkdir, Path: path}
}

// EnsureDir returns a FileEffect creating path unless it exists.
func EnsureDir(path string) FileEffect {
	return FileEffect{Operation: OpEnsureDir, Path: path}
}

// Create returns a FileEffect creating path with content unless it exists.
func Create(path, content string) FileEffect {
	return FileEffect{Operation: OpCreate, Path: path, Content: []byte(content)}
}

// Write returns a FileEffect writing content to path.
func Write(path, content string) FileEffect {
	return FileEffect{Operation: OpWrite, Path: path, Content: []byte(content)}
}
