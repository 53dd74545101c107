package secondary

// Renderer defines the secondary port for template rendering.
// Template semantics are owned by the implementation.
type Renderer interface {
	// Render renders the named template with data.
	Render(name string, data any) (string, error)

	// List returns the names of all templates starting with prefix, sorted.
	List(prefix string) []string
}
