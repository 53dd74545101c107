package skeleton

import _ "embed"

//go:embed default.json
var defaultSkeleton []byte

// Default returns the built-in project skeleton.
func Default() (Directory, error) {
	return Parse(defaultSkeleton)
}
