// Package version reports which frodo build is running.
package version

import "fmt"

// Release matches the generator's published release.
const Release = "0.6.0"

// Overridden with -ldflags "-X github.com/example/frodo/internal/version.Commit=...".
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String is printed by --version, e.g. "frodo 0.6.0 (commit: 1a2b3c4, built: 2024-05-01)".
func String() string {
	return fmt.Sprintf("frodo %s (commit: %s, built: %s)", Release, abbrev(Commit), BuildTime)
}

// abbrev keeps the first seven characters of a commit hash.
func abbrev(commit string) string {
	if len(commit) <= 7 {
		return commit
	}
	return commit[:7]
}
