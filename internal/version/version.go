package version

import "fmt"

// Populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

// Info returns a human-friendly version string.
func Info() string {
	return fmt.Sprintf("%s (commit %s)", Version, Commit)
}
