// Package version reports build information for pspec.
package version

import "fmt"

// These variables are populated by the Go linker (LDFLAGS) at build time,
// see magefile.go.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Info returns the multi-line version report printed by "pspec version".
func Info() string {
	return fmt.Sprintf("pspec version %s\nBuild time: %s\nGit commit: %s\n", Version, BuildDate, CommitHash)
}
