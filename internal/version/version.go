// Package version carries build information stamped in at link time.
package version

import "fmt"

// Build information set by ldflags, for example
//
//	-X github.com/arthur-debert/dotlink/internal/version.Version=v0.3.0
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info renders the build information as printed by "dotlink version".
func Info() string {
	return fmt.Sprintf("dotlink version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
