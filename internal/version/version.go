package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/bwillis/packs/internal/version.Version=...
	Commit  = "unknown" // -X github.com/bwillis/packs/internal/version.Commit=...
	Date    = "unknown" // -X github.com/bwillis/packs/internal/version.Date=...
)

// String formats the build information for the version command
func String() string {
	return fmt.Sprintf("packs version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
