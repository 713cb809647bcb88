// Package buildinfo carries the version stamped into sparkcalc binaries.
package buildinfo

import "fmt"

// Set at build time via -ldflags "-X sparkcalc/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the most specific identifier available: the version, else the commit, else "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the line printed by -version and :version.
func String() string {
	return fmt.Sprintf("sparkcalc %s (commit %s, built %s)", Version, Commit, Date)
}
