// Package buildinfo carries version stamps injected with -ldflags, e.g.
//
//	go build -ldflags "-X rrast/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the most specific identifier available: the version if
// one was stamped, otherwise the commit, otherwise "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the full stamp printed by -version.
func String() string {
	return fmt.Sprintf("rrast %s (commit %s, built %s)", Short(), Commit, Date)
}
