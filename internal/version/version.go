// Package version provides build-time version information for toyrobot.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables set via ldflags.
// Example: go build -ldflags="-X toyrobot/internal/version.Version=v1.0.0"
var (
	// Version is the release tag the binary was built from, or "dev".
	Version = "dev"

	// Commit is the git commit SHA. Set via ldflags.
	Commit = "unknown"

	// BuildDate is the RFC3339 timestamp of the build. Set via ldflags.
	BuildDate = "unknown"
)

// shortCommitLen matches git's default abbreviation.
const shortCommitLen = 7

// Short returns the version string (e.g., "v1.2.3" or "dev").
func Short() string {
	return Version
}

// ShortCommit returns Commit cut to its abbreviated form.
func ShortCommit() string {
	if len(Commit) > shortCommitLen {
		return Commit[:shortCommitLen]
	}
	return Commit
}

// Info returns a single-line version string,
// e.g. "toyrobot v1.2.3 (commit: abc1234, built: 2024-01-15T10:30:00Z, go: go1.25.x)".
func Info() string {
	return fmt.Sprintf("toyrobot %s (commit: %s, built: %s, go: %s)",
		Version, ShortCommit(), BuildDate, runtime.Version())
}

// Full is what `toyrobot version -v` prints.
func Full() string {
	return fmt.Sprintf(`toyrobot %s
  Commit:     %s
  Built:      %s
  Go version: %s
  OS/Arch:    %s/%s`,
		Version, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
