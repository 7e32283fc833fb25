// Package version holds build metadata populated by the Go linker.
package version

// Populated via -ldflags at release build time; defaults cover go run and
// plain go build.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
