// Package version records build metadata injected at link time via
// -ldflags.
package version

// Build metadata, overridden at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
