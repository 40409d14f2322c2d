// Package version holds build metadata injected through -ldflags.
package version

// Set at link time; the defaults identify a local build.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)
