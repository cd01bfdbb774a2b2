// Package build holds build-time information.
package build

// Version, Commit and Date can be overwritten by linker flags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
