// Package build holds build-time information.
package build

// Version is the stow release version.
// It defaults to "dev" and is overwritten by linker flags on release builds.
var Version = "dev"
