// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stow/internal/adapters/lockfile"
	_ "go.trai.ch/stow/internal/adapters/logger"
	_ "go.trai.ch/stow/internal/adapters/manifest"
	// Register app and engine nodes.
	_ "go.trai.ch/stow/internal/app"
	_ "go.trai.ch/stow/internal/engine/planner"
)
