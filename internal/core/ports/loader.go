// Package ports defines the interfaces between the planning core and its
// adapters.
package ports

import "go.trai.ch/stow/internal/core/domain"

// ManifestLoader loads a workspace from its root directory.
//
//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the root manifest in dir along with all member manifests
	// and returns the assembled workspace view.
	Load(dir string) (domain.WorkspaceSource, error)
}

// LockLoader loads the resolved lock for a workspace root.
type LockLoader interface {
	// Load reads the lockfile in dir and verifies it against the root
	// manifest. When allowStale is true a digest mismatch is logged instead
	// of failing.
	Load(dir string, allowStale bool) (domain.LockSource, error)
}
