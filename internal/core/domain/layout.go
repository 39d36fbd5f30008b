package domain

import "path/filepath"

const (
	// ManifestFileName is the name of the project and workspace manifest.
	ManifestFileName = "stow.yaml"

	// LockFileName is the name of the resolved lockfile.
	LockFileName = "stow.lock"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultManifestPath returns the manifest path for the given root directory.
func DefaultManifestPath(root string) string {
	return filepath.Join(root, ManifestFileName)
}

// DefaultLockPath returns the lockfile path for the given root directory.
func DefaultLockPath(root string) string {
	return filepath.Join(root, LockFileName)
}
