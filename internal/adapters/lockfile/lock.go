// Package lockfile loads stow.lock files and verifies them against the root
// manifest.
package lockfile

import "go.trai.ch/stow/internal/core/domain"

// Lock is the loaded, immutable view of a stow.lock file. It implements
// domain.LockSource.
type Lock struct {
	version        int
	manifestDigest string
	members        []domain.PackageName
	rootName       domain.PackageName
	hasRoot        bool
	pinned         map[domain.PackageName]string
}

// Version returns the lockfile format version.
func (l *Lock) Version() int {
	return l.version
}

// MemberNames returns the member names recorded in the lock, in stored
// order. The returned slice must not be mutated.
func (l *Lock) MemberNames() []domain.PackageName {
	return l.members
}

// RootName returns the root package name for single-member-at-root locks.
func (l *Lock) RootName() (domain.PackageName, bool) {
	return l.rootName, l.hasRoot
}

// PinnedVersion returns the resolved version recorded for the named package.
func (l *Lock) PinnedVersion(name domain.PackageName) (string, bool) {
	v, ok := l.pinned[name]
	return v, ok
}
