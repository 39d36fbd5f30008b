package manifest

import (
	"iter"

	"go.trai.ch/stow/internal/core/domain"
)

// Manifest is one loaded member manifest.
type Manifest struct {
	// Dir is the directory the manifest was loaded from, relative to the
	// workspace root.
	Dir string

	// Name is the member's package name.
	Name domain.PackageName

	// Dependencies are the member's own requirements.
	Dependencies []domain.Requirement
}

// Workspace is the loaded, immutable view of a stow workspace. It implements
// domain.WorkspaceSource. All fields are fixed at load time, so concurrent
// reads need no synchronization.
type Workspace struct {
	rootDir      string
	rootName     domain.PackageName
	hasRootName  bool
	memberOrder  []domain.PackageName
	members      map[domain.PackageName]*Manifest
	groupDecls   map[domain.GroupName][]domain.GroupEntry
	legacyDev    []domain.Requirement
	hasLegacyDev bool
}

// RootDir returns the workspace root directory.
func (w *Workspace) RootDir() string {
	return w.rootDir
}

// RootPackage returns the root manifest's own package name, when present.
func (w *Workspace) RootPackage() (domain.PackageName, bool) {
	return w.rootName, w.hasRootName
}

// RootGroupDeclarations returns the root manifest's raw dependency-group
// table and legacy dev-dependencies list.
func (w *Workspace) RootGroupDeclarations() (map[domain.GroupName][]domain.GroupEntry, []domain.Requirement, bool) {
	return w.groupDecls, w.legacyDev, w.hasLegacyDev
}

// Members yields member package names in declared order, root first.
func (w *Workspace) Members() iter.Seq[domain.PackageName] {
	return func(yield func(domain.PackageName) bool) {
		for _, name := range w.memberOrder {
			if !yield(name) {
				return
			}
		}
	}
}

// Member returns the manifest of the named member.
func (w *Workspace) Member(name domain.PackageName) (*Manifest, bool) {
	m, ok := w.members[name]
	return m, ok
}
