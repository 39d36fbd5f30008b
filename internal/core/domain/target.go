package domain

import "iter"

// WorkspaceSource is the read-only view of a loaded workspace that the
// planning core consumes. Implementations must be safe for concurrent reads.
type WorkspaceSource interface {
	// RootPackage returns the root manifest's own package name, when the
	// root is itself an installable package.
	RootPackage() (PackageName, bool)

	// RootGroupDeclarations returns the root manifest's raw dependency-group
	// table and legacy dev-dependencies list. The final result reports
	// whether the legacy list was declared at all.
	RootGroupDeclarations() (map[GroupName][]GroupEntry, []Requirement, bool)

	// Members yields the workspace's member package names in declared order.
	Members() iter.Seq[PackageName]
}

// LockSource is the read-only view of a resolved lock that the planning core
// consumes.
type LockSource interface {
	// MemberNames returns the member names recorded in the lock, in stored
	// order. The list may be empty for single-member-at-root workspaces.
	MemberNames() []PackageName

	// RootName returns the root package name, present only when the
	// workspace has exactly one member located at the root.
	RootName() (PackageName, bool)
}

// TargetKind discriminates the three install target variants.
type TargetKind int

const (
	// TargetProject installs a single named package, which may be the
	// workspace root or one of its members.
	TargetProject TargetKind = iota

	// TargetWorkspace installs a whole workspace whose root is itself a
	// package.
	TargetWorkspace

	// TargetNonProjectWorkspace installs a whole workspace whose root is a
	// pure coordination manifest with no installable package of its own.
	TargetNonProjectWorkspace
)

// String returns a human-readable name for the target kind.
func (k TargetKind) String() string {
	switch k {
	case TargetProject:
		return "project"
	case TargetWorkspace:
		return "workspace"
	case TargetNonProjectWorkspace:
		return "non-project workspace"
	}
	panic("unhandled install target kind")
}

// InstallTarget identifies what one invocation installs. The variant is
// fixed at construction. The target borrows its workspace and lock; both
// must outlive the target for the duration of one command invocation.
type InstallTarget struct {
	kind      TargetKind
	workspace WorkspaceSource
	lock      LockSource
	name      PackageName
}

// NewProjectTarget creates a target that installs the single package name.
func NewProjectTarget(ws WorkspaceSource, lock LockSource, name PackageName) InstallTarget {
	return InstallTarget{kind: TargetProject, workspace: ws, lock: lock, name: name}
}

// NewWorkspaceTarget creates a target that installs the whole workspace.
func NewWorkspaceTarget(ws WorkspaceSource, lock LockSource) InstallTarget {
	return InstallTarget{kind: TargetWorkspace, workspace: ws, lock: lock}
}

// NewNonProjectWorkspaceTarget creates a target that installs a workspace
// whose root is not itself a package.
func NewNonProjectWorkspaceTarget(ws WorkspaceSource, lock LockSource) InstallTarget {
	return InstallTarget{kind: TargetNonProjectWorkspace, workspace: ws, lock: lock}
}

// Kind returns the target's variant.
func (t InstallTarget) Kind() TargetKind {
	return t.kind
}

// Workspace returns the target's workspace.
func (t InstallTarget) Workspace() WorkspaceSource {
	return t.workspace
}

// Packages returns the packages the target installs as a restartable
// sequence. The sequence is duplicate-free and deterministic for a given
// workspace and lock.
func (t InstallTarget) Packages() iter.Seq[PackageName] {
	switch t.kind {
	case TargetProject:
		return func(yield func(PackageName) bool) {
			yield(t.name)
		}
	case TargetNonProjectWorkspace:
		// The lock is authoritative for membership: a non-project root has
		// no implicit root package to fall back to.
		return func(yield func(PackageName) bool) {
			for _, name := range t.lock.MemberNames() {
				if !yield(name) {
					return
				}
			}
		}
	case TargetWorkspace:
		return func(yield func(PackageName) bool) {
			members := t.lock.MemberNames()
			if len(members) == 0 {
				// A lock for a workspace with a single member at the root
				// omits the member list; the root name stands in for it.
				if root, ok := t.lock.RootName(); ok {
					yield(root)
				}
				return
			}
			for _, name := range members {
				if !yield(name) {
					return
				}
			}
		}
	}
	panic("unhandled install target kind")
}

// Groups returns the dependency groups that apply to the workspace root but
// to no specific member. Only non-project workspace roots can carry such
// groups, so project and workspace targets always return an empty table.
// Per-member groups are resolved per package elsewhere.
func (t InstallTarget) Groups() (GroupTable, error) {
	switch t.kind {
	case TargetProject, TargetWorkspace:
		return GroupTable{}, nil
	case TargetNonProjectWorkspace:
		decls, legacy, hasLegacy := t.workspace.RootGroupDeclarations()
		return MergeGroupSources(decls, legacy, hasLegacy)
	}
	panic("unhandled install target kind")
}

// ProjectName returns the target's own package name. It reports false for
// the workspace and non-project workspace variants.
func (t InstallTarget) ProjectName() (PackageName, bool) {
	if t.kind != TargetProject {
		return PackageName{}, false
	}
	return t.name, true
}
