package domain

import "go.trai.ch/zerr"

var (
	// ErrCyclicGroupReference is returned when a dependency group's include
	// chain revisits a group that is already being expanded.
	ErrCyclicGroupReference = zerr.New("cyclic group reference")

	// ErrUnknownGroupReference is returned when a group includes a group that
	// is not declared in the manifest.
	ErrUnknownGroupReference = zerr.New("unknown group reference")

	// ErrUnknownPackageName is returned when a requested package is not a
	// member of the workspace.
	ErrUnknownPackageName = zerr.New("unknown package name")

	// ErrDuplicateMemberName is returned when two workspace members declare
	// the same package name.
	ErrDuplicateMemberName = zerr.New("duplicate member name")

	// ErrMissingPackageName is returned when a member manifest does not
	// declare a package name.
	ErrMissingPackageName = zerr.New("missing package name")

	// ErrInvalidRequirement is returned when a requirement string cannot be
	// parsed.
	ErrInvalidRequirement = zerr.New("invalid requirement")

	// ErrStaleLock is returned when the lockfile's recorded manifest digest
	// no longer matches the root manifest.
	ErrStaleLock = zerr.New("lockfile is out of date with the manifest")

	// ErrEmptyLock is returned when a lockfile records neither members nor a
	// root package.
	ErrEmptyLock = zerr.New("lockfile declares no members and no root package")
)

// WithDetail attaches a metadata pair to a sentinel error. Attaching metadata
// to a sentinel directly would copy it out of the error chain, so the
// sentinel is wrapped first to keep errors.Is matching it.
func WithDetail(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, ""), key, value)
}
