package lockfile

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
)

var _ ports.LockLoader = (*Loader)(nil)

// lockFile represents the structure of a stow.lock file.
type lockFile struct {
	Version int `yaml:"version"`

	// ManifestDigest is the xxhash of the root manifest bytes at resolution
	// time, used to detect a stale lock.
	ManifestDigest string `yaml:"manifest-digest"`

	// Root is the root package name, recorded only for workspaces with a
	// single member located at the root.
	Root string `yaml:"root"`

	// Members are the workspace member names, in resolution order.
	Members []string `yaml:"members"`

	Packages []lockPackage `yaml:"packages"`
}

// lockPackage is one resolved package pin.
type lockPackage struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Loader implements ports.LockLoader for YAML lockfiles on disk.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the lockfile in dir and verifies its manifest digest. A digest
// mismatch fails with domain.ErrStaleLock unless allowStale is set, in which
// case it is logged and loading continues.
func (l *Loader) Load(dir string, allowStale bool) (domain.LockSource, error) {
	path := domain.DefaultLockPath(dir)
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read lockfile"), "path", path)
	}

	var file lockFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse lockfile"), "path", path)
	}

	if len(file.Members) == 0 && file.Root == "" {
		return nil, domain.WithDetail(domain.ErrEmptyLock, "path", path)
	}

	if file.ManifestDigest != "" {
		if err := l.checkDigest(dir, file.ManifestDigest, allowStale); err != nil {
			return nil, err
		}
	}

	lock := &Lock{
		version:        file.Version,
		manifestDigest: file.ManifestDigest,
		pinned:         make(map[domain.PackageName]string, len(file.Packages)),
	}
	for _, name := range file.Members {
		lock.members = append(lock.members, domain.NewPackageName(name))
	}
	if file.Root != "" {
		lock.rootName = domain.NewPackageName(file.Root)
		lock.hasRoot = true
	}
	for _, pkg := range file.Packages {
		lock.pinned[domain.NewPackageName(pkg.Name)] = pkg.Version
	}

	return lock, nil
}

// checkDigest compares the recorded manifest digest against the current root
// manifest contents.
func (l *Loader) checkDigest(dir, recorded string, allowStale bool) error {
	current, err := manifestDigest(domain.DefaultManifestPath(dir))
	if err != nil {
		return err
	}
	if current == recorded {
		return nil
	}
	if allowStale {
		l.logger.Warn("lockfile manifest digest does not match, continuing anyway")
		return nil
	}
	err = domain.WithDetail(domain.ErrStaleLock, "recorded_digest", recorded)
	return zerr.With(err, "manifest_digest", current)
}

// manifestDigest computes the xxhash of a manifest file's contents.
func manifestDigest(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}
