// Package manifest loads stow.yaml manifests and assembles the workspace
// view consumed by the planning core.
package manifest

import (
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"go.trai.ch/stow/internal/adapters/reqspec"
	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
)

var _ ports.ManifestLoader = (*Loader)(nil)

// Loader implements ports.ManifestLoader for YAML manifests on disk.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the root manifest in dir along with all member manifests and
// returns the assembled workspace.
func (l *Loader) Load(dir string) (domain.WorkspaceSource, error) {
	root, err := readManifestFile(domain.DefaultManifestPath(dir))
	if err != nil {
		return nil, err
	}

	ws := &Workspace{
		rootDir: dir,
		members: make(map[domain.PackageName]*Manifest),
	}

	if root.Package != "" {
		ws.rootName = domain.NewPackageName(root.Package)
		ws.hasRootName = true
	}

	if ws.groupDecls, err = convertGroupDeclarations(root.DependencyGroups); err != nil {
		return nil, err
	}
	if root.DevDependencies != nil {
		ws.hasLegacyDev = true
		if ws.legacyDev, err = reqspec.ParseList(*root.DevDependencies); err != nil {
			return nil, err
		}
	}

	manifests, err := l.loadMembers(dir, root)
	if err != nil {
		return nil, err
	}

	// A root that is itself a package is the first member.
	if ws.hasRootName {
		rootDeps, err := reqspec.ParseList(root.Dependencies)
		if err != nil {
			return nil, err
		}
		manifests = append([]*Manifest{{
			Dir:          ".",
			Name:         ws.rootName,
			Dependencies: rootDeps,
		}}, manifests...)
	}

	for _, m := range manifests {
		if _, exists := ws.members[m.Name]; exists {
			return nil, domain.WithDetail(domain.ErrDuplicateMemberName, "package", m.Name.String())
		}
		ws.members[m.Name] = m
		ws.memberOrder = append(ws.memberOrder, m.Name)
	}

	return ws, nil
}

// loadMembers reads the declared member manifests concurrently, preserving
// declaration order in the result.
func (l *Loader) loadMembers(dir string, root *manifestFile) ([]*Manifest, error) {
	if root.Workspace == nil {
		return nil, nil
	}
	if len(root.Workspace.Members) == 0 {
		l.logger.Warn("workspace declares an empty members list")
		return nil, nil
	}

	manifests := make([]*Manifest, len(root.Workspace.Members))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, memberDir := range root.Workspace.Members {
		g.Go(func() error {
			m, err := loadMemberManifest(dir, memberDir)
			if err != nil {
				return err
			}
			manifests[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return manifests, nil
}

func loadMemberManifest(root, memberDir string) (*Manifest, error) {
	file, err := readManifestFile(domain.DefaultManifestPath(filepath.Join(root, memberDir)))
	if err != nil {
		return nil, err
	}
	if file.Package == "" {
		return nil, domain.WithDetail(domain.ErrMissingPackageName, "member_dir", memberDir)
	}

	deps, err := reqspec.ParseList(file.Dependencies)
	if err != nil {
		return nil, zerr.With(err, "member_dir", memberDir)
	}

	return &Manifest{
		Dir:          memberDir,
		Name:         domain.NewPackageName(file.Package),
		Dependencies: deps,
	}, nil
}

func readManifestFile(path string) (*manifestFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}
	return &file, nil
}

func convertGroupDeclarations(raw map[string][]groupEntryDTO) (map[domain.GroupName][]domain.GroupEntry, error) {
	decls := make(map[domain.GroupName][]domain.GroupEntry, len(raw))
	for name, entryDTOs := range raw {
		entries := make([]domain.GroupEntry, 0, len(entryDTOs))
		for _, dto := range entryDTOs {
			if dto.includeGroup != "" {
				entries = append(entries, domain.IncludeEntry(domain.NewGroupName(dto.includeGroup)))
				continue
			}
			req, err := reqspec.Parse(dto.spec)
			if err != nil {
				return nil, zerr.With(err, "group", name)
			}
			entries = append(entries, domain.RequirementEntry(req))
		}
		decls[domain.NewGroupName(name)] = entries
	}
	return decls, nil
}
