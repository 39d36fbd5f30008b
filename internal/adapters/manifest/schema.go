package manifest

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// manifestFile represents the structure of a stow.yaml manifest.
type manifestFile struct {
	Version string `yaml:"version"`

	// Package is the manifest's own package name. A root manifest without a
	// package name is a pure coordination root.
	Package string `yaml:"package"`

	Workspace *workspaceDTO `yaml:"workspace"`

	// Dependencies are the package's own requirements (member manifests).
	Dependencies []string `yaml:"dependencies"`

	// DependencyGroups is the current-schema group declaration table.
	DependencyGroups map[string][]groupEntryDTO `yaml:"dependency-groups"`

	// DevDependencies is the legacy flat dev list. A nil pointer means the
	// key was never declared, which is distinct from a declared empty list.
	DevDependencies *[]string `yaml:"dev-dependencies"`
}

// workspaceDTO declares workspace membership in the root manifest.
type workspaceDTO struct {
	Members []string `yaml:"members"`
}

// groupEntryDTO is one entry of a dependency group: either a requirement
// string or an include-reference mapping.
type groupEntryDTO struct {
	spec         string
	includeGroup string
}

// UnmarshalYAML accepts either a scalar requirement string or a
// {include-group: name} mapping.
func (e *groupEntryDTO) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		e.spec = s
		return nil
	case yaml.MappingNode:
		var ref struct {
			IncludeGroup string `yaml:"include-group"`
		}
		if err := value.Decode(&ref); err != nil {
			return err
		}
		if ref.IncludeGroup == "" {
			return zerr.New("group entry mapping requires an include-group key")
		}
		e.includeGroup = ref.IncludeGroup
		return nil
	default:
		return zerr.New("group entry must be a requirement string or an include-group mapping")
	}
}
