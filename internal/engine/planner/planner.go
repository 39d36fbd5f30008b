// Package planner selects the install target for a loaded workspace and
// lock, and assembles the resulting install plan.
package planner

import (
	"slices"

	"go.trai.ch/zerr"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
)

// Options control target selection.
type Options struct {
	// ProjectName selects a single workspace member as the install target.
	// Empty means install the whole workspace.
	ProjectName string
}

// InstallPlan is the materialized result of planning one invocation.
type InstallPlan struct {
	// Target is the selected install target.
	Target domain.InstallTarget

	// Packages are the packages to install, in target order.
	Packages []domain.PackageName

	// Groups are the root-level dependency groups that apply to no specific
	// member. Empty except for non-project workspace roots.
	Groups domain.GroupTable
}

// Planner builds install plans.
type Planner struct {
	logger ports.Logger
}

// New creates a new Planner.
func New(logger ports.Logger) *Planner {
	return &Planner{logger: logger}
}

// Plan selects the install target and materializes its package list and
// root-level groups.
func (p *Planner) Plan(ws domain.WorkspaceSource, lock domain.LockSource, opts Options) (*InstallPlan, error) {
	target, err := p.selectTarget(ws, lock, opts)
	if err != nil {
		return nil, err
	}

	p.logger.Info("selected install target: " + target.Kind().String())

	groups, err := target.Groups()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve root dependency groups")
	}

	return &InstallPlan{
		Target:   target,
		Packages: slices.Collect(target.Packages()),
		Groups:   groups,
	}, nil
}

// selectTarget picks the target variant. An explicit project name selects
// that member; otherwise the whole workspace is installed, as a workspace
// target when the root is itself a package and as a non-project workspace
// target when it is not.
func (p *Planner) selectTarget(ws domain.WorkspaceSource, lock domain.LockSource, opts Options) (domain.InstallTarget, error) {
	if opts.ProjectName != "" {
		name := domain.NewPackageName(opts.ProjectName)
		for member := range ws.Members() {
			if member == name {
				return domain.NewProjectTarget(ws, lock, name), nil
			}
		}
		return domain.InstallTarget{}, domain.WithDetail(domain.ErrUnknownPackageName, "package", opts.ProjectName)
	}

	if _, ok := ws.RootPackage(); ok {
		return domain.NewWorkspaceTarget(ws, lock), nil
	}
	return domain.NewNonProjectWorkspaceTarget(ws, lock), nil
}
