// Package app implements the application layer for stow.
package app

import (
	"fmt"
	"io"
	"os"

	"go.trai.ch/zerr"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
	"go.trai.ch/stow/internal/engine/planner"
)

// App represents the main application logic.
type App struct {
	manifests ports.ManifestLoader
	locks     ports.LockLoader
	planner   *planner.Planner
	out       io.Writer
}

// New creates a new App instance.
func New(manifests ports.ManifestLoader, locks ports.LockLoader, pl *planner.Planner) *App {
	return &App{
		manifests: manifests,
		locks:     locks,
		planner:   pl,
		out:       os.Stdout,
	}
}

// SetOutput redirects plan rendering. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// PlanRequest carries the parameters of one plan invocation.
type PlanRequest struct {
	// Dir is the workspace root directory.
	Dir string

	// ProjectName selects a single member as the install target.
	ProjectName string

	// AllowStale skips the lockfile manifest-digest check.
	AllowStale bool
}

// Plan loads the workspace and lock, computes the install plan, and renders
// it to the configured output.
func (a *App) Plan(req PlanRequest) error {
	ws, err := a.manifests.Load(req.Dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load workspace")
	}

	lock, err := a.locks.Load(req.Dir, req.AllowStale)
	if err != nil {
		return zerr.Wrap(err, "failed to load lock")
	}

	plan, err := a.planner.Plan(ws, lock, planner.Options{ProjectName: req.ProjectName})
	if err != nil {
		return err
	}

	a.render(plan, lock)
	return nil
}

// versionedLock is satisfied by locks that record resolved package versions.
type versionedLock interface {
	PinnedVersion(domain.PackageName) (string, bool)
}

func (a *App) render(plan *planner.InstallPlan, lock domain.LockSource) {
	pinned, _ := lock.(versionedLock)

	fmt.Fprintf(a.out, "target: %s\n", plan.Target.Kind())

	fmt.Fprintln(a.out, "packages:")
	for _, name := range plan.Packages {
		if pinned != nil {
			if version, ok := pinned.PinnedVersion(name); ok {
				fmt.Fprintf(a.out, "  %s %s\n", name, version)
				continue
			}
		}
		fmt.Fprintf(a.out, "  %s\n", name)
	}

	if len(plan.Groups) == 0 {
		return
	}
	fmt.Fprintln(a.out, "groups:")
	for _, group := range plan.Groups.Names() {
		fmt.Fprintf(a.out, "  %s:\n", group)
		for _, req := range plan.Groups[group] {
			fmt.Fprintf(a.out, "    %s\n", req)
		}
	}
}
