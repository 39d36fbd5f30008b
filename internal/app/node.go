package app

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/stow/internal/adapters/lockfile" //nolint:depguard // Wired in app layer
	"go.trai.ch/stow/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/stow/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/stow/internal/core/ports"
	"go.trai.ch/stow/internal/engine/planner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the application with the adapters the CLI needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			lockfile.NodeID,
			planner.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			manifests, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}

			locks, err := graft.Dep[ports.LockLoader](ctx)
			if err != nil {
				return nil, err
			}

			pl, err := graft.Dep[*planner.Planner](ctx)
			if err != nil {
				return nil, err
			}

			return New(manifests, locks, pl), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}
