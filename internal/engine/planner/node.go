package planner

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/stow/internal/adapters/logger"
	"go.trai.ch/stow/internal/core/ports"
)

const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Planner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
