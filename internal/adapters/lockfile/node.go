package lockfile

import (
	"context"

	"github.com/grindlemire/graft"

	"go.trai.ch/stow/internal/adapters/logger"
	"go.trai.ch/stow/internal/core/ports"
)

const NodeID graft.ID = "adapter.lock_loader"

func init() {
	graft.Register(graft.Node[ports.LockLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.LockLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
