package conda

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinhooks/internal/adapters/logger"
	"go.trai.ch/pinhooks/internal/adapters/shell"
	"go.trai.ch/pinhooks/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot loader Graft node.
const NodeID graft.ID = "adapter.conda"

func init() {
	graft.Register(graft.Node[ports.SnapshotLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SnapshotLoader, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(runner, log), nil
		},
	})
}
