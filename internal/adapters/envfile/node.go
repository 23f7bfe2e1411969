package envfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinhooks/internal/core/ports"
)

// NodeID is the unique identifier for the environment file rewriter Graft node.
const NodeID graft.ID = "adapter.envfile"

func init() {
	graft.Register(graft.Node[ports.EnvFileRewriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EnvFileRewriter, error) {
			return NewRewriter(), nil
		},
	})
}
