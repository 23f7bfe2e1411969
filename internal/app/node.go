package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinhooks/internal/adapters/conda"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pinhooks/internal/adapters/envfile"   //nolint:depguard // Wired in app layer
	"go.trai.ch/pinhooks/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pinhooks/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/pinhooks/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/pinhooks/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			conda.NodeID,
			envfile.NodeID,
			shell.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log, tracer), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.SnapshotLoader](ctx)
	if err != nil {
		return nil, err
	}

	rewriter, err := graft.Dep[ports.EnvFileRewriter](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.CommandRunner](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, rewriter, runner, log, tracer), nil
}
