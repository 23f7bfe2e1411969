package ports

import (
	"context"

	"go.trai.ch/pinhooks/internal/core/domain"
)

// SnapshotLoader obtains the resolved packages of a project's environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type SnapshotLoader interface {
	// Load sets up the environment of the project in dir and lists its packages.
	Load(ctx context.Context, dir string, opts domain.LoadOptions) (*domain.Snapshot, error)
}
