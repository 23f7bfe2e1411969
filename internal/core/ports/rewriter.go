package ports

import "go.trai.ch/pinhooks/internal/core/domain"

// EnvFileRewriter annotates and pins the dependencies of an environment file in place.
//
//go:generate go run go.uber.org/mock/mockgen -source=rewriter.go -destination=mocks/mock_rewriter.go -package=mocks
type EnvFileRewriter interface {
	// Rewrite reads path, rewrites its dependency lines against snapshot and
	// writes the result back when it differs.
	Rewrite(path string, snapshot *domain.Snapshot, overrides domain.Overrides) (domain.RewriteResult, error)
}
