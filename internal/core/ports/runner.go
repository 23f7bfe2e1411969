// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/pinhooks/internal/core/domain"
)

// CommandRunner runs external programs.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes cmd and waits for it to finish.
	//
	// The result is returned whenever the process was started, including when it
	// exited non-zero. In that case the error wraps the *exec.ExitError and
	// carries the exit code as metadata.
	Run(ctx context.Context, cmd domain.Command) (*domain.CommandResult, error)
}
