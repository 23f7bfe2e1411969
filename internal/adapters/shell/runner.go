// Package shell provides the subprocess runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/pinhooks/internal/core/domain"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the command and captures its output.
// Output is additionally streamed to cmd.Stdout and cmd.Stderr when they are set.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (*domain.CommandResult, error) {
	if len(cmd.Args) == 0 {
		return nil, domain.ErrEmptyCommand
	}

	name := cmd.Args[0]
	c := exec.CommandContext(ctx, name, cmd.Args[1:]...) //nolint:gosec // user provided command
	c.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	c.Stdout = tee(&stdout, cmd.Stdout)
	c.Stderr = tee(&stderr, cmd.Stderr)

	runErr := c.Run()
	if runErr == nil {
		return &domain.CommandResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, nil
	}

	err := zerr.With(zerr.Wrap(runErr, domain.ErrCommandFailed.Error()), "command", strings.Join(cmd.Args, " "))
	if cmd.Dir != "" {
		err = zerr.With(err, "directory", cmd.Dir)
	}

	var exitErr *exec.ExitError
	if !errors.As(runErr, &exitErr) {
		// The process never started.
		return nil, err
	}

	result := &domain.CommandResult{
		ExitCode: exitErr.ExitCode(),
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}
	return result, zerr.With(err, "exit_code", result.ExitCode)
}

func tee(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}
