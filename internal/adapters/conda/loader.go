// Package conda loads dependency snapshots from live conda environments.
package conda

import (
	"context"
	"encoding/json"
	"strings"

	"go.trai.ch/pinhooks/internal/adapters/shell"
	"go.trai.ch/pinhooks/internal/core/domain"
	"go.trai.ch/pinhooks/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.SnapshotLoader by shelling out to conda.
type Loader struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(runner ports.CommandRunner, logger ports.Logger) *Loader {
	return &Loader{
		runner: runner,
		logger: logger,
	}
}

// Load sets up the environment of the project in dir and returns the packages installed in it.
func (l *Loader) Load(ctx context.Context, dir string, opts domain.LoadOptions) (*domain.Snapshot, error) {
	if !opts.SkipCreate {
		if err := l.setup(ctx, dir, opts.CreateCommand); err != nil {
			return nil, err
		}
	}

	entries, err := l.list(ctx, dir, opts)
	if err != nil {
		return nil, err
	}

	deps := make([]domain.Dependency, 0, len(entries))
	for _, e := range entries {
		deps = append(deps, domain.Dependency{
			Name:    e.Name,
			Channel: e.Channel,
			Version: e.Version,
		})
	}

	snapshot, err := domain.NewSnapshot(deps)
	if err != nil {
		return nil, zerr.With(err, "directory", dir)
	}
	return snapshot, nil
}

func (l *Loader) setup(ctx context.Context, dir, command string) error {
	args, err := shell.Split(command)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSetupCommandFailed.Error()), "directory", dir)
	}

	res, err := l.runner.Run(ctx, domain.Command{Dir: dir, Args: args})
	if err != nil {
		l.report(res)
		setupErr := zerr.Wrap(err, domain.ErrSetupCommandFailed.Error())
		setupErr = zerr.With(setupErr, "directory", dir)
		return zerr.With(setupErr, "command", command)
	}
	return nil
}

func (l *Loader) list(ctx context.Context, dir string, opts domain.LoadOptions) ([]listEntry, error) {
	selector, err := shell.Split(opts.EnvironmentSelector)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrListCommandFailed.Error()), "directory", dir)
	}

	conda := opts.CondaExecutable
	if conda == "" {
		conda = domain.DefaultCondaExecutable
	}

	args := make([]string, 0, len(selector)+3)
	args = append(args, conda, "list")
	args = append(args, selector...)
	args = append(args, "--json")

	res, err := l.runner.Run(ctx, domain.Command{Dir: dir, Args: args})
	if err != nil {
		l.report(res)
		listErr := zerr.Wrap(err, domain.ErrListCommandFailed.Error())
		listErr = zerr.With(listErr, "directory", dir)
		return nil, zerr.With(listErr, "selector", opts.EnvironmentSelector)
	}

	var entries []listEntry
	if err := json.Unmarshal(res.Stdout, &entries); err != nil {
		parseErr := zerr.Wrap(err, domain.ErrListParseFailed.Error())
		return nil, zerr.With(parseErr, "directory", dir)
	}
	return entries, nil
}

// report surfaces the captured output of a failed command.
func (l *Loader) report(res *domain.CommandResult) {
	if res == nil {
		return
	}
	if out := strings.TrimSpace(string(res.Stdout)); out != "" {
		l.logger.Warn(out)
	}
	if out := strings.TrimSpace(string(res.Stderr)); out != "" {
		l.logger.Warn(out)
	}
}
