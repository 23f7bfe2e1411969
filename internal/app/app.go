// Package app implements the application layer for pinhooks.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/pinhooks/internal/adapters/markdown"
	"go.trai.ch/pinhooks/internal/adapters/shell"
	"go.trai.ch/pinhooks/internal/core/domain"
	"go.trai.ch/pinhooks/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.SnapshotLoader
	rewriter ports.EnvFileRewriter
	runner   ports.CommandRunner
	logger   ports.Logger
	tracer   ports.Tracer
	stdout   io.Writer
	stderr   io.Writer
}

// New creates a new App instance.
func New(
	loader ports.SnapshotLoader,
	rewriter ports.EnvFileRewriter,
	runner ports.CommandRunner,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		loader:   loader,
		rewriter: rewriter,
		runner:   runner,
		logger:   log,
		tracer:   tracer,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithOutput sets where the output of interactive subprocesses is streamed.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// AnnotateOptions configuration for the Annotate method.
type AnnotateOptions struct {
	Load domain.LoadOptions

	// PipIndexURL is the registry of the packages listed in PipPackages.
	PipIndexURL string
	PipPackages []string

	// Channels overrides the conda channel of individual packages.
	Channels map[string]string
}

// Annotate adds tracking comments and pinned versions to the given environment files.
//
// Files are grouped by directory. Each directory's environment is set up and
// listed once, then every file in it is rewritten. The first failure aborts the run.
func (a *App) Annotate(ctx context.Context, files []string, opts AnnotateOptions) error {
	if len(files) == 0 {
		return nil
	}

	overrides := domain.Overrides{
		Channels:   opts.Channels,
		Registries: domain.RegistryOverrides(opts.PipIndexURL, opts.PipPackages),
	}

	ctx, span := a.tracer.Start(ctx, "annotate")
	defer span.End()
	span.SetAttribute("files", len(files))

	for _, group := range domain.GroupByDirectory(files) {
		if err := a.annotateDirectory(ctx, group, opts.Load, overrides); err != nil {
			span.RecordError(err)
			return err
		}
	}
	return nil
}

func (a *App) annotateDirectory(
	ctx context.Context,
	group domain.DirectoryGroup,
	loadOpts domain.LoadOptions,
	overrides domain.Overrides,
) error {
	ctx, span := a.tracer.Start(ctx, "annotate.directory")
	defer span.End()
	span.SetAttribute("directory", group.Dir)

	a.logger.Info(fmt.Sprintf("resolving environment in %s", group.Dir))
	snapshot, err := a.loader.Load(ctx, group.Dir, loadOpts)
	if err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, domain.ErrAnnotateFailed.Error()), "directory", group.Dir)
	}
	span.SetAttribute("packages", snapshot.Len())

	for _, file := range group.Files {
		if err := a.annotateFile(ctx, file, snapshot, overrides); err != nil {
			span.RecordError(err)
			return err
		}
	}
	return nil
}

func (a *App) annotateFile(ctx context.Context, file string, snapshot *domain.Snapshot, overrides domain.Overrides) error {
	_, span := a.tracer.Start(ctx, "annotate.file")
	defer span.End()
	span.SetAttribute("file", file)

	res, err := a.rewriter.Rewrite(file, snapshot, overrides)
	if err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, domain.ErrAnnotateFailed.Error()), "file", file)
	}

	span.SetAttribute("changed", res.Changed)
	if res.Changed {
		a.logger.Info(fmt.Sprintf("updated %s (%d annotated, %d pinned)", file, res.Annotated, res.Pinned))
	}
	return nil
}

// CogOptions configuration for the RunCog method.
type CogOptions struct {
	// WorkingDirectoryLevel selects cog's working directory: 0 for the current
	// directory, -1 for the file's parent, N for the first N path elements.
	WorkingDirectoryLevel int
}

// RunCog runs cog in rewrite mode on each file, stopping at the first failure.
func (a *App) RunCog(ctx context.Context, files []string, opts CogOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, domain.ErrCogFailed.Error())
	}

	for _, file := range files {
		dir, rel, err := domain.CogWorkingDir(file, opts.WorkingDirectoryLevel, cwd)
		if err != nil {
			return err
		}

		_, err = a.runner.Run(ctx, domain.Command{
			Dir:    dir,
			Args:   []string{domain.CogExecutable, "-r", rel},
			Stdout: a.stdout,
			Stderr: a.stderr,
		})
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCogFailed.Error()), "file", file)
		}
	}
	return nil
}

// MakefileTable writes the targets printed by make in dir as a Markdown table.
func (a *App) MakefileTable(ctx context.Context, dir string, w io.Writer) error {
	res, err := a.runner.Run(ctx, domain.Command{
		Dir:    dir,
		Args:   []string{domain.MakeExecutable},
		Stderr: a.stderr,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMakeHelpFailed.Error()), "directory", dir)
	}

	table, err := markdown.TargetsTable(markdown.ParseMakeHelp(string(res.Stdout)))
	if err != nil {
		return zerr.With(err, "directory", dir)
	}

	_, err = io.WriteString(w, table)
	return err
}

// CommandOutput runs command and writes its standard output as a fenced code block.
func (a *App) CommandOutput(ctx context.Context, command, language string, w io.Writer) error {
	args, err := shell.Split(command)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCommandOutputFailed.Error())
	}

	res, err := a.runner.Run(ctx, domain.Command{Args: args, Stderr: a.stderr})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCommandOutputFailed.Error()), "command", command)
	}

	_, err = io.WriteString(w, markdown.FencedBlock(language, string(res.Stdout)))
	return err
}
