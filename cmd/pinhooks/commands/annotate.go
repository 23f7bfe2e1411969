package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinhooks/internal/app"
	"go.trai.ch/pinhooks/internal/core/domain"
)

func (c *CLI) newAnnotateCmd() *cobra.Command {
	var opts app.AnnotateOptions

	cmd := &cobra.Command{
		Use:   "annotate [files...]",
		Short: "Add renovate comments and pin versions in conda environment files",
		Long: `Add renovate comments and pin versions in conda environment files.

Files are grouped by directory. For each directory the environment is created
once and its packages are listed; every file in the directory is then rewritten
so each dependency carries a tracking comment and the installed version.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Annotate(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.PipIndexURL, "internal-pip-index-url", "", "Index URL of internally published pip packages")
	cmd.Flags().StringArrayVar(&opts.PipPackages, "internal-pip-package", nil,
		"Pip package served by the internal index (repeatable)")
	cmd.Flags().StringToStringVar(&opts.Channels, "conda-channel", nil,
		"Conda channel of a package, as name=channel (repeatable)")
	cmd.Flags().StringVar(&opts.Load.CreateCommand, "create-command", domain.DefaultCreateCommand,
		"Command that creates or updates the environment")
	cmd.Flags().BoolVar(&opts.Load.SkipCreate, "no-create", false, "Do not create the environment before listing it")
	cmd.Flags().StringVar(&opts.Load.EnvironmentSelector, "environment-selector", domain.DefaultEnvironmentSelector,
		"Arguments selecting the environment to list, e.g. \"-n name\"")
	cmd.Flags().StringVar(&opts.Load.CondaExecutable, "conda-exe", domain.DefaultCondaExecutable,
		"Conda-compatible executable used to list packages")
	return cmd
}
