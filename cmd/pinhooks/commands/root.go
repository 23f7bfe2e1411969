// Package commands implements the CLI commands for pinhooks.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pinhooks/internal/app"
	"go.trai.ch/pinhooks/internal/build"
)

// CLI represents the command line interface for pinhooks.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Annotate(ctx context.Context, files []string, opts app.AnnotateOptions) error
	RunCog(ctx context.Context, files []string, opts app.CogOptions) error
	MakefileTable(ctx context.Context, dir string, w io.Writer) error
	CommandOutput(ctx context.Context, command, language string, w io.Writer) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pinhooks",
		Short:         "Pre-commit hooks for conda environment files and cog-generated docs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("trace", false, "Log each traced step with its duration")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newAnnotateCmd())
	rootCmd.AddCommand(c.newCogCmd())
	rootCmd.AddCommand(c.newMakeTableCmd())
	rootCmd.AddCommand(c.newCLIOutputCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetLogHook sets up a PersistentPreRun function that passes the log-json and
// trace flags to the provided callback before any command runs.
func (c *CLI) SetLogHook(fn func(jsonMode, trace bool)) {
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		jsonMode, err := cmd.Flags().GetBool("log-json")
		if err != nil {
			return err
		}
		trace, err := cmd.Flags().GetBool("trace")
		if err != nil {
			return err
		}
		fn(jsonMode, trace)
		return nil
	}
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
