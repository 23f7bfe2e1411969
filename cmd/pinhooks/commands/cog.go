package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinhooks/internal/app"
)

func (c *CLI) newCogCmd() *cobra.Command {
	var opts app.CogOptions

	cmd := &cobra.Command{
		Use:   "cog [files...]",
		Short: "Run cog in rewrite mode on each file",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RunCog(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.WorkingDirectoryLevel, "working-directory-level", 0,
		"Path elements from the repository root used as cog's working directory "+
			"(0: repository root, -1: the file's directory)")
	return cmd
}
