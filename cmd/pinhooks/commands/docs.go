package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMakeTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "make-table [dir]",
		Short: "Print the make targets of a project as a Markdown table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.app.MakefileTable(cmd.Context(), dir, cmd.OutOrStdout())
		},
	}
}

func (c *CLI) newCLIOutputCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cli-output <command>",
		Short: "Print the output of a command as a fenced Markdown code block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			language, _ := cmd.Flags().GetString("language")
			return c.app.CommandOutput(cmd.Context(), args[0], language, cmd.OutOrStdout())
		},
	}
	cmd.Flags().String("language", "shell", "Language tag of the code block")
	return cmd
}
