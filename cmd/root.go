// Package cmd assembles the folio command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/folio/internal/cli"
	"github.com/thenoetrevino/folio/internal/cli/edit"
	"github.com/thenoetrevino/folio/internal/cli/export"
	"github.com/thenoetrevino/folio/internal/cli/portfolio"
	"github.com/thenoetrevino/folio/internal/cli/project"
	"github.com/thenoetrevino/folio/internal/cli/serve"
	"github.com/thenoetrevino/folio/internal/logging"
)

// NewRootCmd builds the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "folio",
		Short: "Folio - build a personal portfolio from the terminal",
		Long: `Folio edits a single portfolio document: your profile, your contact
links, and a list of projects. Edits are saved as you type, descriptions can
be generated with Gemini, and the result exports to JSON or a standalone
HTML page.

Run without a subcommand to open the interactive editor.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := logging.Init(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
			}
		},
		RunE: edit.Run,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})

	rootCmd.AddCommand(edit.EditCmd())
	rootCmd.AddCommand(portfolio.ShowCmd())
	rootCmd.AddCommand(portfolio.SetCmd())
	rootCmd.AddCommand(portfolio.ImportCmd())
	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(export.ExportCmd())
	rootCmd.AddCommand(serve.ServeCmd())

	return rootCmd
}

// Execute runs the command tree and returns the process exit code.
// Errors the commands already reported are not printed twice.
func Execute(ctx context.Context) int {
	err := NewRootCmd().ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}
	if !cli.Reported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, `Run "folio --help" for usage.`)
		}
	}
	return cli.ExitCode(err)
}
