// Package edit holds the interactive editor command
package edit

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/folio/internal/cli"
	"github.com/thenoetrevino/folio/internal/tui"
)

// EditCmd returns the edit command
func EditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive portfolio editor",
		Long: `Open the terminal editor: profile and projects on the left, the rendered
portfolio on the right. Edits are saved automatically; press ? for keys.`,
		Args: cobra.NoArgs,
		RunE: Run,
	}
}

// Run opens the editor and flushes pending edits when it exits
func Run(cmd *cobra.Command, _ []string) error {
	formatter := &cli.OutputFormatter{}
	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	if err := tui.Run(cmd.Context(), cliInstance.App); err != nil {
		return formatter.Fail(err, "")
	}
	return nil
}
