package portfolio

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/folio/internal/cli"
	"github.com/thenoetrevino/folio/internal/persistence"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored portfolio with an exported JSON file",
		Long: `Load a portfolio_data.json written by "folio export json" and store it.
The current document is replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cli.AddOutputFlags(cmd, "No output on success")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	data, err := os.ReadFile(args[0])
	if err != nil {
		return formatter.Fail(err, "")
	}

	doc, err := persistence.Decode(data)
	if err != nil {
		return formatter.Fail(fmt.Errorf("%w: %s: %w", cli.ErrInvalidData, args[0], err), "")
	}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	if err := cliInstance.App.Store.Replace(ctx, doc); err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(doc)
	}

	fmt.Printf("✓ Imported %s (%d projects)\n", args[0], len(doc.Projects))
	return nil
}
