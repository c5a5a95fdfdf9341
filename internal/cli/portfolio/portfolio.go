// Package portfolio holds the cli commands that read and edit the profile
//
// e.g., folio show, folio set, folio import
package portfolio

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/folio/internal/cli"
	"github.com/thenoetrevino/folio/internal/cli/styles"
	"github.com/thenoetrevino/folio/internal/models"
	"github.com/thenoetrevino/folio/internal/mutation"
)

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the portfolio document",
		Long:  "Print the stored portfolio. --json prints the same document the JSON export writes.",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd, "Minimal output (name only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	doc := cliInstance.App.Store.Snapshot()

	if formatter.Quiet {
		fmt.Println(doc.Name)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(doc)
	}

	fmt.Println(styles.RenderPortfolio(doc))
	return nil
}

// SetCmd returns the set command
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set a profile field",
		Long: `Set one top-level profile field.

Fields: name, title, bio, email, githubUrl, linkedinUrl

Examples:
  folio set name "Jane Doe"
  folio set githubUrl https://github.com/jane
  folio set bio ""   # clear the bio
`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}

	cli.AddOutputFlags(cmd, "No output on success")

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	field, err := models.ParseField(args[0])
	if err != nil {
		return formatter.Fail(err, "")
	}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	store := cliInstance.App.Store
	if err := store.Dispatch(ctx, mutation.SetField{Field: field, Value: args[1]}); err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(store.Snapshot())
	}

	fmt.Println(styles.RenderField(field.Label(), args[1]))
	return nil
}
