package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/folio/internal/cli"
	"github.com/thenoetrevino/folio/internal/cli/styles"
	"github.com/thenoetrevino/folio/internal/generation"
)

// GenerateCmd returns the project generate subcommand
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a project description with AI",
		Long: `Ask the configured text model to write the project's description.

The project needs a title and technologies. An existing description is sent
along as a starting point. Set GEMINI_API_KEY (or API_KEY) first.
`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	cmd.Flags().String("id", "", "Project ID (required)")
	_ = cmd.MarkFlagRequired("id")

	cli.AddOutputFlags(cmd, "Minimal output (description only)")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	id, _ := cmd.Flags().GetString("id")

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	project, err := cli.FindProject(cliInstance.App.Store.Snapshot(), id)
	if err != nil {
		return formatter.Fail(err, "")
	}

	if !generation.CanGenerate(project) {
		return formatter.Fail(generation.ErrMissingInputs,
			fmt.Sprintf("folio project update --id=%s --field=technologies --value=\"Go, SQLite\"", id))
	}

	description, err := cliInstance.App.Generator.Generate(ctx, id)
	if err != nil {
		return formatter.Fail(err, cliInstance.App.Generator.Status(id).Error)
	}

	if formatter.Quiet {
		fmt.Println(description)
		return nil
	}

	project, err = cli.FindProject(cliInstance.App.Store.Snapshot(), id)
	if err != nil {
		return formatter.Fail(err, "")
	}
	if formatter.JSON {
		return formatter.Success(project)
	}

	fmt.Println(styles.SuccessStyle.Render("✓ Description generated"))
	fmt.Println(styles.RenderProject(project))
	return nil
}
