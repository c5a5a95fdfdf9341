package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/folio/internal/cli"
	"github.com/thenoetrevino/folio/internal/cli/styles"
	"github.com/thenoetrevino/folio/internal/models"
	"github.com/thenoetrevino/folio/internal/mutation"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update one field of a project",
		Long: `Update one field of a project.

Fields: title, description, technologies, liveLink, githubLink, imageUrl

Examples:
  folio project update --id=$PROJECT_ID --field=technologies --value="Go, Redis"
`,
		Args: cobra.NoArgs,
		RunE: runUpdate,
	}

	cmd.Flags().String("id", "", "Project ID (required)")
	cmd.Flags().String("field", "", "Field to change (required)")
	cmd.Flags().String("value", "", "New value (empty clears the field)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("field")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	id, _ := cmd.Flags().GetString("id")
	fieldName, _ := cmd.Flags().GetString("field")
	value, _ := cmd.Flags().GetString("value")

	field, err := models.ParseProjectField(fieldName)
	if err != nil {
		return formatter.Fail(err, "")
	}

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	store := cliInstance.App.Store

	project, err := cli.FindProject(store.Snapshot(), id)
	if err != nil {
		return formatter.Fail(err, "List project IDs with: folio project list --quiet")
	}

	project = project.With(field, value)
	if err := store.Dispatch(ctx, mutation.UpdateProject{Project: project}); err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(project)
	}

	fmt.Println(styles.SuccessStyle.Render(fmt.Sprintf("✓ Updated %s", field)))
	fmt.Println(styles.RenderProject(project))
	return nil
}
