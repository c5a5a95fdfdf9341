package project

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/folio/internal/cli"
	"github.com/thenoetrevino/folio/internal/cli/styles"
	"github.com/thenoetrevino/folio/internal/models"
	"github.com/thenoetrevino/folio/internal/mutation"
)

// fieldFlags maps project fields to their add-command flags
var fieldFlags = map[models.ProjectField]string{
	models.ProjectFieldTitle:        "title",
	models.ProjectFieldDescription:  "description",
	models.ProjectFieldTechnologies: "technologies",
	models.ProjectFieldLiveLink:     "live-link",
	models.ProjectFieldGithubLink:   "github-link",
	models.ProjectFieldImageURL:     "image-url",
}

// AddCmd returns the project add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project",
		Long: `Add a project to the portfolio. Every field is optional.

Examples:
  # Empty project, fill it in later
  folio project add

  # Quiet mode for bash capture
  PROJECT_ID=$(folio project add --title="Folio" --technologies="Go, SQLite" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Project title")
	cmd.Flags().String("description", "", "Project description")
	cmd.Flags().String("technologies", "", "Technologies used (comma-separated)")
	cmd.Flags().String("live-link", "", "Live demo URL")
	cmd.Flags().String("github-link", "", "Repository URL")
	cmd.Flags().String("image-url", "", "Image URL (defaults to a placeholder)")

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	store := cliInstance.App.Store

	id := mutation.NewProjectID()
	if err := store.Dispatch(ctx, mutation.AddProject{ID: id}); err != nil {
		return formatter.Fail(err, "")
	}

	project, err := cli.FindProject(store.Snapshot(), id)
	if err != nil {
		return formatter.Fail(err, "")
	}

	changed := false
	for _, field := range models.ProjectFields {
		flag := fieldFlags[field]
		if !cmd.Flags().Changed(flag) {
			continue
		}
		value, _ := cmd.Flags().GetString(flag)
		project = project.With(field, value)
		changed = true
	}

	if changed {
		if err := store.Dispatch(ctx, mutation.UpdateProject{Project: project}); err != nil {
			return formatter.Fail(err, "")
		}
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(project)
	}

	fmt.Println(styles.SuccessStyle.Render("✓ Project added"))
	fmt.Println(styles.RenderProject(project))
	return nil
}
