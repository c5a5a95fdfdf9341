package project

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/folio/internal/cli"
	"github.com/thenoetrevino/folio/internal/mutation"
	"github.com/thenoetrevino/folio/internal/preview"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a project",
		Long:  "Delete a project by ID (requires confirmation unless --force or --quiet).",
		Args:  cobra.NoArgs,
		RunE:  runDelete,
	}

	cmd.Flags().String("id", "", "Project ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	id, _ := cmd.Flags().GetString("id")
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	store := cliInstance.App.Store

	project, err := cli.FindProject(store.Snapshot(), id)
	if err != nil {
		return formatter.Fail(err, "")
	}

	// Ask for confirmation unless force or quiet mode
	if !force && !formatter.Quiet && !formatter.JSON {
		title := project.Title
		if title == "" {
			title = preview.FallbackProjectTitle
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Delete project '%s'? (y/N): ", title)
		var response string
		if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil {
			log.Printf("Error reading user input: %v", err)
		}
		response = strings.ToLower(response)
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := store.Dispatch(ctx, mutation.DeleteProject{ID: id}); err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]interface{}{"id": id, "deleted": true})
	}

	fmt.Printf("✓ Project %s deleted\n", id)
	return nil
}
