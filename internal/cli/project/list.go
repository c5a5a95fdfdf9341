package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/folio/internal/cli"
	"github.com/thenoetrevino/folio/internal/cli/styles"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long:  "List all projects in portfolio order.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	projects := cliInstance.App.Store.Snapshot().Projects

	// Output in appropriate format
	if formatter.Quiet {
		// Just print IDs (one per line)
		for _, p := range projects {
			fmt.Println(p.ID)
		}
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"projects": projects,
		})
	}

	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	fmt.Printf("Found %d projects:\n\n", len(projects))
	for _, p := range projects {
		fmt.Println(styles.RenderProject(p))
	}
	return nil
}
