package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/folio/internal/models"
)

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

// FormatterFor builds the formatter selected by cmd's output flags
func FormatterFor(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// Open returns the CLI for cmd, reporting initialization failures through formatter
func Open(cmd *cobra.Command, formatter *OutputFormatter) (*CLI, error) {
	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return nil, err
	}
	return cliInstance, nil
}

// CloseQuietly closes c and logs any failure
func CloseQuietly(c *CLI) {
	if err := c.Close(); err != nil {
		log.Printf("Error closing CLI: %v", err)
	}
}

// FindProject looks up a project in doc, returning ErrProjectNotFound with the ID
func FindProject(doc models.Portfolio, id string) (models.Project, error) {
	p, ok := doc.ProjectByID(id)
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %s", models.ErrProjectNotFound, id)
	}
	return p, nil
}
