// Package export holds the cli commands that write portfolio files
//
// e.g., folio export json, folio export html
package export

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/folio/internal/cli"
	fileexport "github.com/thenoetrevino/folio/internal/export"
)

// ExportCmd returns the export parent command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the portfolio as JSON or HTML",
	}

	cmd.PersistentFlags().String("dir", "", "Output directory (defaults to export.dir from config)")

	cmd.AddCommand(newExportCmd("json", "Write portfolio_data.json", func(c *cli.CLI, _ time.Time) (string, error) {
		return c.App.ExportJSON()
	}))
	cmd.AddCommand(newExportCmd("html", "Write a standalone portfolio.html", func(c *cli.CLI, now time.Time) (string, error) {
		return c.App.ExportHTML(now)
	}))

	return cmd
}

type exportFunc func(c *cli.CLI, now time.Time) (string, error)

func newExportCmd(use, short string, run exportFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.FormatterFor(cmd)

			cliInstance, err := cli.Open(cmd, formatter)
			if err != nil {
				return err
			}
			defer cli.CloseQuietly(cliInstance)

			if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
				cliInstance.App.Saver = fileexport.DirSaver{Dir: dir}
			}

			path, err := run(cliInstance, time.Now())
			if err != nil {
				return formatter.Fail(err, "")
			}

			if formatter.Quiet {
				fmt.Println(path)
				return nil
			}
			if formatter.JSON {
				return formatter.Success(map[string]string{"path": path})
			}

			fmt.Printf("✓ Wrote %s\n", path)
			return nil
		},
	}

	cli.AddOutputFlags(cmd, "Minimal output (path only)")

	return cmd
}
