// Package serve holds the preview server command
package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/folio/internal/cli"
	"github.com/thenoetrevino/folio/internal/models"
	"github.com/thenoetrevino/folio/internal/server"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live HTML preview of the portfolio",
		Long: `Serve the portfolio page over HTTP. Every request renders the latest
stored document, so edits from "folio edit" or "folio set" in another terminal
show up on reload.

Routes:
  /                the portfolio page
  /portfolio.json  the JSON export
  /healthz         liveness probe
`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (defaults to server.addr from config)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)

	cliInstance, err := cli.Open(cmd, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cliInstance.App.Config.Server.Addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Serving portfolio preview on http://%s (Ctrl+C to stop)\n", addr)
	return server.New(liveSnapshot{ctx: ctx, c: cliInstance}).Run(ctx, addr)
}

// liveSnapshot rereads the slot so edits from other processes are served
type liveSnapshot struct {
	ctx context.Context
	c   *cli.CLI
}

func (l liveSnapshot) Snapshot() models.Portfolio {
	return l.c.App.Adapter.Load(l.ctx)
}
