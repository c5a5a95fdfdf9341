package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/folio/internal/app"
	"github.com/thenoetrevino/folio/internal/cli/styles"
	"github.com/thenoetrevino/folio/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	ctx context.Context

	// owned is false when the app was injected by the caller and outlives the command
	owned bool
}

// NewCLI loads config and opens the configured storage backend
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &CLI{
		App:   application,
		ctx:   ctx,
		owned: true,
	}, nil
}

// Close writes pending edits and releases the app if this CLI opened it
func (c *CLI) Close() error {
	if !c.owned {
		c.App.Store.Flush(c.ctx)
		return nil
	}
	return c.App.Close(c.ctx)
}
