package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/thenoetrevino/folio/internal/config"
	"github.com/thenoetrevino/folio/internal/events"
	"github.com/thenoetrevino/folio/internal/export"
	"github.com/thenoetrevino/folio/internal/generation"
	"github.com/thenoetrevino/folio/internal/models"
	"github.com/thenoetrevino/folio/internal/persistence"
	"github.com/thenoetrevino/folio/internal/session"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config

	// Event system for live updates
	eventClient events.EventPublisher

	// Backend connection behind the slot, closed with the app
	slotCloser io.Closer

	Adapter   *persistence.Adapter
	Store     *session.Store
	Generator *generation.Coordinator
	Saver     export.Saver

	logger *slog.Logger
}

// Open connects the configured storage backend and builds the app on top of it
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	slot, closer, err := persistence.OpenSlot(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}
	a := New(ctx, cfg, slot, opts...)
	a.slotCloser = closer
	return a, nil
}

// New creates a new App with all services initialized over slot.
// The stored document is loaded once here.
func New(ctx context.Context, cfg *config.Config, slot persistence.Slot, opts ...Option) *App {
	ac := &appConfig{}
	for _, opt := range opts {
		opt(ac)
	}
	if ac.eventClient == nil {
		ac.eventClient = events.NewBroker(0)
	}
	if ac.logger == nil {
		ac.logger = slog.Default()
	}
	if ac.provider == nil {
		ac.provider = generation.NewGeminiProvider(cfg.Generation)
	}
	if ac.prompter == nil {
		ac.prompter = generation.NoopPrompter{}
	}
	if ac.saver == nil {
		ac.saver = export.DirSaver{Dir: cfg.Export.Dir}
	}

	adapter := persistence.NewAdapter(slot, cfg.Storage.Key)
	store := session.New(ctx, adapter, ac.eventClient, cfg.DebounceWindow())

	generator := generation.NewCoordinator(store, ac.provider,
		generation.WithPrompter(ac.prompter),
		generation.WithEventPublisher(ac.eventClient),
		generation.WithRateLimit(cfg.Generation.PerMinute()),
		generation.WithTimeout(time.Duration(cfg.Generation.TimeoutSeconds)*time.Second),
	)

	return &App{
		Config:      cfg,
		eventClient: ac.eventClient,
		Adapter:     adapter,
		Store:       store,
		Generator:   generator,
		Saver:       ac.saver,
		logger:      ac.logger,
	}
}

// ExportJSON writes portfolio_data.json and returns its path
func (a *App) ExportJSON() (string, error) {
	data, err := export.ToJSON(a.Store.Snapshot())
	if err != nil {
		return "", err
	}
	return a.Saver.Save(models.JSONExportFilename, data)
}

// ExportHTML writes portfolio.html and returns its path
func (a *App) ExportHTML(now time.Time) (string, error) {
	data, err := export.ToHTML(a.Store.Snapshot(), now.Year())
	if err != nil {
		return "", err
	}
	return a.Saver.Save(models.HTMLExportFilename, data)
}

// Close flushes pending saves and releases the storage backend
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if err := a.Store.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := a.eventClient.Close(); err != nil {
		errs = append(errs, err)
	}
	if a.slotCloser != nil {
		if err := a.slotCloser.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		a.logger.Error("failed to close app cleanly", "error", errors.Join(errs...))
	}
	return errors.Join(errs...)
}
