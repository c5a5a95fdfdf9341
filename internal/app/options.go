package app

import (
	"log/slog"

	"github.com/thenoetrevino/folio/internal/events"
	"github.com/thenoetrevino/folio/internal/export"
	"github.com/thenoetrevino/folio/internal/generation"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	provider    generation.Provider
	prompter    generation.CredentialPrompter
	saver       export.Saver
}

// WithEventPublisher sets the event publisher for the application
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithProvider replaces the Gemini provider, mostly for tests
func WithProvider(p generation.Provider) Option {
	return func(cfg *appConfig) {
		cfg.provider = p
	}
}

// WithPrompter sets how the user re-selects an API key
func WithPrompter(p generation.CredentialPrompter) Option {
	return func(cfg *appConfig) {
		cfg.prompter = p
	}
}

// WithSaver sets where exports are written
func WithSaver(s export.Saver) Option {
	return func(cfg *appConfig) {
		cfg.saver = s
	}
}
