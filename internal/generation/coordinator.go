package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/folio/internal/events"
	"github.com/thenoetrevino/folio/internal/models"
	"github.com/thenoetrevino/folio/internal/mutation"
	"golang.org/x/time/rate"
)

// State is the generation state of one project
type State int

const (
	Idle State = iota
	Generating
)

func (s State) String() string {
	if s == Generating {
		return "generating"
	}
	return "idle"
}

// Status is the state and last error shown under a project card
type Status struct {
	State State
	Error string
}

const (
	failurePrefix   = "Failed to generate description. Please check your API key and try again. "
	providerPrefix  = "Failed to generate description: "
	credentialRetry = "API key might have been reset. Please try generating description again after selecting a key."
)

// documentStore defines the session methods needed by the coordinator
type documentStore interface {
	Snapshot() models.Portfolio
	DispatchDebounced(ctx context.Context, op mutation.Operation) error
}

// Coordinator runs description requests, at most one per project at a time
type Coordinator struct {
	store     documentStore
	provider  Provider
	prompter  CredentialPrompter
	publisher events.EventPublisher
	limiter   *rate.Limiter
	timeout   time.Duration

	mu       sync.Mutex
	statuses map[string]Status
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithPrompter sets the credential re-selection capability
func WithPrompter(p CredentialPrompter) Option {
	return func(c *Coordinator) { c.prompter = p }
}

// WithEventPublisher publishes state transitions
func WithEventPublisher(p events.EventPublisher) Option {
	return func(c *Coordinator) { c.publisher = p }
}

// WithRateLimit caps provider calls per minute. Zero or less disables the limit.
func WithRateLimit(perMinute int) Option {
	return func(c *Coordinator) {
		if perMinute <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
	}
}

// WithTimeout bounds each provider call
func WithTimeout(d time.Duration) Option {
	return func(c *Coordinator) { c.timeout = d }
}

// NewCoordinator creates a coordinator that commits results into store
func NewCoordinator(store documentStore, provider Provider, opts ...Option) *Coordinator {
	c := &Coordinator{
		store:    store,
		provider: provider,
		prompter: NoopPrompter{},
		limiter:  rate.NewLimiter(rate.Inf, 1),
		statuses: make(map[string]Status),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CanGenerate reports whether project has the inputs a request needs
func CanGenerate(p models.Project) bool {
	return p.Title != "" && p.Technologies != ""
}

// Status returns the current state of projectID
func (c *Coordinator) Status(projectID string) Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statuses[projectID]
}

// Generate requests a description for projectID and commits it on success.
// Failures are recorded in Status and returned; nothing is retried.
func (c *Coordinator) Generate(ctx context.Context, projectID string) (string, error) {
	project, ok := c.store.Snapshot().ProjectByID(projectID)
	if !ok {
		return "", fmt.Errorf("%w: %s", models.ErrProjectNotFound, projectID)
	}
	if !CanGenerate(project) {
		return "", ErrMissingInputs
	}

	if !c.begin(projectID) {
		return "", ErrGenerationInProgress
	}

	description, err := c.call(ctx, project)
	if err != nil {
		c.finish(projectID, c.failureMessage(ctx, err))
		return "", err
	}

	if err := c.commit(ctx, projectID, description); err != nil {
		c.finish(projectID, err.Error())
		return "", err
	}

	c.finish(projectID, "")
	return description, nil
}

// begin moves projectID to Generating unless it already is
func (c *Coordinator) begin(projectID string) bool {
	c.mu.Lock()
	if c.statuses[projectID].State == Generating {
		c.mu.Unlock()
		return false
	}
	c.statuses[projectID] = Status{State: Generating}
	c.mu.Unlock()

	c.publish(projectID)
	return true
}

func (c *Coordinator) finish(projectID, errMsg string) {
	c.mu.Lock()
	c.statuses[projectID] = Status{State: Idle, Error: errMsg}
	c.mu.Unlock()

	c.publish(projectID)
}

func (c *Coordinator) call(ctx context.Context, project models.Project) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	slog.Info("generating project description", "project_id", project.ID)
	return c.provider.Generate(ctx, Request{
		Title:        project.Title,
		Technologies: project.Technologies,
		Draft:        project.Description,
	})
}

// commit writes the description into the latest version of the project
func (c *Coordinator) commit(ctx context.Context, projectID, description string) error {
	current, ok := c.store.Snapshot().ProjectByID(projectID)
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrProjectNotFound, projectID)
	}
	current.Description = description
	return c.store.DispatchDebounced(ctx, mutation.UpdateProject{Project: current})
}

func (c *Coordinator) failureMessage(ctx context.Context, err error) string {
	slog.Error("failed to generate description", "error", err)

	if IsCredentialError(err) {
		if perr := c.prompter.PromptCredential(ctx); perr != nil {
			slog.Warn("credential prompt failed", "error", perr)
		}
		return credentialRetry
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		return failurePrefix + pe.Error()
	}
	return failurePrefix + providerPrefix + err.Error()
}

func (c *Coordinator) publish(projectID string) {
	if c.publisher == nil {
		return
	}
	if err := c.publisher.SendEvent(events.Event{
		Type:      events.EventGenerationChanged,
		ProjectID: projectID,
	}); err != nil {
		slog.Debug("failed to send generation event", "project_id", projectID, "error", err)
	}
}
