// Package tui is the interactive editor: a project list and profile on the
// left, the live rendered preview on the right.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/folio/internal/app"
	"github.com/thenoetrevino/folio/internal/config"
	"github.com/thenoetrevino/folio/internal/events"
	"github.com/thenoetrevino/folio/internal/models"
	"github.com/thenoetrevino/folio/internal/tui/state"
)

// Model is the bubbletea model for the editor.
// All mutable state lives behind pointers so value copies made by
// Update share it.
type Model struct {
	ctx    context.Context
	app    *app.App
	keys   config.KeyMappings
	styles styles
	now    func() time.Time

	ui            *state.UIState
	forms         *state.FormState
	notifications *state.NotificationState

	events      <-chan events.Event
	unsubscribe func()
}

// InitialModel builds the editor over a, subscribed to its session events
func InitialModel(ctx context.Context, a *app.App) Model {
	ch, unsubscribe := a.Store.Subscribe()
	return Model{
		ctx:           ctx,
		app:           a,
		keys:          a.Config.KeyMappings,
		styles:        newStyles(a.Config.ColorScheme),
		now:           time.Now,
		ui:            state.NewUIState(),
		forms:         state.NewFormState(),
		notifications: state.NewNotificationState(),
		events:        ch,
		unsubscribe:   unsubscribe,
	}
}

// Init starts listening for session events
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m Model) snapshot() models.Portfolio {
	return m.app.Store.Snapshot()
}

// selectedProject returns the highlighted project, if there is one
func (m Model) selectedProject() (models.Project, bool) {
	doc := m.snapshot()
	m.ui.ClampSelection(len(doc.Projects))
	if len(doc.Projects) == 0 {
		return models.Project{}, false
	}
	return doc.Projects[m.ui.Selected()], true
}

// Run starts the editor and blocks until the user quits
func Run(ctx context.Context, a *app.App) error {
	m := InitialModel(ctx, a)
	defer m.unsubscribe()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
