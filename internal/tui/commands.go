package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/folio/internal/events"
)

// eventMsg carries one session event into Update
type eventMsg events.Event

// generationDoneMsg reports the end of a description request
type generationDoneMsg struct {
	projectID string
	err       error
}

// exportDoneMsg reports where an export landed
type exportDoneMsg struct {
	format string
	path   string
	err    error
}

// waitForEvent blocks on the subscription and delivers the next event.
// A closed channel ends the loop.
func waitForEvent(ch <-chan events.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(event)
	}
}

type describer interface {
	Generate(ctx context.Context, projectID string) (string, error)
}

// generateCmd runs the description request off the UI goroutine
func generateCmd(ctx context.Context, g describer, projectID string) tea.Cmd {
	return func() tea.Msg {
		_, err := g.Generate(ctx, projectID)
		return generationDoneMsg{projectID: projectID, err: err}
	}
}

// exportCmd runs one export off the UI goroutine
func exportCmd(format string, export func() (string, error)) tea.Cmd {
	return func() tea.Msg {
		path, err := export()
		return exportDoneMsg{format: format, path: path, err: err}
	}
}
