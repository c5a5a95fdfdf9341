package tui

import (
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/folio/internal/generation"
	"github.com/thenoetrevino/folio/internal/models"
	"github.com/thenoetrevino/folio/internal/mutation"
	"github.com/thenoetrevino/folio/internal/tui/huhforms"
	"github.com/thenoetrevino/folio/internal/tui/state"
)

const (
	missingInputsMessage = "Add a project title and technologies before generating a description."
	previewScrollStep    = 10
)

// Update routes messages by type first, then by mode
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.SetSize(msg.Width, msg.Height)
		m.ui.ScrollPreview(0, m.maxPreviewOffset())
		return m, nil

	case eventMsg:
		m.ui.ClampSelection(len(m.snapshot().Projects))
		return m, waitForEvent(m.events)

	case generationDoneMsg:
		m.handleGenerationDone(msg)
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			slog.Error("export failed", "format", msg.format, "error", msg.err)
			m.notifications.Add(state.LevelError, fmt.Sprintf("%s export failed: %v", msg.format, msg.err))
		} else {
			m.notifications.Add(state.LevelInfo, fmt.Sprintf("Exported %s to %s", msg.format, msg.path))
		}
		return m, nil
	}

	switch m.ui.Mode() {
	case state.ProfileFormMode:
		return m.updateProfileForm(msg)
	case state.ProjectFormMode:
		return m.updateProjectForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.ui.Mode() {
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(keyMsg)
	case state.HelpMode:
		return m.handleHelp(keyMsg)
	default:
		return m.handleNormal(keyMsg)
	}
}

func (m Model) handleNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	doc := m.snapshot()

	switch key {
	case m.keys.Quit, "ctrl+c":
		m.app.Store.Flush(m.ctx)
		m.unsubscribe()
		return m, tea.Quit

	case "?":
		m.ui.SetMode(state.HelpMode)
		return m, nil

	case m.keys.NextProject, "down":
		m.ui.ClampSelection(len(doc.Projects))
		m.ui.SelectNext(len(doc.Projects))
		return m, nil

	case m.keys.PrevProject, "up":
		m.ui.ClampSelection(len(doc.Projects))
		m.ui.SelectPrev()
		return m, nil

	case "pgdown", "ctrl+d":
		m.ui.ScrollPreview(previewScrollStep, m.maxPreviewOffset())
		return m, nil

	case "pgup", "ctrl+u":
		m.ui.ScrollPreview(-previewScrollStep, m.maxPreviewOffset())
		return m, nil

	case m.keys.EditProfile:
		return m.openProfileForm()

	case m.keys.AddProject:
		return m.addProject()

	case m.keys.EditProject:
		project, ok := m.selectedProject()
		if !ok {
			m.notifications.Add(state.LevelWarning, "No project selected. Press "+m.keys.AddProject+" to add one.")
			return m, nil
		}
		return m.openProjectForm(project)

	case m.keys.DeleteProject:
		if _, ok := m.selectedProject(); !ok {
			return m, nil
		}
		m.ui.SetMode(state.DeleteConfirmMode)
		return m, nil

	case m.keys.GenerateDetails:
		return m.generate()

	case m.keys.ExportJSON:
		return m, exportCmd("JSON", m.app.ExportJSON)

	case m.keys.ExportHTML:
		return m, exportCmd("HTML", func() (string, error) {
			return m.app.ExportHTML(m.now())
		})

	case "esc":
		m.notifications.Clear()
		return m, nil
	}

	return m, nil
}

func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		project, ok := m.selectedProject()
		m.ui.SetMode(state.NormalMode)
		if !ok {
			return m, nil
		}
		if err := m.app.Store.Dispatch(m.ctx, mutation.DeleteProject{ID: project.ID}); err != nil {
			m.notifications.Add(state.LevelError, "Failed to delete project: "+err.Error())
			return m, nil
		}
		m.ui.ClampSelection(len(m.snapshot().Projects))
		return m, nil

	case "n", "N", "esc":
		m.ui.SetMode(state.NormalMode)
	}
	return m, nil
}

func (m Model) handleHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", m.keys.Quit:
		m.ui.SetMode(state.NormalMode)
	}
	return m, nil
}

// addProject appends an empty project, selects it, and opens its form
func (m Model) addProject() (tea.Model, tea.Cmd) {
	id := mutation.NewProjectID()
	if err := m.app.Store.Dispatch(m.ctx, mutation.AddProject{ID: id}); err != nil {
		m.notifications.Add(state.LevelError, "Failed to add project: "+err.Error())
		return m, nil
	}

	doc := m.snapshot()
	m.ui.SetSelected(len(doc.Projects) - 1)
	m.ui.ClampSelection(len(doc.Projects))

	project, _ := doc.ProjectByID(id)
	return m.openProjectForm(project)
}

// generate starts a description request for the selected project.
// The request is never sent without a title and technologies.
func (m Model) generate() (tea.Model, tea.Cmd) {
	project, ok := m.selectedProject()
	if !ok {
		return m, nil
	}
	if !generation.CanGenerate(project) {
		m.notifications.Add(state.LevelWarning, missingInputsMessage)
		return m, nil
	}
	if m.app.Generator.Status(project.ID).State == generation.Generating {
		return m, nil
	}
	return m, generateCmd(m.ctx, m.app.Generator, project.ID)
}

func (m Model) handleGenerationDone(msg generationDoneMsg) {
	switch {
	case msg.err == nil:
		m.notifications.Add(state.LevelInfo, "Description generated")
	case errors.Is(msg.err, generation.ErrGenerationInProgress):
	case errors.Is(msg.err, generation.ErrMissingInputs):
		m.notifications.Add(state.LevelWarning, missingInputsMessage)
	default:
		// The card shows the coordinator's message; the toast keeps it short.
		m.notifications.Add(state.LevelError, "Description generation failed")
	}
}

// --- Forms ---

func (m Model) openProfileForm() (tea.Model, tea.Cmd) {
	draft := m.forms.StartProfile(m.snapshot())
	form := huhforms.CreateProfileForm(draft).WithTheme(huhforms.CreateFolioTheme(m.app.Config.ColorScheme))
	m.forms.SetProfileForm(form)
	m.ui.SetMode(state.ProfileFormMode)
	return m, form.Init()
}

func (m Model) openProjectForm(project models.Project) (tea.Model, tea.Cmd) {
	draft := m.forms.StartProject(project)
	form := huhforms.CreateProjectForm(draft).WithTheme(huhforms.CreateFolioTheme(m.app.Config.ColorScheme))
	m.forms.SetProjectForm(form)
	m.ui.SetMode(state.ProjectFormMode)
	return m, form.Init()
}

func (m Model) updateProfileForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := m.forms.ProfileForm()
	if form == nil {
		m.ui.SetMode(state.NormalMode)
		return m, nil
	}

	updated, cmd := form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		form = f
		m.forms.SetProfileForm(f)
	}

	switch form.State {
	case huh.StateCompleted:
		m.submitProfile()
		m.forms.ClearProfile()
		m.ui.SetMode(state.NormalMode)
	case huh.StateAborted:
		m.forms.ClearProfile()
		m.ui.SetMode(state.NormalMode)
	}
	return m, cmd
}

func (m Model) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := m.forms.ProjectForm()
	if form == nil {
		m.ui.SetMode(state.NormalMode)
		return m, nil
	}

	updated, cmd := form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		form = f
		m.forms.SetProjectForm(f)
	}

	switch form.State {
	case huh.StateCompleted:
		m.submitProject()
		m.forms.ClearProject()
		m.ui.SetMode(state.NormalMode)
	case huh.StateAborted:
		m.forms.ClearProject()
		m.ui.SetMode(state.NormalMode)
	}
	return m, cmd
}

// submitProfile sends each field the user changed as its own debounced edit
func (m Model) submitProfile() {
	origin := m.forms.ProfileOrigin()
	draft := m.forms.ProfileDraft()

	for _, f := range models.Fields {
		value := draft.Get(f)
		if value == origin.Get(f) {
			continue
		}
		if err := m.app.Store.DispatchDebounced(m.ctx, mutation.SetField{Field: f, Value: value}); err != nil {
			m.notifications.Add(state.LevelError, fmt.Sprintf("Failed to update %s: %v", f.Label(), err))
			return
		}
	}
}

// submitProject applies the changed fields onto the latest version of the
// project, so a description generated while the form was open survives
// unless the user edited the description too.
func (m Model) submitProject() {
	origin := m.forms.ProjectOrigin()
	draft := m.forms.ProjectDraft()

	current, ok := m.snapshot().ProjectByID(m.forms.EditingProjectID())
	if !ok {
		m.notifications.Add(state.LevelError, "Project no longer exists")
		return
	}

	next := current
	for _, f := range models.ProjectFields {
		if value := draft.Get(f); value != origin.Get(f) {
			next = next.With(f, value)
		}
	}
	if next == current {
		return
	}
	if err := m.app.Store.DispatchDebounced(m.ctx, mutation.UpdateProject{Project: next}); err != nil {
		m.notifications.Add(state.LevelError, "Failed to update project: "+err.Error())
	}
}
