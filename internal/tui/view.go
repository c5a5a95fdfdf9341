package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/folio/internal/generation"
	"github.com/thenoetrevino/folio/internal/models"
	"github.com/thenoetrevino/folio/internal/preview"
	"github.com/thenoetrevino/folio/internal/tui/state"
)

const (
	minEditorWidth = 30
	maxEditorWidth = 60
	// border plus horizontal padding of a pane
	paneFrame = 4
)

// View renders the editor pane, the preview pane, and the status bar
func (m Model) View() string {
	if m.ui.Width() == 0 {
		return "Loading..."
	}

	editorWidth, previewWidth := m.paneWidths()
	height := m.bodyHeight()

	left := m.styles.Pane.
		Width(editorWidth - 2).
		Height(height - 2).
		Render(m.viewEditor(editorWidth-paneFrame, height-2))

	right := m.styles.Pane.
		Width(previewWidth - 2).
		Height(height - 2).
		Render(m.viewPreview(height - 2))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		m.viewStatusBar(),
	)
}

func (m Model) paneWidths() (int, int) {
	width := m.ui.Width()
	editor := width * 2 / 5
	if editor < minEditorWidth {
		editor = minEditorWidth
	}
	if editor > maxEditorWidth {
		editor = maxEditorWidth
	}
	if editor > width {
		editor = width
	}
	return editor, width - editor
}

// bodyHeight leaves one line each for the header and status bar
func (m Model) bodyHeight() int {
	h := m.ui.Height() - 2
	if h < 3 {
		return 3
	}
	return h
}

func (m Model) viewHeader() string {
	doc := m.snapshot()
	name := doc.Name
	if name == "" {
		name = preview.FallbackName
	}
	return m.styles.ModeBadge.Render(m.ui.Mode().String()) + " " +
		m.styles.Title.Render("folio") + m.styles.Subtle.Render(" · "+name)
}

func (m Model) viewStatusBar() string {
	if m.ui.Mode() == state.DeleteConfirmMode {
		project, _ := m.selectedProject()
		title := project.Title
		if title == "" {
			title = preview.FallbackProjectTitle
		}
		return m.styles.Error.Render(fmt.Sprintf("Delete %q? (y/n)", title))
	}

	if m.notifications.HasAny() {
		return m.notifications.Render(1, m.renderNotification)
	}

	hints := []string{
		m.keys.EditProfile + " profile",
		m.keys.AddProject + " add",
		m.keys.EditProject + " edit",
		m.keys.DeleteProject + " delete",
		m.keys.GenerateDetails + " generate",
		m.keys.ExportJSON + "/" + m.keys.ExportHTML + " export",
		"? help",
		m.keys.Quit + " quit",
	}
	return m.styles.StatusBar.Render(strings.Join(hints, " · "))
}

func (m Model) renderNotification(n state.Notification) string {
	switch n.Level {
	case state.LevelError:
		return m.styles.Error.Render(n.Message)
	case state.LevelWarning:
		return m.styles.Label.Render(n.Message)
	default:
		return m.styles.Title.Render(n.Message)
	}
}

// --- Editor pane ---

func (m Model) viewEditor(width, height int) string {
	switch m.ui.Mode() {
	case state.ProfileFormMode:
		if form := m.forms.ProfileForm(); form != nil {
			return m.styles.Title.Render("Edit Profile") + "\n\n" + form.View()
		}
	case state.ProjectFormMode:
		if form := m.forms.ProjectForm(); form != nil {
			return m.styles.Title.Render("Edit Project") + "\n\n" + form.View()
		}
	case state.HelpMode:
		return m.viewHelp()
	}

	doc := m.snapshot()
	profile := m.viewProfile(doc, width)
	remaining := height - lipgloss.Height(profile) - 2

	header := m.styles.Title.Render(fmt.Sprintf("Projects (%d)", len(doc.Projects)))
	return lipgloss.JoinVertical(lipgloss.Left,
		profile,
		"",
		header,
		m.viewCards(doc.Projects, width, remaining),
	)
}

func (m Model) viewProfile(doc models.Portfolio, width int) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Profile"))
	b.WriteString("\n")
	for _, f := range []models.Field{models.FieldName, models.FieldTitle, models.FieldEmail} {
		value := doc.Get(f)
		if value == "" {
			value = m.styles.Subtle.Render("not set")
		} else {
			value = truncate(value, width-len(f.Label())-2)
		}
		b.WriteString(m.styles.Label.Render(f.Label()+": ") + value + "\n")
	}
	b.WriteString(m.styles.Subtle.Render("press " + m.keys.EditProfile + " to edit"))
	return b.String()
}

// viewCards renders as many cards as fit, scrolled so the selection is visible
func (m Model) viewCards(projects []models.Project, width, height int) string {
	if len(projects) == 0 {
		return m.styles.Subtle.Render("No projects yet. Press " + m.keys.AddProject + " to add one.")
	}

	m.ui.ClampSelection(len(projects))
	selected := m.ui.Selected()

	cards := make([]string, len(projects))
	for i, p := range projects {
		cards[i] = m.viewCard(p, i == selected, width)
	}

	// Walk back from the selection until the space runs out.
	start := selected
	used := lipgloss.Height(cards[selected])
	for start > 0 && used+lipgloss.Height(cards[start-1]) <= height {
		start--
		used += lipgloss.Height(cards[start])
	}

	visible := []string{}
	used = 0
	for i := start; i < len(cards); i++ {
		h := lipgloss.Height(cards[i])
		if used+h > height && i > selected {
			break
		}
		visible = append(visible, cards[i])
		used += h
	}
	return lipgloss.JoinVertical(lipgloss.Left, visible...)
}

func (m Model) viewCard(p models.Project, active bool, width int) string {
	inner := width - paneFrame
	if inner < 10 {
		inner = 10
	}

	var lines []string
	if p.Title == "" {
		lines = append(lines, m.styles.Subtle.Render(preview.FallbackProjectTitle))
	} else {
		lines = append(lines, m.styles.CardTitle.Render(truncate(p.Title, inner)))
	}

	if p.Technologies == "" {
		lines = append(lines, m.styles.Subtle.Render(preview.FallbackTechnologies))
	} else {
		lines = append(lines, m.styles.Label.Render("Tech: ")+truncate(p.Technologies, inner-6))
	}

	if p.Description != "" {
		lines = append(lines, truncate(firstLine(p.Description), inner))
	}

	status := m.app.Generator.Status(p.ID)
	switch {
	case status.State == generation.Generating:
		lines = append(lines, m.styles.Generating.Render("Generating..."))
	case status.Error != "":
		lines = append(lines, m.styles.Error.Render(wordwrap.String(status.Error, inner)))
	case active && !generation.CanGenerate(p):
		lines = append(lines, m.styles.Subtle.Render("add title and technologies to generate"))
	}

	style := m.styles.Card
	if active {
		style = m.styles.CardActive
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func (m Model) viewHelp() string {
	rows := [][2]string{
		{m.keys.PrevProject + " / " + m.keys.NextProject, "select project"},
		{m.keys.EditProfile, "edit profile"},
		{m.keys.AddProject, "add project"},
		{m.keys.EditProject, "edit selected project"},
		{m.keys.DeleteProject, "delete selected project"},
		{m.keys.GenerateDetails, "generate description"},
		{m.keys.ExportJSON, "export JSON"},
		{m.keys.ExportHTML, "export HTML"},
		{"pgup / pgdown", "scroll preview"},
		{"esc", "dismiss notifications"},
		{m.keys.Quit, "quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(m.styles.KeyHint.Render(fmt.Sprintf("%-14s", r[0])))
		b.WriteString(" " + r[1] + "\n")
	}
	return b.String()
}

// --- Preview pane ---

func (m Model) previewLines() []string {
	_, previewWidth := m.paneWidths()
	page := preview.Build(m.snapshot(), m.now().Year())
	rendered := preview.Render(page, previewWidth-paneFrame)
	return strings.Split(rendered, "\n")
}

func (m Model) maxPreviewOffset() int {
	lines := len(m.previewLines())
	visible := m.bodyHeight() - 2
	if lines <= visible {
		return 0
	}
	return lines - visible
}

func (m Model) viewPreview(height int) string {
	lines := m.previewLines()
	offset := m.ui.PreviewOffset()
	if offset > len(lines) {
		offset = len(lines)
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
