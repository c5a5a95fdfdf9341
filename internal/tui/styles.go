package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/folio/internal/config/colors"
)

// styles holds every lipgloss style the editor renders with.
// Built once from the configured color scheme.
type styles struct {
	Title      lipgloss.Style
	ModeBadge  lipgloss.Style
	Pane       lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	CardTitle  lipgloss.Style
	Label      lipgloss.Style
	Subtle     lipgloss.Style
	Generating lipgloss.Style
	Error      lipgloss.Style
	Info       lipgloss.Style
	Warning    lipgloss.Style
	StatusBar  lipgloss.Style
	Dialog     lipgloss.Style
	KeyHint    lipgloss.Style
}

func newStyles(c colors.ColorScheme) styles {
	accent := lipgloss.Color(c.Accent)
	edit := lipgloss.Color(c.Edit)
	del := lipgloss.Color(c.Delete)
	border := lipgloss.Color(c.PaneBorder)
	selected := lipgloss.Color(c.SelectedBorder)
	subtle := lipgloss.Color(c.Subtle)
	normal := lipgloss.Color(c.Normal)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		ModeBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Padding(0, 1),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		Card:       card,
		CardActive: card.BorderForeground(selected),
		CardTitle:  lipgloss.NewStyle().Bold(true).Foreground(normal),
		Label:      lipgloss.NewStyle().Foreground(edit),
		Subtle:     lipgloss.NewStyle().Foreground(subtle).Italic(true),
		Generating: lipgloss.NewStyle().Foreground(accent).Italic(true),
		Error:      lipgloss.NewStyle().Foreground(del),
		Info: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Warning: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(edit).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().Foreground(subtle),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(del).
			Padding(0, 1),
		KeyHint: lipgloss.NewStyle().Foreground(accent).Bold(true),
	}
}
