package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/folio/internal/config/colors"
	"github.com/thenoetrevino/folio/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Email:", "Tech:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Projects"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Edit))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Delete))
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// RenderField renders "Label: value", or a muted dash when value is empty
func RenderField(label, value string) string {
	if value == "" {
		value = SubtitleStyle.Render("-")
	} else {
		value = ValueStyle.Render(value)
	}
	return LabelStyle.Render(label+":") + " " + value
}

// RenderPortfolio renders the profile fields and a one-line summary per project
func RenderPortfolio(doc models.Portfolio) string {
	var b strings.Builder
	for _, f := range models.Fields {
		b.WriteString(RenderField(f.Label(), doc.Get(f)))
		b.WriteString("\n")
	}

	b.WriteString(SectionStyle.Render(fmt.Sprintf("Projects (%d)", len(doc.Projects))))
	for _, p := range doc.Projects {
		title := p.Title
		if title == "" {
			title = "Untitled Project"
		}
		fmt.Fprintf(&b, "\n  %s %s", TitleStyle.Render(title), SubtitleStyle.Render(p.ID))
	}
	return RenderCard(b.String())
}

// RenderProject renders every field of one project
func RenderProject(p models.Project) string {
	var b strings.Builder
	b.WriteString(RenderField("ID", p.ID))
	for _, f := range models.ProjectFields {
		b.WriteString("\n")
		b.WriteString(RenderField(f.Label(), p.Get(f)))
	}
	return RenderCard(b.String())
}
