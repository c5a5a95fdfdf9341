package preview

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Markdown renders page as markdown for the terminal preview
func Markdown(page Page) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", page.Name)
	fmt.Fprintf(&b, "**%s**\n\n", page.Title)

	if len(page.Contacts) > 0 {
		parts := make([]string, 0, len(page.Contacts))
		for _, l := range page.Contacts {
			parts = append(parts, fmt.Sprintf("[%s](%s)", l.Label, l.URL))
		}
		b.WriteString(strings.Join(parts, " · "))
		b.WriteString("\n\n")
	}

	if page.ShowAbout {
		b.WriteString("## About Me\n\n")
		b.WriteString(page.Bio)
		b.WriteString("\n\n")
	}

	if page.ShowProjects {
		b.WriteString("## My Projects\n\n")
		for _, c := range page.Cards {
			fmt.Fprintf(&b, "### %s\n\n", c.Title)
			if c.HasTech {
				fmt.Fprintf(&b, "*Tech: %s*\n\n", c.Technologies)
			} else {
				fmt.Fprintf(&b, "*%s*\n\n", c.Technologies)
			}
			b.WriteString(c.Description)
			b.WriteString("\n\n")
			for _, l := range c.Links {
				fmt.Fprintf(&b, "- [%s](%s)\n", l.Label, l.URL)
			}
			if len(c.Links) > 0 {
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("---\n\n")
	b.WriteString(page.Footer)
	b.WriteString("\n")
	return b.String()
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Render draws page for a terminal pane of the given width.
// If glamour fails the raw markdown is returned.
func Render(page Page, width int) string {
	md := Markdown(page)
	renderer, err := getRenderer(width)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
