// Package preview turns a portfolio into the view model shared by the HTML
// export, the HTTP preview and the terminal preview. All fallback text and
// section visibility is decided here.
package preview

import (
	"fmt"

	"github.com/thenoetrevino/folio/internal/models"
)

const (
	FallbackName         = "Your Name"
	FallbackTitle        = "Your Professional Title"
	FallbackBio          = "Write a compelling biography about yourself, your skills, and what drives you."
	FallbackProjectTitle = "Untitled Project"
	FallbackTechnologies = "No technologies listed"
	FallbackDescription  = "A concise description of the project, its goals, and key features."
	FallbackImageAlt     = "Project image"
	FallbackPageTitle    = "Personal Portfolio"
)

// Link is an anchor shown on the page
type Link struct {
	Label string
	URL   string
}

// Card is one rendered project
type Card struct {
	ID           string
	Title        string
	Technologies string
	HasTech      bool // show the "Tech: " label
	Description  string
	ImageURL     string
	ImageAlt     string
	Links        []Link
}

// Page is everything a renderer needs, with fallbacks already applied
type Page struct {
	DocumentTitle string
	Name          string
	Title         string
	Contacts      []Link
	ShowAbout     bool
	Bio           string
	ShowProjects  bool
	Cards         []Card
	Year          int
	Footer        string
}

// Build computes the page for doc. year is the copyright year in the footer.
func Build(doc models.Portfolio, year int) Page {
	name := or(doc.Name, FallbackName)

	page := Page{
		DocumentTitle: or(doc.Name, FallbackPageTitle),
		Name:          name,
		Title:         or(doc.Title, FallbackTitle),
		Contacts:      contacts(doc),
		ShowAbout:     doc.Bio != "" || doc.HasContact(),
		Bio:           or(doc.Bio, FallbackBio),
		ShowProjects:  len(doc.Projects) > 0,
		Year:          year,
		Footer:        fmt.Sprintf("© %d %s. All rights reserved.", year, name),
	}

	for _, p := range doc.Projects {
		page.Cards = append(page.Cards, card(p))
	}
	return page
}

func contacts(doc models.Portfolio) []Link {
	var links []Link
	if doc.Email != "" {
		links = append(links, Link{Label: "Email", URL: "mailto:" + doc.Email})
	}
	if doc.GithubURL != "" {
		links = append(links, Link{Label: "GitHub", URL: doc.GithubURL})
	}
	if doc.LinkedinURL != "" {
		links = append(links, Link{Label: "LinkedIn", URL: doc.LinkedinURL})
	}
	return links
}

func card(p models.Project) Card {
	c := Card{
		ID:           p.ID,
		Title:        or(p.Title, FallbackProjectTitle),
		Technologies: or(p.Technologies, FallbackTechnologies),
		HasTech:      p.Technologies != "",
		Description:  or(p.Description, FallbackDescription),
		ImageURL:     or(p.ImageURL, models.DefaultProjectImage),
		ImageAlt:     or(p.Title, FallbackImageAlt),
	}
	if p.LiveLink != "" {
		c.Links = append(c.Links, Link{Label: "Live Demo", URL: p.LiveLink})
	}
	if p.GithubLink != "" {
		c.Links = append(c.Links, Link{Label: "GitHub Repo", URL: p.GithubLink})
	}
	return c
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
