package huhforms

import (
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/folio/internal/models"
)

// CreateProjectForm creates a huh form editing every field of draft in place
func CreateProjectForm(draft *models.Project) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key(string(models.ProjectFieldTitle)).
			Title(models.ProjectFieldTitle.Label()).
			Placeholder("e.g. Portfolio Builder").
			Value(&draft.Title),

		huh.NewText().
			Key(string(models.ProjectFieldDescription)).
			Title(models.ProjectFieldDescription.Label()).
			Placeholder("Describe the project, or press g later to generate one").
			Lines(4).
			Value(&draft.Description),

		huh.NewInput().
			Key(string(models.ProjectFieldTechnologies)).
			Title(models.ProjectFieldTechnologies.Label()).
			Placeholder("e.g. Go, PostgreSQL, Redis").
			Value(&draft.Technologies),

		huh.NewInput().
			Key(string(models.ProjectFieldLiveLink)).
			Title(models.ProjectFieldLiveLink.Label()).
			Placeholder("https://").
			Value(&draft.LiveLink),

		huh.NewInput().
			Key(string(models.ProjectFieldGithubLink)).
			Title(models.ProjectFieldGithubLink.Label()).
			Placeholder("https://github.com/").
			Value(&draft.GithubLink),

		huh.NewInput().
			Key(string(models.ProjectFieldImageURL)).
			Title(models.ProjectFieldImageURL.Label()).
			Value(&draft.ImageURL),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(true)
}
