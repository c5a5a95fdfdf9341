package huhforms

import (
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/folio/internal/models"
)

// CreateProfileForm creates a huh form editing the top-level fields of draft in place
func CreateProfileForm(draft *models.Portfolio) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key(string(models.FieldName)).
			Title(models.FieldName.Label()).
			Value(&draft.Name),

		huh.NewInput().
			Key(string(models.FieldTitle)).
			Title(models.FieldTitle.Label()).
			Placeholder("e.g. Backend Engineer").
			Value(&draft.Title),

		huh.NewText().
			Key(string(models.FieldBio)).
			Title(models.FieldBio.Label()).
			Lines(4).
			Value(&draft.Bio),

		huh.NewInput().
			Key(string(models.FieldEmail)).
			Title(models.FieldEmail.Label()).
			Value(&draft.Email),

		huh.NewInput().
			Key(string(models.FieldGithubURL)).
			Title(models.FieldGithubURL.Label()).
			Placeholder("https://github.com/").
			Value(&draft.GithubURL),

		huh.NewInput().
			Key(string(models.FieldLinkedinURL)).
			Title(models.FieldLinkedinURL.Label()).
			Placeholder("https://linkedin.com/in/").
			Value(&draft.LinkedinURL),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(true)
}
