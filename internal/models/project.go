package models

// Project is one entry in the portfolio's project sequence.
// Every string field uses "" as its unset value.
type Project struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	LiveLink     string `json:"liveLink"`
	GithubLink   string `json:"githubLink"`
	ImageURL     string `json:"imageUrl"`
}

// NewProject returns an empty project carrying the placeholder image
func NewProject(id string) Project {
	return Project{
		ID:       id,
		ImageURL: DefaultProjectImage,
	}
}

// GetID returns the project identifier
func (p Project) GetID() string {
	return p.ID
}

// Get returns the value of a project field
func (p Project) Get(f ProjectField) string {
	switch f {
	case ProjectFieldTitle:
		return p.Title
	case ProjectFieldDescription:
		return p.Description
	case ProjectFieldTechnologies:
		return p.Technologies
	case ProjectFieldLiveLink:
		return p.LiveLink
	case ProjectFieldGithubLink:
		return p.GithubLink
	case ProjectFieldImageURL:
		return p.ImageURL
	}
	panic("models: unknown project field " + string(f))
}

// With returns a copy of the project with one field replaced
func (p Project) With(f ProjectField, value string) Project {
	switch f {
	case ProjectFieldTitle:
		p.Title = value
	case ProjectFieldDescription:
		p.Description = value
	case ProjectFieldTechnologies:
		p.Technologies = value
	case ProjectFieldLiveLink:
		p.LiveLink = value
	case ProjectFieldGithubLink:
		p.GithubLink = value
	case ProjectFieldImageURL:
		p.ImageURL = value
	default:
		panic("models: unknown project field " + string(f))
	}
	return p
}
