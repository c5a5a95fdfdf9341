package models

import "fmt"

// Portfolio is the complete state of one editing session.
// It is always fully populated: no field is absent, only empty.
// Projects keeps insertion order, which is also display and export order.
type Portfolio struct {
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Bio         string    `json:"bio"`
	Email       string    `json:"email"`
	GithubURL   string    `json:"githubUrl"`
	LinkedinURL string    `json:"linkedinUrl"`
	Projects    []Project `json:"projects"`
}

// DefaultPortfolio returns the all-empty document
func DefaultPortfolio() Portfolio {
	return Portfolio{Projects: []Project{}}
}

// Clone returns a copy that shares no memory with p
func (p Portfolio) Clone() Portfolio {
	out := p
	out.Projects = make([]Project, len(p.Projects))
	copy(out.Projects, p.Projects)
	return out
}

// Normalize fills in zero values left by decoding so the document is complete
func (p Portfolio) Normalize() Portfolio {
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	return p
}

// Validate checks that every project has a non-empty ID used only once
func (p Portfolio) Validate() error {
	seen := make(map[string]struct{}, len(p.Projects))
	for i, proj := range p.Projects {
		if proj.ID == "" {
			return fmt.Errorf("project %d: %w", i, ErrMissingProjectID)
		}
		if _, ok := seen[proj.ID]; ok {
			return fmt.Errorf("project %q: %w", proj.ID, ErrDuplicateProject)
		}
		seen[proj.ID] = struct{}{}
	}
	return nil
}

// Get returns the value of a top-level field
func (p Portfolio) Get(f Field) string {
	switch f {
	case FieldName:
		return p.Name
	case FieldTitle:
		return p.Title
	case FieldBio:
		return p.Bio
	case FieldEmail:
		return p.Email
	case FieldGithubURL:
		return p.GithubURL
	case FieldLinkedinURL:
		return p.LinkedinURL
	}
	panic("models: unknown field " + string(f))
}

// ProjectByID returns the project with the given ID
func (p Portfolio) ProjectByID(id string) (Project, bool) {
	for _, proj := range p.Projects {
		if proj.ID == id {
			return proj, true
		}
	}
	return Project{}, false
}

// HasContact reports whether any contact channel is set
func (p Portfolio) HasContact() bool {
	return p.Email != "" || p.GithubURL != "" || p.LinkedinURL != ""
}
