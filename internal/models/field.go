package models

import (
	"fmt"
	"strings"
)

// Field names a top-level portfolio field. Values match the JSON keys.
type Field string

const (
	FieldName        Field = "name"
	FieldTitle       Field = "title"
	FieldBio         Field = "bio"
	FieldEmail       Field = "email"
	FieldGithubURL   Field = "githubUrl"
	FieldLinkedinURL Field = "linkedinUrl"
)

// Fields lists the editable top-level fields in declaration order
var Fields = []Field{
	FieldName,
	FieldTitle,
	FieldBio,
	FieldEmail,
	FieldGithubURL,
	FieldLinkedinURL,
}

// Label returns the form label shown for the field
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Your Name"
	case FieldTitle:
		return "Professional Title"
	case FieldBio:
		return "Short Bio"
	case FieldEmail:
		return "Email"
	case FieldGithubURL:
		return "GitHub Profile URL"
	case FieldLinkedinURL:
		return "LinkedIn Profile URL"
	}
	return string(f)
}

// ParseField maps user input to a Field, ignoring case
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (must be one of: %s)", ErrUnknownField, s, joinFields(Fields))
}

// ProjectField names an editable project field. Values match the JSON keys.
type ProjectField string

const (
	ProjectFieldTitle        ProjectField = "title"
	ProjectFieldDescription  ProjectField = "description"
	ProjectFieldTechnologies ProjectField = "technologies"
	ProjectFieldLiveLink     ProjectField = "liveLink"
	ProjectFieldGithubLink   ProjectField = "githubLink"
	ProjectFieldImageURL     ProjectField = "imageUrl"
)

// ProjectFields lists the editable project fields in declaration order
var ProjectFields = []ProjectField{
	ProjectFieldTitle,
	ProjectFieldDescription,
	ProjectFieldTechnologies,
	ProjectFieldLiveLink,
	ProjectFieldGithubLink,
	ProjectFieldImageURL,
}

// Label returns the form label shown for the field
func (f ProjectField) Label() string {
	switch f {
	case ProjectFieldTitle:
		return "Project Title"
	case ProjectFieldDescription:
		return "Project Description"
	case ProjectFieldTechnologies:
		return "Technologies Used (comma-separated)"
	case ProjectFieldLiveLink:
		return "Live Demo Link"
	case ProjectFieldGithubLink:
		return "GitHub Repository Link"
	case ProjectFieldImageURL:
		return "Project Image URL (optional)"
	}
	return string(f)
}

// ParseProjectField maps user input to a ProjectField, ignoring case
func ParseProjectField(s string) (ProjectField, error) {
	for _, f := range ProjectFields {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (must be one of: %s)", ErrUnknownField, s, joinFields(ProjectFields))
}

func joinFields[T ~string](fields []T) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
