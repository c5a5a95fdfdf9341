// Package mutation holds the pure operations that turn one portfolio
// snapshot into the next. Nothing here performs I/O.
package mutation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/thenoetrevino/folio/internal/models"
)

// Operation is one edit to the document
type Operation interface {
	// Key names the edit target; edits sharing a key coalesce when debounced
	Key() string

	apply(doc models.Portfolio) (models.Portfolio, error)
}

// SetField replaces a top-level portfolio field
type SetField struct {
	Field models.Field
	Value string
}

// AddProject appends an empty project with the given ID
type AddProject struct {
	ID string
}

// UpdateProject replaces the project whose ID matches Project.ID
type UpdateProject struct {
	Project models.Project
}

// DeleteProject removes the project with the given ID
type DeleteProject struct {
	ID string
}

// NewProjectID mints an identifier for a new project
func NewProjectID() string {
	return uuid.NewString()
}

// Apply runs op against doc and returns the resulting snapshot.
// doc is never modified. On error the returned snapshot equals doc.
func Apply(doc models.Portfolio, op Operation) (models.Portfolio, error) {
	next, err := op.apply(doc.Clone())
	if err != nil {
		return doc, err
	}
	return next, nil
}

func (op SetField) Key() string { return "field:" + string(op.Field) }

func (op SetField) apply(doc models.Portfolio) (models.Portfolio, error) {
	switch op.Field {
	case models.FieldName:
		doc.Name = op.Value
	case models.FieldTitle:
		doc.Title = op.Value
	case models.FieldBio:
		doc.Bio = op.Value
	case models.FieldEmail:
		doc.Email = op.Value
	case models.FieldGithubURL:
		doc.GithubURL = op.Value
	case models.FieldLinkedinURL:
		doc.LinkedinURL = op.Value
	default:
		// Callers build fields through models.ParseField
		panic(fmt.Sprintf("mutation: unknown field %q", op.Field))
	}
	return doc, nil
}

func (op AddProject) Key() string { return "project:" + op.ID }

func (op AddProject) apply(doc models.Portfolio) (models.Portfolio, error) {
	if op.ID == "" {
		op.ID = NewProjectID()
	}
	if _, exists := doc.ProjectByID(op.ID); exists {
		return doc, fmt.Errorf("%w: %s", models.ErrDuplicateProject, op.ID)
	}
	doc.Projects = append(doc.Projects, models.NewProject(op.ID))
	return doc, nil
}

func (op UpdateProject) Key() string { return "project:" + op.Project.ID }

func (op UpdateProject) apply(doc models.Portfolio) (models.Portfolio, error) {
	for i := range doc.Projects {
		if doc.Projects[i].ID == op.Project.ID {
			doc.Projects[i] = op.Project
			return doc, nil
		}
	}
	return doc, fmt.Errorf("%w: %s", models.ErrProjectNotFound, op.Project.ID)
}

func (op DeleteProject) Key() string { return "project:" + op.ID }

func (op DeleteProject) apply(doc models.Portfolio) (models.Portfolio, error) {
	for i := range doc.Projects {
		if doc.Projects[i].ID == op.ID {
			doc.Projects = append(doc.Projects[:i], doc.Projects[i+1:]...)
			return doc, nil
		}
	}
	return doc, nil
}
