package state

import (
	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/folio/internal/models"
)

// FormState manages all form-related state for the application.
// The drafts are bound to the huh fields by pointer, so they hold whatever
// the user has typed until the form completes or is aborted.
type FormState struct {
	// Profile form (name, title, bio, contacts)
	profileForm   *huh.Form
	profileDraft  models.Portfolio
	profileOrigin models.Portfolio

	// Project form (one project's fields)
	projectForm      *huh.Form
	projectDraft     models.Project
	projectOrigin    models.Project
	editingProjectID string
}

// NewFormState creates a new FormState with no open forms.
func NewFormState() *FormState {
	return &FormState{}
}

// --- Profile Form Methods ---

// ProfileForm returns the open profile form, or nil.
func (s *FormState) ProfileForm() *huh.Form { return s.profileForm }

// SetProfileForm replaces the profile form instance.
func (s *FormState) SetProfileForm(form *huh.Form) { s.profileForm = form }

// ProfileDraft returns the pointer the profile form writes into.
func (s *FormState) ProfileDraft() *models.Portfolio { return &s.profileDraft }

// ProfileOrigin returns the document as it was when the form opened.
func (s *FormState) ProfileOrigin() models.Portfolio { return s.profileOrigin }

// StartProfile seeds the draft from the current document.
func (s *FormState) StartProfile(doc models.Portfolio) *models.Portfolio {
	s.profileOrigin = doc.Clone()
	s.profileDraft = doc.Clone()
	return &s.profileDraft
}

// ClearProfile closes the profile form and drops the draft.
func (s *FormState) ClearProfile() {
	s.profileForm = nil
	s.profileDraft = models.Portfolio{}
	s.profileOrigin = models.Portfolio{}
}

// --- Project Form Methods ---

// ProjectForm returns the open project form, or nil.
func (s *FormState) ProjectForm() *huh.Form { return s.projectForm }

// SetProjectForm replaces the project form instance.
func (s *FormState) SetProjectForm(form *huh.Form) { s.projectForm = form }

// ProjectDraft returns the pointer the project form writes into.
func (s *FormState) ProjectDraft() *models.Project { return &s.projectDraft }

// EditingProjectID returns the ID of the project being edited.
func (s *FormState) EditingProjectID() string { return s.editingProjectID }

// ProjectOrigin returns the project as it was when the form opened.
func (s *FormState) ProjectOrigin() models.Project { return s.projectOrigin }

// StartProject seeds the draft from p and remembers which project is open.
func (s *FormState) StartProject(p models.Project) *models.Project {
	s.projectOrigin = p
	s.projectDraft = p
	s.editingProjectID = p.ID
	return &s.projectDraft
}

// ClearProject closes the project form and drops the draft.
func (s *FormState) ClearProject() {
	s.projectForm = nil
	s.projectDraft = models.Project{}
	s.projectOrigin = models.Project{}
	s.editingProjectID = ""
}
