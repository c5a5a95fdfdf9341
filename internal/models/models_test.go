package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// ============================================================================
// Portfolio Tests
// ============================================================================

func TestDefaultPortfolio_MarshalsEmptyProjects(t *testing.T) {
	data, err := json.Marshal(DefaultPortfolio())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"name":"","title":"","bio":"","email":"","githubUrl":"","linkedinUrl":"","projects":[]}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestPortfolio_CloneIsIndependent(t *testing.T) {
	original := DefaultPortfolio()
	original.Projects = append(original.Projects, NewProject("a"))

	clone := original.Clone()
	clone.Projects[0].Title = "changed"

	if original.Projects[0].Title != "" {
		t.Errorf("Clone shares project memory with original")
	}
}

func TestPortfolio_Normalize(t *testing.T) {
	var p Portfolio
	if p.Normalize().Projects == nil {
		t.Error("Normalize should replace nil projects with an empty slice")
	}
}

func TestPortfolio_ProjectByID(t *testing.T) {
	p := DefaultPortfolio()
	p.Projects = []Project{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}

	got, ok := p.ProjectByID("b")
	if !ok || got.Title != "B" {
		t.Errorf("ProjectByID(b) = %+v, %v", got, ok)
	}

	if _, ok := p.ProjectByID("missing"); ok {
		t.Error("ProjectByID(missing) should not be found")
	}
}

func TestPortfolio_HasContact(t *testing.T) {
	p := DefaultPortfolio()
	if p.HasContact() {
		t.Error("empty portfolio should have no contact")
	}
	p.LinkedinURL = "https://linkedin.com/in/jane"
	if !p.HasContact() {
		t.Error("portfolio with linkedin should have contact")
	}
}

// ============================================================================
// Project Tests
// ============================================================================

func TestNewProject_UsesPlaceholderImage(t *testing.T) {
	p := NewProject("id-1")
	if p.ImageURL != DefaultProjectImage {
		t.Errorf("ImageURL = %q, want %q", p.ImageURL, DefaultProjectImage)
	}
	if p.Title != "" || p.Description != "" || p.Technologies != "" {
		t.Errorf("NewProject should have empty text fields, got %+v", p)
	}
}

func TestProject_WithAndGet(t *testing.T) {
	p := NewProject("id-1")
	for _, f := range ProjectFields {
		updated := p.With(f, "value-"+string(f))
		if updated.Get(f) != "value-"+string(f) {
			t.Errorf("With/Get(%s) round trip failed", f)
		}
		if updated.ID != "id-1" {
			t.Errorf("With(%s) changed the ID", f)
		}
	}
}

func TestProject_JSONKeyOrder(t *testing.T) {
	data, err := json.Marshal(Project{ID: "x"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	keys := []string{"id", "title", "description", "technologies", "liveLink", "githubLink", "imageUrl"}
	last := -1
	for _, k := range keys {
		idx := strings.Index(string(data), `"`+k+`"`)
		if idx <= last {
			t.Fatalf("key %q out of order in %s", k, data)
		}
		last = idx
	}
}

// ============================================================================
// Field Tests
// ============================================================================

func TestParseField(t *testing.T) {
	tests := []struct {
		input   string
		want    Field
		wantErr bool
	}{
		{"name", FieldName, false},
		{"GITHUBURL", FieldGithubURL, false},
		{" linkedinUrl ", FieldLinkedinURL, false},
		{"projects", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseField(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownField) {
					t.Errorf("ParseField(%q) error = %v, want ErrUnknownField", tt.input, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseField(%q) = %q, %v, want %q", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestParseProjectField(t *testing.T) {
	got, err := ParseProjectField("imageurl")
	if err != nil || got != ProjectFieldImageURL {
		t.Errorf("ParseProjectField(imageurl) = %q, %v", got, err)
	}

	if _, err := ParseProjectField("id"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("ParseProjectField(id) should fail, got %v", err)
	}
}

func TestErrors_Unique(t *testing.T) {
	if errors.Is(ErrProjectNotFound, ErrDuplicateProject) {
		t.Error("ErrProjectNotFound should not equal ErrDuplicateProject")
	}
	if errors.Is(ErrUnknownField, ErrProjectNotFound) {
		t.Error("ErrUnknownField should not equal ErrProjectNotFound")
	}
}

func TestLabels_CoverEveryField(t *testing.T) {
	for _, f := range Fields {
		if f.Label() == string(f) {
			t.Errorf("field %s has no label", f)
		}
	}
	for _, f := range ProjectFields {
		if f.Label() == string(f) {
			t.Errorf("project field %s has no label", f)
		}
	}
}
