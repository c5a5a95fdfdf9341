package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Profile
	EditProfile string `yaml:"edit_profile"`

	// Projects
	AddProject      string `yaml:"add_project"`
	EditProject     string `yaml:"edit_project"`
	DeleteProject   string `yaml:"delete_project"`
	GenerateDetails string `yaml:"generate_description"`

	// Navigation
	PrevProject string `yaml:"prev_project"`
	NextProject string `yaml:"next_project"`

	// Export
	ExportJSON string `yaml:"export_json"`
	ExportHTML string `yaml:"export_html"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		EditProfile: "e",

		AddProject:      "a",
		EditProject:     "enter",
		DeleteProject:   "d",
		GenerateDetails: "g",

		PrevProject: "k",
		NextProject: "j",

		ExportJSON: "J",
		ExportHTML: "H",

		Quit: "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.EditProfile, defaults.EditProfile)
	fill(&k.AddProject, defaults.AddProject)
	fill(&k.EditProject, defaults.EditProject)
	fill(&k.DeleteProject, defaults.DeleteProject)
	fill(&k.GenerateDetails, defaults.GenerateDetails)
	fill(&k.PrevProject, defaults.PrevProject)
	fill(&k.NextProject, defaults.NextProject)
	fill(&k.ExportJSON, defaults.ExportJSON)
	fill(&k.ExportHTML, defaults.ExportHTML)
	fill(&k.Quit, defaults.Quit)
}
