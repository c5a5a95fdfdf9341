// Package colors holds the TUI color presets
package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Edit   string `yaml:"edit"`   // Blue - edit dialogs
	Delete string `yaml:"delete"` // Red - delete confirmations and errors

	// UI element colors
	PaneBorder     string `yaml:"pane_border"`
	SelectedBorder string `yaml:"selected_border"`

	// Text colors
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
}

// Default returns the purple theme
func Default() *ColorScheme {
	return &ColorScheme{
		Preset:         "default",
		Accent:         "#874BFD",
		Edit:           "#3B82F6",
		Delete:         "#EF4444",
		PaneBorder:     "62",
		SelectedBorder: "#874BFD",
		Subtle:         "240",
		Normal:         "252",
	}
}

// Monochrome returns a black and white theme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset:         "monochrome",
		Accent:         "15",
		Edit:           "250",
		Delete:         "15",
		PaneBorder:     "245",
		SelectedBorder: "15",
		Subtle:         "242",
		Normal:         "252",
	}
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Edit == "" {
		c.Edit = preset.Edit
	}
	if c.Delete == "" {
		c.Delete = preset.Delete
	}
	if c.PaneBorder == "" {
		c.PaneBorder = preset.PaneBorder
	}
	if c.SelectedBorder == "" {
		c.SelectedBorder = preset.SelectedBorder
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
}
