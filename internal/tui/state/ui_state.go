package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	ProfileFormMode               // Editing the profile fields with huh
	ProjectFormMode               // Editing one project with huh
	DeleteConfirmMode             // Confirming project deletion
	HelpMode                      // Displaying help screen
)

// String returns a short name for the mode, used in the status bar
func (m Mode) String() string {
	switch m {
	case ProfileFormMode:
		return "PROFILE"
	case ProjectFormMode:
		return "PROJECT"
	case DeleteConfirmMode:
		return "DELETE"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// UIState manages the user interface state.
// This includes the project selection, the preview scroll position,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selected is the index of the highlighted project card
	selected int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// previewOffset is the first visible line of the preview pane
	previewOffset int
}

// NewUIState creates a new UIState in normal mode with nothing selected.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

func (s *UIState) Mode() Mode        { return s.mode }
func (s *UIState) SetMode(mode Mode) { s.mode = mode }
func (s *UIState) Width() int        { return s.width }
func (s *UIState) Height() int       { return s.height }
func (s *UIState) Selected() int     { return s.selected }
func (s *UIState) PreviewOffset() int {
	return s.previewOffset
}

// SetSize records the terminal dimensions
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// ClampSelection keeps the selection inside [0, count).
// With no projects the selection is 0.
func (s *UIState) ClampSelection(count int) {
	if count <= 0 {
		s.selected = 0
		return
	}
	if s.selected >= count {
		s.selected = count - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

// SelectNext moves the selection down, stopping at the last project.
// Returns false if the selection did not move.
func (s *UIState) SelectNext(count int) bool {
	if s.selected+1 >= count {
		return false
	}
	s.selected++
	return true
}

// SelectPrev moves the selection up, stopping at the first project.
// Returns false if the selection did not move.
func (s *UIState) SelectPrev() bool {
	if s.selected == 0 {
		return false
	}
	s.selected--
	return true
}

// SetSelected jumps to index i without bounds checks; call ClampSelection after.
func (s *UIState) SetSelected(i int) {
	s.selected = i
}

// ScrollPreview moves the preview window by delta lines within [0, maxOffset]
func (s *UIState) ScrollPreview(delta, maxOffset int) {
	s.previewOffset += delta
	if s.previewOffset > maxOffset {
		s.previewOffset = maxOffset
	}
	if s.previewOffset < 0 {
		s.previewOffset = 0
	}
}
