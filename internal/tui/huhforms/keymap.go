package huhforms

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// CreateKeyMapWithShiftEnter creates a custom keymap that includes shift+enter
// for newlines in the bio and description fields, in addition to the default
// alt+enter and ctrl+j. Esc aborts the form instead of ctrl+c alone.
func CreateKeyMapWithShiftEnter() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter / alt+enter / ctrl+j", "new line"),
	)

	keymap.Quit = key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	)

	return keymap
}
