package term

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"keycapper/internal/keyname"
)

var keyLabels = map[tea.KeyType]string{
	tea.KeyEnter:     "Return",
	tea.KeyTab:       "Tab",
	tea.KeyShiftTab:  "Shift+Tab",
	tea.KeyEsc:       "Esc",
	tea.KeyBackspace: "Backspace",
	tea.KeySpace:     "Space",
	tea.KeyDelete:    "Delete",
	tea.KeyInsert:    "Insert",
	tea.KeyUp:        "Up",
	tea.KeyDown:      "Down",
	tea.KeyLeft:      "Left",
	tea.KeyRight:     "Right",
	tea.KeyHome:      "Home",
	tea.KeyEnd:       "End",
	tea.KeyPgUp:      "PgUp",
	tea.KeyPgDown:    "PgDn",
	tea.KeyF1:        "F1",
	tea.KeyF2:        "F2",
	tea.KeyF3:        "F3",
	tea.KeyF4:        "F4",
	tea.KeyF5:        "F5",
	tea.KeyF6:        "F6",
	tea.KeyF7:        "F7",
	tea.KeyF8:        "F8",
	tea.KeyF9:        "F9",
	tea.KeyF10:       "F10",
	tea.KeyF11:       "F11",
	tea.KeyF12:       "F12",
}

// KeyLabel resolves a terminal key press. Terminals deliver characters
// rather than key codes, so runes print as typed and control keys read
// as Ctrl+<letter>.
func KeyLabel(msg tea.KeyMsg) string {
	var label string
	switch {
	case msg.Type == tea.KeyRunes:
		label = string(msg.Runes)
	default:
		if l, ok := keyLabels[msg.Type]; ok {
			label = l
		} else if name := (tea.Key{Type: msg.Type}).String(); strings.HasPrefix(name, "ctrl+") {
			label = "Ctrl+" + strings.ToUpper(strings.TrimPrefix(name, "ctrl+"))
		} else {
			label = keyname.Fallback(keyname.Code(msg.Type), false)
		}
	}
	if msg.Alt {
		label = "Alt+" + label
	}
	return label
}
