package uimodel

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"mpctui/internal/keyseq"
)

var namedKeyByType = map[tea.KeyType]string{
	tea.KeyTab:       "Tab",
	tea.KeyShiftTab:  "BackTab",
	tea.KeyEnter:     "Enter",
	tea.KeyEsc:       "Esc",
	tea.KeyBackspace: "Backspace",
	tea.KeyDelete:    "Delete",
	tea.KeyInsert:    "Insert",
	tea.KeyUp:        "Up",
	tea.KeyDown:      "Down",
	tea.KeyLeft:      "Left",
	tea.KeyRight:     "Right",
	tea.KeyPgUp:      "PageUp",
	tea.KeyPgDown:    "PageDown",
	tea.KeyHome:      "Home",
	tea.KeyEnd:       "End",
	tea.KeySpace:     "Space",
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

// ctrlLetterByType covers the handful of ctrl+letter combos the default
// bindings use; bubbletea represents each as its own KeyType rather than a
// modifier flag on KeyRunes.
var ctrlLetterByType = map[tea.KeyType]rune{
	tea.KeyCtrlA: 'a', tea.KeyCtrlB: 'b', tea.KeyCtrlC: 'c', tea.KeyCtrlD: 'd',
	tea.KeyCtrlE: 'e', tea.KeyCtrlF: 'f', tea.KeyCtrlG: 'g', tea.KeyCtrlH: 'h',
	tea.KeyCtrlJ: 'j', tea.KeyCtrlK: 'k', tea.KeyCtrlL: 'l', tea.KeyCtrlN: 'n',
	tea.KeyCtrlO: 'o', tea.KeyCtrlP: 'p', tea.KeyCtrlQ: 'q', tea.KeyCtrlR: 'r',
	tea.KeyCtrlS: 's', tea.KeyCtrlT: 't', tea.KeyCtrlU: 'u', tea.KeyCtrlV: 'v',
	tea.KeyCtrlW: 'w', tea.KeyCtrlX: 'x', tea.KeyCtrlY: 'y', tea.KeyCtrlZ: 'z',
}

// keyFromTea converts a bubbletea key message into our own Key type. Keys
// with no representation in our closed named-key set or ctrl-letter table
// are reported as an error and dropped by the caller, just as the event
// loop drops a key the sequencer cannot match.
func keyFromTea(msg tea.KeyMsg) (keyseq.Key, error) {
	if r, ok := ctrlLetterByType[msg.Type]; ok {
		return keyseq.Key{Rune: r, Mods: keyseq.ModControl}, nil
	}

	if name, ok := namedKeyByType[msg.Type]; ok {
		var mods keyseq.Mod
		if msg.Alt {
			mods |= keyseq.ModAlt
		}

		return keyseq.Key{Named: name, Mods: mods}, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		var mods keyseq.Mod
		if msg.Alt {
			mods |= keyseq.ModAlt
		}

		return keyseq.Key{Rune: msg.Runes[0], Mods: mods}, nil
	}

	return keyseq.Key{}, fmt.Errorf("uimodel: unrepresentable key %v", msg)
}
