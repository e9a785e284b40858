package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/cim/editor"
)

var specialKeys = map[tea.KeyType]editor.Key{
	tea.KeyEnter:     editor.SpecialKey(editor.KeyEnter),
	tea.KeyEsc:       editor.SpecialKey(editor.KeyEsc),
	tea.KeyBackspace: editor.SpecialKey(editor.KeyBackspace),
	tea.KeyDelete:    editor.SpecialKey(editor.KeyDelete),
	tea.KeyTab:       editor.SpecialKey(editor.KeyTab),
	tea.KeyUp:        editor.SpecialKey(editor.KeyUp),
	tea.KeyDown:      editor.SpecialKey(editor.KeyDown),
	tea.KeyLeft:      editor.SpecialKey(editor.KeyLeft),
	tea.KeyRight:     editor.SpecialKey(editor.KeyRight),
	tea.KeyHome:      editor.SpecialKey(editor.KeyHome),
	tea.KeyEnd:       editor.SpecialKey(editor.KeyEnd),
	tea.KeyPgUp:      editor.SpecialKey(editor.KeyPgUp),
	tea.KeyPgDown:    editor.SpecialKey(editor.KeyPgDown),

	tea.KeyShiftUp:    {Code: editor.KeyUp, Mod: editor.ModShift},
	tea.KeyShiftDown:  {Code: editor.KeyDown, Mod: editor.ModShift},
	tea.KeyShiftLeft:  {Code: editor.KeyLeft, Mod: editor.ModShift},
	tea.KeyShiftRight: {Code: editor.KeyRight, Mod: editor.ModShift},
	tea.KeyShiftTab:   {Code: editor.KeyTab, Mod: editor.ModShift},
}

// KeysFromMsg converts a Bubble Tea key message into editor keys. Pasted or
// buffered text yields one key per rune. Alt sequences yield nothing.
func KeysFromMsg(msg tea.KeyMsg) []editor.Key {
	if msg.Alt {
		return nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]editor.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r == '\r' {
				r = '\n'
			}
			if r == '\n' {
				keys = append(keys, editor.SpecialKey(editor.KeyEnter))
				continue
			}
			keys = append(keys, editor.RuneKey(r))
		}
		return keys
	case tea.KeySpace:
		return []editor.Key{editor.RuneKey(' ')}
	}

	if k, ok := specialKeys[msg.Type]; ok {
		return []editor.Key{k}
	}
	// Tab, Enter, Backspace and Esc share control codes and are matched
	// above.
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return []editor.Key{editor.CtrlKey(rune('a' + (msg.Type - tea.KeyCtrlA)))}
	}
	return nil
}
