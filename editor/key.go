package editor

import (
	"strings"
	"unicode"
)

// KeyCode identifies the physical key of a Key.
type KeyCode uint8

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
)

var keyCodeNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyTab:       "tab",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
}

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModCtrl  Modifier = 1 << 1
)

// Key is an abstract keyboard event. Rune is set only for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
	Mod  Modifier
}

// RuneKey returns an unmodified character key.
func RuneKey(r rune) Key { return Key{Code: KeyRune, Rune: r} }

// CtrlKey returns Ctrl held with a letter key.
func CtrlKey(r rune) Key { return Key{Code: KeyRune, Rune: unicode.ToLower(r), Mod: ModCtrl} }

// SpecialKey returns an unmodified non-character key.
func SpecialKey(c KeyCode) Key { return Key{Code: c} }

// String renders k with Bubble Tea key names ("ctrl+w", "pgdown", "A"), so
// that bubbles/key bindings match it.
//
// Shift on a character key is carried by the rune itself and is not spelled
// out.
func (k Key) String() string {
	var sb strings.Builder
	if k.Mod&ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if k.Code == KeyRune {
		if k.Mod&ModCtrl != 0 {
			sb.WriteRune(unicode.ToLower(k.Rune))
		} else {
			sb.WriteRune(k.Rune)
		}
		return sb.String()
	}
	if k.Mod&ModShift != 0 {
		sb.WriteString("shift+")
	}
	sb.WriteString(keyCodeNames[k.Code])
	return sb.String()
}

// isText reports whether k types a character: a rune with no modifier or
// Shift only.
func (k Key) isText() bool {
	return k.Code == KeyRune && k.Mod&^ModShift == 0
}
