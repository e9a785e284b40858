package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of every mode.
type KeyMap struct {
	Normal  NormalKeyMap
	Insert  InsertKeyMap
	Command CommandKeyMap
}

// NormalKeyMap is the static table shared by Normal and Command mode.
type NormalKeyMap struct {
	Quit, Save, EnterInsert, Escape, StartCommand key.Binding

	Up, Down, Left, Right     key.Binding
	WordForward, WordBackward key.Binding
	LineStart, LineEnd        key.Binding
	PageUp, PageDown          key.Binding

	Delete, Backspace, Tab, Enter key.Binding
}

// InsertKeyMap binds the non-character keys of Insert mode.
type InsertKeyMap struct {
	Escape                key.Binding
	Up, Down, Left, Right key.Binding
	LineStart, LineEnd    key.Binding

	Backspace, Delete, Tab, Enter key.Binding
}

// CommandKeyMap binds command line editing keys.
type CommandKeyMap struct {
	Cancel, Submit, Erase key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Normal: NormalKeyMap{
			Quit:         key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
			Save:         key.NewBinding(key.WithKeys("w", "ctrl+s"), key.WithHelp("w", "save")),
			EnterInsert:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
			Escape:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal")),
			StartCommand: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),

			Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
			Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
			Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),

			WordForward:  key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "next word")),
			WordBackward: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "previous word")),

			LineStart: key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("0", "line start")),
			LineEnd:   key.NewBinding(key.WithKeys("end", "$"), key.WithHelp("$", "line end")),
			PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
			PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),

			Delete:    key.NewBinding(key.WithKeys("delete", "x"), key.WithHelp("x", "delete")),
			Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete left")),
			Tab:       key.NewBinding(key.WithKeys("tab")),
			Enter:     key.NewBinding(key.WithKeys("enter")),
		},
		Insert: InsertKeyMap{
			Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal")),

			Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
			Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
			Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
			Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

			LineStart: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
			LineEnd:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

			Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete left")),
			Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
			Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
			Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		},
		Command: CommandKeyMap{
			Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
			Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
			Erase:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "erase")),
		},
	}
}
