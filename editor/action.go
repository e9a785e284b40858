package editor

import "fmt"

// ActionKind identifies the semantic action requested by input handling.
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionExit
	ActionSave
	ActionSaveExit
	ActionChangeMode
	ActionMoveCursor
	ActionMoveWord
	ActionLineStart
	ActionLineEnd
	ActionPageUp
	ActionPageDown
	ActionStartCommand
	ActionInsertChar
	ActionDeleteChar
	ActionBackspace
	ActionTab

	// Command line editing.
	ActionCommandInput
	ActionCommandBackspace
	ActionCommandSubmit
	ActionSaveAs
)

var actionNames = [...]string{
	ActionNone:             "None",
	ActionExit:             "Exit",
	ActionSave:             "Save",
	ActionSaveExit:         "SaveExit",
	ActionChangeMode:       "ChangeMode",
	ActionMoveCursor:       "MoveCursor",
	ActionMoveWord:         "MoveWord",
	ActionLineStart:        "LineStart",
	ActionLineEnd:          "LineEnd",
	ActionPageUp:           "PageUp",
	ActionPageDown:         "PageDown",
	ActionStartCommand:     "StartCommand",
	ActionInsertChar:       "InsertChar",
	ActionDeleteChar:       "DeleteChar",
	ActionBackspace:        "Backspace",
	ActionTab:              "Tab",
	ActionCommandInput:     "CommandInput",
	ActionCommandBackspace: "CommandBackspace",
	ActionCommandSubmit:    "CommandSubmit",
	ActionSaveAs:           "SaveAs",
}

func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return fmt.Sprintf("ActionKind(%d)", k)
}

// Action is a transient semantic command. Only the fields relevant to Kind
// are set.
type Action struct {
	Kind ActionKind

	// Insert is the target of ChangeMode: true for Insert, false for Normal.
	Insert bool
	// DX and DY are the deltas of MoveCursor.
	DX, DY int
	// Dir is the direction of MoveWord: >0 forward, <0 backward.
	Dir int
	// Char is the rune of InsertChar and CommandInput.
	Char rune
	// Path is the target of SaveAs.
	Path string
}

func Exit() Action                  { return Action{Kind: ActionExit} }
func Save() Action                  { return Action{Kind: ActionSave} }
func SaveExit() Action              { return Action{Kind: ActionSaveExit} }
func ChangeMode(insert bool) Action { return Action{Kind: ActionChangeMode, Insert: insert} }
func MoveCursor(dx, dy int) Action  { return Action{Kind: ActionMoveCursor, DX: dx, DY: dy} }
func MoveWord(dir int) Action       { return Action{Kind: ActionMoveWord, Dir: dir} }
func LineStart() Action             { return Action{Kind: ActionLineStart} }
func LineEnd() Action               { return Action{Kind: ActionLineEnd} }
func PageUp() Action                { return Action{Kind: ActionPageUp} }
func PageDown() Action              { return Action{Kind: ActionPageDown} }
func StartCommand() Action          { return Action{Kind: ActionStartCommand} }
func InsertChar(c rune) Action      { return Action{Kind: ActionInsertChar, Char: c} }
func DeleteChar() Action            { return Action{Kind: ActionDeleteChar} }
func Backspace() Action             { return Action{Kind: ActionBackspace} }
func Tab() Action                   { return Action{Kind: ActionTab} }
func CommandInput(c rune) Action    { return Action{Kind: ActionCommandInput, Char: c} }
func CommandBackspace() Action      { return Action{Kind: ActionCommandBackspace} }
func CommandSubmit() Action         { return Action{Kind: ActionCommandSubmit} }
func SaveAs(path string) Action     { return Action{Kind: ActionSaveAs, Path: path} }

func (a Action) String() string {
	switch a.Kind {
	case ActionChangeMode:
		return fmt.Sprintf("ChangeMode(%t)", a.Insert)
	case ActionMoveCursor:
		return fmt.Sprintf("MoveCursor(%d,%d)", a.DX, a.DY)
	case ActionMoveWord:
		return fmt.Sprintf("MoveWord(%d)", a.Dir)
	case ActionInsertChar, ActionCommandInput:
		return fmt.Sprintf("%s(%q)", a.Kind, a.Char)
	case ActionSaveAs:
		return fmt.Sprintf("SaveAs(%q)", a.Path)
	default:
		return a.Kind.String()
	}
}
