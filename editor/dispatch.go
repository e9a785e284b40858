package editor

import "github.com/charmbracelet/bubbles/key"

// Dispatch maps k to at most one Action for the given mode. ok is false when
// the key has no meaning in that mode.
func Dispatch(km KeyMap, mode Mode, k Key) (a Action, ok bool) {
	switch mode {
	case ModeInsert:
		return dispatchInsert(km.Insert, k)
	case ModeCommand:
		if a, ok := dispatchCommandLine(km.Command, k); ok {
			return a, true
		}
		return dispatchNormal(km.Normal, k)
	default:
		return dispatchNormal(km.Normal, k)
	}
}

func dispatchNormal(km NormalKeyMap, k Key) (Action, bool) {
	switch {
	case key.Matches(k, km.Quit):
		return Exit(), true
	case key.Matches(k, km.Save):
		return Save(), true
	case key.Matches(k, km.EnterInsert):
		return ChangeMode(true), true
	case key.Matches(k, km.Escape):
		return ChangeMode(false), true
	case key.Matches(k, km.StartCommand):
		return StartCommand(), true

	case key.Matches(k, km.Up):
		return MoveCursor(0, -1), true
	case key.Matches(k, km.Down):
		return MoveCursor(0, 1), true
	case key.Matches(k, km.Left):
		return MoveCursor(-1, 0), true
	case key.Matches(k, km.Right):
		return MoveCursor(1, 0), true

	case key.Matches(k, km.WordForward):
		return MoveWord(1), true
	case key.Matches(k, km.WordBackward):
		return MoveWord(-1), true

	case key.Matches(k, km.LineStart):
		return LineStart(), true
	case key.Matches(k, km.LineEnd):
		return LineEnd(), true
	case key.Matches(k, km.PageUp):
		return PageUp(), true
	case key.Matches(k, km.PageDown):
		return PageDown(), true

	case key.Matches(k, km.Delete):
		return DeleteChar(), true
	case key.Matches(k, km.Backspace):
		return Backspace(), true
	case key.Matches(k, km.Tab):
		return Tab(), true
	case key.Matches(k, km.Enter):
		return InsertChar('\n'), true
	}

	if k.isText() {
		return InsertChar(k.Rune), true
	}
	return Action{}, false
}

func dispatchInsert(km InsertKeyMap, k Key) (Action, bool) {
	switch {
	case key.Matches(k, km.Escape):
		return ChangeMode(false), true
	case k.isText():
		return InsertChar(k.Rune), true
	case key.Matches(k, km.Enter):
		return InsertChar('\n'), true
	case key.Matches(k, km.Backspace):
		return Backspace(), true
	case key.Matches(k, km.Delete):
		return DeleteChar(), true
	case key.Matches(k, km.Tab):
		return Tab(), true

	case key.Matches(k, km.Up):
		return MoveCursor(0, -1), true
	case key.Matches(k, km.Down):
		return MoveCursor(0, 1), true
	case key.Matches(k, km.Left):
		return MoveCursor(-1, 0), true
	case key.Matches(k, km.Right):
		return MoveCursor(1, 0), true
	case key.Matches(k, km.LineStart):
		return LineStart(), true
	case key.Matches(k, km.LineEnd):
		return LineEnd(), true
	default:
		return Action{}, false
	}
}

// dispatchCommandLine claims the keys that edit the command line. Anything
// else falls through to the Normal table.
func dispatchCommandLine(km CommandKeyMap, k Key) (Action, bool) {
	switch {
	case key.Matches(k, km.Cancel):
		return ChangeMode(false), true
	case key.Matches(k, km.Submit):
		return CommandSubmit(), true
	case key.Matches(k, km.Erase):
		return CommandBackspace(), true
	case k.isText():
		return CommandInput(k.Rune), true
	default:
		return Action{}, false
	}
}
