package editor

import (
	"errors"
	"fmt"
	"log"
)

// Apply executes a against the session and returns the follow-up action,
// if any. Actions that are not legal in the current mode are ignored.
func (s *Session) Apply(a Action) (Action, bool) {
	switch a.Kind {
	case ActionNone:
		return Action{}, false

	case ActionChangeMode:
		ev := evEscape
		if a.Insert {
			ev = evEnterInsert
		}
		next, ok := s.mode.next(ev)
		if !ok {
			return Action{}, false
		}
		s.setMode(next)
		return a, true

	case ActionMoveCursor:
		s.cursor = s.cursor.Move(s.buf, s.mode, a.DX, a.DY)
		s.follow()
		return Action{}, false
	case ActionMoveWord:
		s.cursor = s.cursor.MoveWord(s.buf, s.mode, a.Dir)
		s.follow()
		return Action{}, false
	case ActionLineStart:
		s.cursor = s.cursor.LineStart()
		s.follow()
		return Action{}, false
	case ActionLineEnd:
		s.cursor = s.cursor.LineEnd(s.buf, s.mode)
		s.follow()
		return Action{}, false
	case ActionPageUp:
		s.pageUp()
		return Action{}, false
	case ActionPageDown:
		s.pageDown()
		return Action{}, false

	case ActionInsertChar:
		if s.mode == ModeInsert {
			s.insertChar(a.Char)
		}
		return Action{}, false
	case ActionTab:
		if s.mode == ModeInsert {
			for i := 0; i < s.cfg.TabWidth; i++ {
				s.insertChar(' ')
			}
		}
		return Action{}, false
	case ActionDeleteChar:
		s.deleteForward()
		return Action{}, false
	case ActionBackspace:
		s.backspace()
		return Action{}, false

	case ActionSave:
		s.save()
		return Action{}, false
	case ActionSaveAs:
		prev := s.path
		s.path = a.Path
		if !s.save() {
			s.path = prev
			return Action{}, false
		}
		s.setSyntax()
		return Action{}, false
	case ActionSaveExit:
		if !s.save() {
			return Action{}, false
		}
		return Exit(), true

	case ActionStartCommand:
		next, ok := s.mode.next(evStartCommand)
		if !ok {
			return Action{}, false
		}
		s.cmdline = nil
		s.status = ""
		s.setMode(next)
		return a, true
	case ActionCommandInput:
		if s.mode != ModeCommand {
			return Action{}, false
		}
		s.cmdline = append(s.cmdline, a.Char)
		return Action{}, false
	case ActionCommandBackspace:
		if s.mode != ModeCommand {
			return Action{}, false
		}
		if len(s.cmdline) == 0 {
			s.setMode(ModeNormal)
			return ChangeMode(false), true
		}
		s.cmdline = s.cmdline[:len(s.cmdline)-1]
		return Action{}, false
	case ActionCommandSubmit:
		return s.submitCommand()

	default:
		return a, true
	}
}

func (s *Session) submitCommand() (Action, bool) {
	next, ok := s.mode.next(evCommandDone)
	if !ok {
		return Action{}, false
	}
	line := string(s.cmdline)
	s.setMode(next)

	cmd, err := ParseCommand(line)
	if err != nil {
		s.status = err.Error()
		return Action{}, false
	}
	if cmd.Kind == ActionNone {
		return Action{}, false
	}
	return s.Apply(cmd)
}

// save writes the buffer and reports the outcome in the status line.
func (s *Session) save() bool {
	if err := s.Save(); err != nil {
		if errors.Is(err, ErrNoFileName) {
			s.status = "No file name"
		} else {
			s.status = err.Error()
		}
		log.Printf("Session: save failed: %v", err)
		return false
	}
	s.status = fmt.Sprintf("%q %dL written", s.path, s.buf.LineCount())
	return true
}
