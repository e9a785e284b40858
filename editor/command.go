package editor

import "strings"

// UnknownCommandError reports a command line that names no command.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return "Not an editor command: " + e.Command
}

// ParseCommand interprets a command line typed after ':'.
//
// An empty line yields an ActionNone action and no error.
func ParseCommand(line string) (Action, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Action{}, nil
	}

	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case "w":
		if arg != "" {
			return SaveAs(arg), nil
		}
		return Save(), nil
	case "q", "q!":
		if arg == "" {
			return Exit(), nil
		}
	case "wq", "x":
		if arg == "" {
			return SaveExit(), nil
		}
	}
	return Action{}, &UnknownCommandError{Command: line}
}
