package editor

// Mode is the editing mode of a Session.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

type modeEvent uint8

const (
	evEnterInsert modeEvent = iota
	evEscape
	evStartCommand
	evCommandDone
)

// modeTransitions lists every legal transition. Events missing for a mode
// are rejected.
var modeTransitions = map[Mode]map[modeEvent]Mode{
	ModeNormal: {
		evEnterInsert:  ModeInsert,
		evEscape:       ModeNormal,
		evStartCommand: ModeCommand,
	},
	ModeInsert: {
		evEnterInsert: ModeInsert,
		evEscape:      ModeNormal,
	},
	ModeCommand: {
		evEscape:       ModeNormal,
		evStartCommand: ModeCommand,
		evCommandDone:  ModeNormal,
	},
}

// next returns the mode reached from m on ev, and false when ev is not
// legal in m.
func (m Mode) next(ev modeEvent) (Mode, bool) {
	to, ok := modeTransitions[m][ev]
	if !ok {
		return m, false
	}
	return to, true
}
