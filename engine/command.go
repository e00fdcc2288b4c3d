package engine

import "github.com/lixenwraith/vi-snake/terminal"

// Command is one operator action, at most one applied per tick
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdFaster
	CmdSlower
	CmdQuit
)

var commandNames = map[Command]string{
	CmdNone:   "none",
	CmdUp:     "up",
	CmdDown:   "down",
	CmdLeft:   "left",
	CmdRight:  "right",
	CmdFaster: "faster",
	CmdSlower: "slower",
	CmdQuit:   "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// runeCommands maps single-byte keys
var runeCommands = map[rune]Command{
	'w': CmdUp,
	'a': CmdLeft,
	's': CmdDown,
	'd': CmdRight,
	'+': CmdFaster,
	'=': CmdFaster,
	'-': CmdSlower,
	'_': CmdSlower,
	'q': CmdQuit,
	'Q': CmdQuit,
}

// CommandFor maps a decoded key to a command
func CommandFor(ev terminal.Event) Command {
	switch ev.Key {
	case terminal.KeyUp:
		return CmdUp
	case terminal.KeyDown:
		return CmdDown
	case terminal.KeyLeft:
		return CmdLeft
	case terminal.KeyRight:
		return CmdRight
	case terminal.KeyEscape, terminal.KeyCtrlC:
		return CmdQuit
	case terminal.KeyRune:
		return runeCommands[ev.Rune]
	}
	return CmdNone
}

// direction returns the heading a movement command selects
func (c Command) direction() (Direction, bool) {
	switch c {
	case CmdUp:
		return Up, true
	case CmdDown:
		return Down, true
	case CmdLeft:
		return Left, true
	case CmdRight:
		return Right, true
	}
	return Direction{}, false
}
