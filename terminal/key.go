// @focus: #sys { io } #input { keys }
package terminal

// Key represents a parsed input key
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Any other single byte (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyCtrlC

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Event is one decoded key press
type Event struct {
	Key  Key
	Rune rune
}

// keyToName maps Key constants to log-friendly names
var keyToName = map[Key]string{
	KeyNone:   "none",
	KeyRune:   "rune",
	KeyEscape: "escape",
	KeyEnter:  "enter",
	KeyCtrlC:  "ctrl_c",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
}

func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "unknown"
}

// Arrow finals after ESC [
var csiArrows = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
}
