package terminal

import "time"

// Backend abstracts platform-specific terminal operations.
// The game loop is single-threaded; implementations are not required to be
// safe for concurrent use.
type Backend interface {
	// Lifecycle
	// Init captures the current attributes and switches to raw mode.
	// On error nothing has been changed.
	Init() error
	// Fini reapplies the attributes captured by Init.
	Fini()

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) (int, error)

	// Poll reports whether at least one input byte is ready, waiting at most timeout.
	// A zero timeout never blocks.
	Poll(timeout time.Duration) (bool, error)

	// ReadByte consumes one input byte. Callers Poll first.
	ReadByte() (byte, error)
}
