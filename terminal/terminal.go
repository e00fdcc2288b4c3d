package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// outputBufferSize holds a full field redraw in one flush
const outputBufferSize = 16384

// Terminal owns the controlling terminal for the lifetime of the process
type Terminal struct {
	backend Backend
	output  *bufio.Writer
	input   *inputReader

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal on stdin/stdout
func New() *Terminal {
	return NewWithBackend(newBackend())
}

// NewWithBackend creates a Terminal over an arbitrary backend
func NewWithBackend(b Backend) *Terminal {
	return &Terminal{
		backend: b,
		output:  bufio.NewWriterSize(b, outputBufferSize),
		input:   newInputReader(b),
	}
}

// Init enters raw mode and hides the cursor.
// A failed Init leaves the terminal exactly as it was found.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	t.output.Write(csiCursorHide)
	if err := t.output.Flush(); err != nil {
		t.backend.Fini()
		return fmt.Errorf("terminal init: %w", err)
	}

	t.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	w := t.output
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiEraseBelow)
	w.Flush()

	// Backend cleanup
	t.backend.Fini()

	t.finalized = true
}

// Output returns the buffered writer all rendering goes through
func (t *Terminal) Output() *bufio.Writer {
	return t.output
}

// PollKey returns the next key without blocking; Key is KeyNone when nothing is pending
func (t *Terminal) PollKey() (Event, error) {
	return t.input.poll()
}

// WaitKey blocks until a key arrives or ctx is done
func (t *Terminal) WaitKey(ctx context.Context) (Event, error) {
	return t.input.wait(ctx)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
