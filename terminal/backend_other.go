//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import (
	"errors"
	"time"
)

// ErrUnsupportedPlatform is returned by Init where no raw-mode backend exists
var ErrUnsupportedPlatform = errors.New("terminal: raw mode is not supported on this platform")

// unsupportedBackend refuses Init, so Terminal never writes or restores anything
type unsupportedBackend struct{}

func newBackend() Backend {
	return unsupportedBackend{}
}

func (unsupportedBackend) Init() error                      { return ErrUnsupportedPlatform }
func (unsupportedBackend) Fini()                            {}
func (unsupportedBackend) Write(p []byte) (int, error)      { return 0, ErrUnsupportedPlatform }
func (unsupportedBackend) Poll(time.Duration) (bool, error) { return false, ErrUnsupportedPlatform }
func (unsupportedBackend) ReadByte() (byte, error)          { return 0, ErrUnsupportedPlatform }

// resetTerminalMode has no termios to restore here
func resetTerminalMode() {}
