//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Init when stdin is not attached to a terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

type unixBackend struct {
	in      *os.File
	out     *os.File
	inFd    int
	oldTerm *term.State

	buf [1]byte
}

func newBackend() Backend {
	return &unixBackend{
		in:   os.Stdin,
		out:  os.Stdout,
		inFd: int(os.Stdin.Fd()),
	}
}

// Init captures the current state and applies the raw flag set.
// Output processing is left untouched so newline still returns the carriage.
func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}

	old, err := term.GetState(b.inFd)
	if err != nil {
		return fmt.Errorf("query terminal state: %w", err)
	}

	termios, err := unix.IoctlGetTermios(b.inFd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("query termios: %w", err)
	}

	raw := *termios
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(b.inFd, ioctlWriteTermios, &raw); err != nil {
		// Best effort: a partial apply must not survive
		term.Restore(b.inFd, old)
		return fmt.Errorf("apply raw mode: %w", err)
	}

	b.oldTerm = old
	return nil
}

func (b *unixBackend) Fini() {
	if b.oldTerm != nil {
		term.Restore(b.inFd, b.oldTerm)
		b.oldTerm = nil
	}
}

func (b *unixBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

// Poll waits for stdin readiness; EINTR counts as not ready
func (b *unixBackend) Poll(timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{
		{Fd: int32(b.inFd), Events: unix.POLLIN},
	}

	n, err := unix.Poll(fds, int(timeout/time.Millisecond))
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	// Hangup without data still has to surface as EOF on the next read
	return fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0, nil
}

func (b *unixBackend) ReadByte() (byte, error) {
	for {
		n, err := unix.Read(b.inFd, b.buf[:])
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return 0, err
		}
		if n == 0 {
			return 0, io.EOF
		}
		return b.buf[0], nil
	}
}
