package terminal

import (
	"bytes"
	"errors"
	"io"
	"time"
)

// fakeBackend replays scripted input bytes and records output
type fakeBackend struct {
	input   []byte
	out     bytes.Buffer
	initErr error
	readErr error

	initCalls int
	finiCalls int
	polls     []time.Duration
}

func newFakeBackend(input ...byte) *fakeBackend {
	return &fakeBackend{input: input}
}

func (b *fakeBackend) Init() error {
	b.initCalls++
	return b.initErr
}

func (b *fakeBackend) Fini() {
	b.finiCalls++
}

func (b *fakeBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

func (b *fakeBackend) Poll(timeout time.Duration) (bool, error) {
	b.polls = append(b.polls, timeout)
	if b.readErr != nil {
		return true, nil
	}
	return len(b.input) > 0, nil
}

func (b *fakeBackend) ReadByte() (byte, error) {
	if b.readErr != nil {
		return 0, b.readErr
	}
	if len(b.input) == 0 {
		return 0, io.EOF
	}
	c := b.input[0]
	b.input = b.input[1:]
	return c, nil
}

var errFakeInit = errors.New("fake init failure")
