package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/terminal"
)

// scriptedBackend replays queued input bytes and records output
type scriptedBackend struct {
	input   []byte
	out     bytes.Buffer
	initErr error
	inits   int
	finis   int
}

func (b *scriptedBackend) Init() error {
	b.inits++
	return b.initErr
}

func (b *scriptedBackend) Fini() { b.finis++ }

func (b *scriptedBackend) Write(p []byte) (int, error) { return b.out.Write(p) }

func (b *scriptedBackend) Poll(time.Duration) (bool, error) { return len(b.input) > 0, nil }

func (b *scriptedBackend) ReadByte() (byte, error) {
	if len(b.input) == 0 {
		return 0, io.EOF
	}
	c := b.input[0]
	b.input = b.input[1:]
	return c, nil
}

func init() {
	log.SetOutput(io.Discard)
}

func TestRunQuitKeyRestoresTerminal(t *testing.T) {
	backend := &scriptedBackend{input: []byte{'q'}}
	term := terminal.NewWithBackend(backend)

	if err := run(context.Background(), term, options{seed: 1}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if backend.finis != 1 {
		t.Errorf("Expected terminal restored once, got %d", backend.finis)
	}

	out := backend.out.String()
	if !strings.HasPrefix(out, "\x1b[?25l") {
		t.Errorf("Expected cursor hidden first, got %q", out[:min(len(out), 16)])
	}
	if !strings.Contains(out, "┌") || !strings.Contains(out, "┘") {
		t.Error("Expected the field border to be drawn")
	}
	if !strings.HasSuffix(out, "\x1b[?25h\x1b[0m\x1b[0J") {
		t.Errorf("Expected restoration sequence last, got %q", out[max(0, len(out)-24):])
	}

	// Fini after run is a no-op
	term.Fini()
	if backend.finis != 1 {
		t.Errorf("Expected Fini to stay idempotent, got %d", backend.finis)
	}
}

func TestRunInterruptRestoresTerminal(t *testing.T) {
	backend := &scriptedBackend{}
	term := terminal.NewWithBackend(backend)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	if err := run(ctx, term, options{seed: 1}); err != nil {
		t.Fatalf("Expected interrupt to exit cleanly, got %v", err)
	}
	if backend.finis != 1 {
		t.Errorf("Expected terminal restored once, got %d", backend.finis)
	}
}

func TestRunInitFailureLeavesTerminalUntouched(t *testing.T) {
	errNoTTY := errors.New("not a tty")
	backend := &scriptedBackend{initErr: errNoTTY}
	term := terminal.NewWithBackend(backend)

	err := run(context.Background(), term, options{})
	if !errors.Is(err, errNoTTY) {
		t.Fatalf("Expected init error, got %v", err)
	}
	if backend.out.Len() != 0 {
		t.Errorf("Expected no output after failed init, got %q", backend.out.String())
	}
	if backend.finis != 0 {
		t.Errorf("Expected no restoration after failed init, got %d", backend.finis)
	}
}
