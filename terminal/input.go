package terminal

import (
	"context"
	"time"
)

// parseState is the escape decoder position
type parseState uint8

const (
	stateIdle       parseState = iota // nothing consumed
	stateEscape                       // consumed ESC
	stateIntroducer                   // consumed ESC [
)

const (
	byteEscape     = 0x1b
	byteIntroducer = '['
	byteCtrlC      = 0x03
)

// waitSlice bounds each blocking poll so context cancellation is observed
const waitSlice = 100 * time.Millisecond

var escapeEvent = Event{Key: KeyEscape, Rune: byteEscape}

// inputReader decodes keys from the backend without ever waiting on a partial sequence
type inputReader struct {
	backend Backend
}

// newInputReader creates a new input reader
func newInputReader(backend Backend) *inputReader {
	return &inputReader{backend: backend}
}

// poll returns KeyNone when no byte is ready. Every state checks readiness with a
// zero timeout; running dry after ESC or ESC [ yields a lone escape.
func (r *inputReader) poll() (Event, error) {
	state := stateIdle

	for {
		ready, err := r.backend.Poll(0)
		if err != nil {
			return Event{}, err
		}
		if !ready {
			if state == stateIdle {
				return Event{Key: KeyNone}, nil
			}
			return escapeEvent, nil
		}

		b, err := r.backend.ReadByte()
		if err != nil {
			return Event{}, err
		}

		switch state {
		case stateIdle:
			if b != byteEscape {
				return decodeByte(b), nil
			}
			state = stateEscape

		case stateEscape:
			if b != byteIntroducer {
				return escapeEvent, nil
			}
			state = stateIntroducer

		case stateIntroducer:
			if key, ok := csiArrows[b]; ok {
				return Event{Key: key}, nil
			}
			return escapeEvent, nil
		}
	}
}

// wait blocks until a key is decoded or ctx is done
func (r *inputReader) wait(ctx context.Context) (Event, error) {
	for {
		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		default:
		}

		ready, err := r.backend.Poll(waitSlice)
		if err != nil {
			return Event{}, err
		}
		if !ready {
			continue
		}

		ev, err := r.poll()
		if err != nil || ev.Key != KeyNone {
			return ev, err
		}
	}
}

// decodeByte maps a single non-escape byte
func decodeByte(b byte) Event {
	switch b {
	case byteCtrlC:
		return Event{Key: KeyCtrlC, Rune: rune(b)}
	case '\r', '\n':
		return Event{Key: KeyEnter, Rune: rune(b)}
	}
	return Event{Key: KeyRune, Rune: rune(b)}
}
