package engine

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/terminal"
)

type drawnCell struct {
	row, col int
	glyph    string
	style    render.Style
}

// recordingDisplay captures every draw call
type recordingDisplay struct {
	fields   int
	cells    []drawnCell
	banners  []string
	bells    int
	flushes  int
	flushErr error
	onBanner func()
}

func (d *recordingDisplay) DrawField() { d.fields++ }

func (d *recordingDisplay) DrawCell(row, col int, glyph string, style render.Style) {
	d.cells = append(d.cells, drawnCell{row: row, col: col, glyph: glyph, style: style})
}

func (d *recordingDisplay) DrawBanner(text string) {
	d.banners = append(d.banners, text)
	if d.onBanner != nil {
		d.onBanner()
	}
}

func (d *recordingDisplay) Bell() { d.bells++ }

func (d *recordingDisplay) Flush() error {
	d.flushes++
	return d.flushErr
}

// cellsWithGlyph returns draws of glyph in order
func (d *recordingDisplay) cellsWithGlyph(glyph string) []drawnCell {
	var out []drawnCell
	for _, c := range d.cells {
		if c.glyph == glyph {
			out = append(out, c)
		}
	}
	return out
}

// scriptedKeys replays one event per PollKey call, then KeyNone.
// WaitKey consumes from acks; an empty acks list reports io.EOF.
type scriptedKeys struct {
	polls   []terminal.Event
	acks    []terminal.Event
	pollErr error
}

func (k *scriptedKeys) PollKey() (terminal.Event, error) {
	if k.pollErr != nil {
		return terminal.Event{}, k.pollErr
	}
	if len(k.polls) == 0 {
		return terminal.Event{Key: terminal.KeyNone}, nil
	}
	ev := k.polls[0]
	k.polls = k.polls[1:]
	return ev, nil
}

func (k *scriptedKeys) WaitKey(ctx context.Context) (terminal.Event, error) {
	if err := ctx.Err(); err != nil {
		return terminal.Event{}, err
	}
	if len(k.acks) == 0 {
		return terminal.Event{}, io.EOF
	}
	ev := k.acks[0]
	k.acks = k.acks[1:]
	return ev, nil
}

// scriptedSampler returns queued values, then fallback
type scriptedSampler struct {
	values   []int
	fallback int
	calls    int
}

func (s *scriptedSampler) IntN(n int) int {
	s.calls++
	v := s.fallback
	if len(s.values) > 0 {
		v = s.values[0]
		s.values = s.values[1:]
	}
	return v % n
}

type countingChime struct{ plays int }

func (c *countingChime) PlayChime() { c.plays++ }

func runeKey(r rune) terminal.Event {
	return terminal.Event{Key: terminal.KeyRune, Rune: r}
}

type testRig struct {
	game    *Game
	display *recordingDisplay
	keys    *scriptedKeys
	clock   *MockTimeProvider
	rand    *scriptedSampler
	chime   *countingChime
}

func newTestRig(t *testing.T, cfg Config) *testRig {
	t.Helper()

	rig := &testRig{
		display: &recordingDisplay{},
		keys:    &scriptedKeys{},
		clock:   NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		rand:    &scriptedSampler{},
		chime:   &countingChime{},
	}

	g, err := NewGame(cfg, Deps{
		Display: rig.display,
		Keys:    rig.keys,
		Clock:   rig.clock,
		Rand:    rig.rand,
		Chime:   rig.chime,
	})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	rig.game = g
	return rig
}

// tick runs one full tick and fails the test on error
func (r *testRig) tick(t *testing.T) {
	t.Helper()
	if err := r.game.Tick(context.Background()); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
}

// growTo builds a straight body ending at head, heading right, length n
func (r *testRig) growTo(head Point, n int) {
	s := r.game.snake
	s.Reset(Point{X: head.X - n + 1, Y: head.Y})
	for i := n - 2; i >= 0; i-- {
		s.Move(Point{X: head.X - i, Y: head.Y}, true)
	}
	r.game.dir = Right
}
