package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/terminal"
)

// Phase is the game state machine position
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseRoundOver
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseRoundOver:
		return "round_over"
	case PhaseQuit:
		return "quit"
	}
	return "unknown"
}

// Display receives field drawing; cell rows/cols are 1-based from the field origin
type Display interface {
	DrawField()
	DrawCell(row, col int, glyph string, style render.Style)
	DrawBanner(text string)
	Bell()
	Flush() error
}

// KeySource supplies operator input
type KeySource interface {
	// PollKey never blocks; KeyNone means nothing pending
	PollKey() (terminal.Event, error)
	// WaitKey blocks until a key arrives or ctx is done
	WaitKey(ctx context.Context) (terminal.Event, error)
}

// Sampler picks food coordinates; *rand.Rand from math/rand/v2 satisfies it
type Sampler interface {
	IntN(n int) int
}

// Chime is an optional extra food pickup sound
type Chime interface {
	PlayChime()
}

// Config holds field geometry and pacing
type Config struct {
	Cols int
	Rows int

	InitialSpeed int
	SpeedStep    int
	MinSpeed     int
	MaxSpeed     int

	GameOverPause time.Duration
}

// DefaultConfig returns the standard 60x20 field
func DefaultConfig() Config {
	return Config{
		Cols:          constants.FieldCols,
		Rows:          constants.FieldRows,
		InitialSpeed:  constants.InitialSpeed,
		SpeedStep:     constants.SpeedStep,
		MinSpeed:      constants.MinSpeed,
		MaxSpeed:      constants.MaxSpeed,
		GameOverPause: constants.GameOverPause,
	}
}

// Validate rejects geometry and speed ranges the loop cannot run with
func (c Config) Validate() error {
	if c.Cols < 1 || c.Rows < 1 {
		return fmt.Errorf("field %dx%d: dimensions must be positive", c.Cols, c.Rows)
	}
	if c.MinSpeed < 1 || c.MinSpeed > c.MaxSpeed {
		return fmt.Errorf("speed range [%d,%d] is invalid", c.MinSpeed, c.MaxSpeed)
	}
	if c.InitialSpeed < c.MinSpeed || c.InitialSpeed > c.MaxSpeed {
		return fmt.Errorf("initial speed %d outside [%d,%d]", c.InitialSpeed, c.MinSpeed, c.MaxSpeed)
	}
	if c.SpeedStep < 1 {
		return fmt.Errorf("speed step %d must be positive", c.SpeedStep)
	}
	return nil
}

// Deps are the game's collaborators
type Deps struct {
	Display Display
	Keys    KeySource
	Clock   Clock
	Rand    Sampler
	Chime   Chime // optional
}

// RoundStats summarizes one round
type RoundStats struct {
	Ticks        int
	FoodEaten    int
	FoodRejected int
	Length       int
}

// Game owns all round state. Not safe for concurrent use; the loop is single-threaded.
type Game struct {
	cfg     Config
	display Display
	keys    KeySource
	clock   Clock
	rng     Sampler
	chime   Chime

	snake   *Snake
	dir     Direction
	food    Point
	hasFood bool
	speed   int
	phase   Phase
	stats   RoundStats
	rounds  int
}

// NewGame creates a game in a fresh round
func NewGame(cfg Config, deps Deps) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Display == nil || deps.Keys == nil || deps.Clock == nil || deps.Rand == nil {
		return nil, errMissingDependency
	}

	g := &Game{
		cfg:     cfg,
		display: deps.Display,
		keys:    deps.Keys,
		clock:   deps.Clock,
		rng:     deps.Rand,
		chime:   deps.Chime,
		snake:   NewSnake(cfg.Cols * cfg.Rows),
	}
	g.Reset()
	return g, nil
}

// Reset starts a new round: single cell at field center heading right, no food, initial speed
func (g *Game) Reset() {
	g.snake.Reset(Point{X: g.cfg.Cols / 2, Y: g.cfg.Rows / 2})
	g.dir = Right
	g.hasFood = false
	g.speed = g.cfg.InitialSpeed
	g.phase = PhasePlaying
	g.stats = RoundStats{Length: 1}
}

// Step advances the round by one frame of motion, without pacing or input
func (g *Game) Step() {
	g.stats.Ticks++

	if !g.hasFood {
		g.placeFood()
	}

	// Vacate visually before deciding whether the tail really moves
	g.drawAt(g.snake.Tail(), constants.GlyphEmpty, render.StyleDefault)

	head := g.snake.Head()
	grow := g.hasFood && head == g.food
	if grow {
		g.hasFood = false
		g.stats.FoodEaten++
		g.display.Bell()
		if g.chime != nil {
			g.chime.PlayChime()
		}
	}

	next := head.Step(g.dir, g.cfg.Cols, g.cfg.Rows)
	if g.snake.Move(next, grow) {
		g.phase = PhaseRoundOver
	}
	g.stats.Length = g.snake.Len()

	g.drawAt(next, constants.GlyphHead, render.StyleGreen)
}

// Tick runs one full iteration: step, flush, sleep, then at most one command
func (g *Game) Tick(ctx context.Context) error {
	g.Step()

	if err := g.display.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}

	if err := g.clock.Sleep(ctx, g.TickInterval()); err != nil {
		g.phase = PhaseQuit
		return nil
	}

	ev, err := g.keys.PollKey()
	if err != nil {
		return fmt.Errorf("poll key: %w", err)
	}
	g.Apply(CommandFor(ev))
	return nil
}

// Apply executes one operator command
func (g *Game) Apply(cmd Command) {
	if d, ok := cmd.direction(); ok {
		g.Turn(d)
		return
	}

	switch cmd {
	case CmdFaster:
		if g.speed < g.cfg.MaxSpeed {
			g.speed = min(g.speed+g.cfg.SpeedStep, g.cfg.MaxSpeed)
		}
	case CmdSlower:
		if g.speed > g.cfg.MinSpeed {
			g.speed = max(g.speed-g.cfg.SpeedStep, g.cfg.MinSpeed)
		}
	case CmdQuit:
		g.phase = PhaseQuit
	}
}

// Turn changes heading unless d reverses straight into the neck
func (g *Game) Turn(d Direction) bool {
	if d == g.dir.Opposite() {
		return false
	}
	g.dir = d
	return true
}

// TickInterval is 1000/speed whole milliseconds
func (g *Game) TickInterval() time.Duration {
	return time.Duration(1000/g.speed) * time.Millisecond
}

// placeFood makes a single sampling attempt; an occupied cell leaves food absent until next tick
func (g *Game) placeFood() {
	p := Point{X: g.rng.IntN(g.cfg.Cols), Y: g.rng.IntN(g.cfg.Rows)}
	if g.snake.Contains(p) {
		g.stats.FoodRejected++
		return
	}

	g.food = p
	g.hasFood = true
	g.drawAt(p, constants.GlyphFood, render.StyleRed)
}

// drawAt converts 0-based field coordinates to origin offsets
func (g *Game) drawAt(p Point, glyph string, style render.Style) {
	g.display.DrawCell(p.Y+1, p.X+1, glyph, style)
}

// Snake returns the live body
func (g *Game) Snake() *Snake { return g.snake }

// Direction returns the current heading
func (g *Game) Direction() Direction { return g.dir }

// Food returns the pending food cell, ok is false when absent
func (g *Game) Food() (Point, bool) { return g.food, g.hasFood }

// Speed returns ticks per second
func (g *Game) Speed() int { return g.speed }

// Phase returns the state machine position
func (g *Game) Phase() Phase { return g.phase }

// Stats returns counters for the current round
func (g *Game) Stats() RoundStats { return g.stats }

// Rounds returns how many rounds have been started
func (g *Game) Rounds() int { return g.rounds }
