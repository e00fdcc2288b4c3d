package engine

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/vi-snake/constants"
)

var errMissingDependency = errors.New("game: missing dependency")

// PlayRound resets state, draws the field and ticks until the round ends.
// Context cancellation ends the round with PhaseQuit.
func (g *Game) PlayRound(ctx context.Context) (Phase, error) {
	g.Reset()
	g.rounds++
	log.Printf("round %d: start, speed %d", g.rounds, g.speed)

	g.display.DrawField()

	for g.phase == PhasePlaying {
		if ctx.Err() != nil {
			g.phase = PhaseQuit
			break
		}
		if err := g.Tick(ctx); err != nil {
			return g.phase, err
		}
	}

	log.Printf("round %d: %s after %d ticks, length %d, food %d (rejected samples %d)",
		g.rounds, g.phase, g.stats.Ticks, g.stats.Length, g.stats.FoodEaten, g.stats.FoodRejected)
	return g.phase, nil
}

// Run plays rounds until the operator quits or ctx is cancelled.
// A nil return covers quit key, interrupt and every other orderly exit.
func (g *Game) Run(ctx context.Context) error {
	for {
		phase, err := g.PlayRound(ctx)
		if err != nil {
			return err
		}
		if phase == PhaseQuit {
			return nil
		}

		quit, err := g.roundOver(ctx)
		if err != nil {
			return err
		}
		if quit {
			g.phase = PhaseQuit
			return nil
		}
	}
}

// roundOver shows the banner, pauses, then waits for an acknowledgement.
// Returns true when the acknowledgement is a quit key or ctx is done.
func (g *Game) roundOver(ctx context.Context) (bool, error) {
	g.display.DrawBanner(constants.GameOverText)
	if err := g.display.Flush(); err != nil {
		return false, fmt.Errorf("flush banner: %w", err)
	}

	if err := g.clock.Sleep(ctx, g.cfg.GameOverPause); err != nil {
		return true, nil
	}

	ev, err := g.keys.WaitKey(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return true, nil
		}
		return false, fmt.Errorf("wait key: %w", err)
	}

	return CommandFor(ev) == CmdQuit, nil
}
