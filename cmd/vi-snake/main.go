package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/terminal"
)

const (
	logDir      = "logs"
	logFileName = "vi-snake.log"
	maxLogSize  = 10 * 1024 * 1024
)

type options struct {
	debug bool
	tone  bool
	seed  uint64
}

func main() {
	term := terminal.New()

	// Panic Recovery: restore the terminal before printing anything
	defer func() {
		if r := recover(); r != nil {
			term.Fini()
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Interrupt is a controlled quit, not a kill
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	err := buildCLI(term).ParseAndRun(ctx, os.Args[1:])
	stop()

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

func buildCLI(term *terminal.Terminal) *ffcli.Command {
	fs := flag.NewFlagSet("vi-snake", flag.ExitOnError)
	debugFlag := fs.Bool("debug", false, "Write a debug log to "+filepath.Join(logDir, logFileName))
	toneFlag := fs.Bool("tone", false, "Play a synthesized chime when food is eaten")
	seedFlag := fs.Uint64("seed", 0, "Food placement seed (0 picks a time-based seed)")

	return &ffcli.Command{
		Name:       "vi-snake",
		ShortUsage: "vi-snake [flags]",
		ShortHelp:  "Snake in the terminal",
		LongHelp:   "Controls:\n  w a s d / arrows   Steer\n  + =                Faster\n  - _                Slower\n  q Q Esc Ctrl-C     Quit",
		FlagSet:    fs,
		Exec: func(ctx context.Context, _ []string) error {
			if logFile := setupLogging(*debugFlag); logFile != nil {
				defer logFile.Close()
			}
			return run(ctx, term, options{
				debug: *debugFlag,
				tone:  *toneFlag,
				seed:  *seedFlag,
			})
		},
	}
}

// run owns the terminal from raw-mode entry to restoration.
// Every return path, including interrupt, passes through the deferred Fini.
func run(ctx context.Context, term *terminal.Terminal, opts options) error {
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	var chime engine.Chime
	if opts.tone {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game runs with the bell only
			log.Printf("audio disabled: %v", err)
		} else {
			defer sm.Cleanup()
			chime = sm
		}
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	cfg := engine.DefaultConfig()
	game, err := engine.NewGame(cfg, engine.Deps{
		Display: render.NewTerminalRenderer(term.Output(), cfg.Cols, cfg.Rows),
		Keys:    term,
		Clock:   engine.NewTimeProvider(),
		Rand:    rand.New(rand.NewPCG(seed, seed)),
		Chime:   chime,
	})
	if err != nil {
		return err
	}

	log.Printf("vi-snake: start, field %dx%d, seed %d, tone %v", cfg.Cols, cfg.Rows, seed, chime != nil)
	if err := game.Run(ctx); err != nil {
		return err
	}
	log.Printf("vi-snake: exit after %d rounds", game.Rounds())
	return nil
}

// setupLogging routes the standard logger to a file in debug mode and discards it otherwise.
// Stdout belongs to the game field, so logs never go to the terminal.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("vi-snake-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			// Start over in place rather than grow without bound
			os.Remove(logPath)
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logFile
}
