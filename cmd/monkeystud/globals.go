package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/monkeystud/internal/bot"
	"github.com/lox/monkeystud/internal/game"
	"github.com/lox/monkeystud/internal/randutil"
)

// Globals are flags shared by every command.
type Globals struct {
	Seed     int64  `help:"RNG seed, 0 picks one from the clock" env:"MONKEYSTUD_SEED" default:"0"`
	LogLevel string `help:"Log level" enum:"debug,info,warn,error" default:"info" env:"MONKEYSTUD_LOG_LEVEL"`
	NoColor  bool   `help:"Disable colours" env:"MONKEYSTUD_NO_COLOR"`
	Strict   bool   `help:"Abort on the first agent failure instead of folding for it"`

	Out io.Writer `kong:"-"`
}

// applyColor forces plain output when colours are disabled.
func (g *Globals) applyColor() {
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Logger builds the command logger and applies the colour setting.
func (g *Globals) Logger() *log.Logger {
	g.applyColor()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           g.level(),
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	if g.NoColor {
		logger.SetColorProfile(termenv.Ascii)
	}
	return logger
}

func (g *Globals) level() log.Level {
	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// RNG returns the game generator and the seed it was built from.
func (g *Globals) RNG(logger *log.Logger, fallback int64) (*rand.Rand, int64) {
	seed := g.Seed
	if seed == 0 {
		seed = fallback
	}
	seed = randutil.Seed(seed)
	logger.Info("Using seed", "seed", seed)
	return randutil.New(seed), seed
}

func (g *Globals) output() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// newPlayers builds one player per agent name, each with its own RNG
// stream derived from seed.
func newPlayers(names []string, id func(int) string, seed int64, samples int, logger *log.Logger) ([]*game.Player, error) {
	players := make([]*game.Player, 0, len(names))
	for i, name := range names {
		agent, err := bot.New(name, bot.Options{
			RNG:     randutil.Derive(seed, i+1),
			Logger:  logger,
			Samples: samples,
		})
		if err != nil {
			return nil, err
		}
		p, err := game.NewPlayer(id(i), agent)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

// letterID names players a, b, c and so on.
func letterID(i int) string {
	if i < 26 {
		return string(rune('a' + i))
	}
	return fmt.Sprintf("p%d", i)
}

// numberID names players 0, 1, 2 and so on.
func numberID(i int) string {
	return fmt.Sprintf("%d", i)
}

// signalContext is cancelled on interrupt.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func resilience(strict bool, fallback game.ResilienceMode) game.ResilienceMode {
	if strict {
		return game.Strict
	}
	return fallback
}
