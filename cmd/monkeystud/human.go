package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/monkeystud/internal/game"
	"github.com/lox/monkeystud/internal/tui"
)

const humanID = "you"

// HumanCmd plays an interactive game in the terminal.
type HumanCmd struct {
	Opponent      string `help:"Registered agent to play against" default:"equity"`
	StartingChips int    `help:"Chips each player starts with" default:"100"`
	Samples       int    `help:"Monte Carlo samples per decision for equity agents, 0 for the default" default:"0"`
	LogFile       string `help:"Where to write logs while the TUI owns the terminal" default:"monkeystud-human.log" type:"path"`
}

func (c *HumanCmd) Run(g *Globals) error {
	g.applyColor()

	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger := log.NewWithOptions(logFile, log.Options{
		Level:           g.level(),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "MAIN",
	})
	rng, seed := g.RNG(logger, 0)

	opponents, err := newPlayers([]string{c.Opponent}, func(int) string { return c.Opponent }, seed, c.Samples, logger)
	if err != nil {
		return err
	}

	model := tui.NewModel(humanID, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	human, err := game.NewPlayer(humanID, tui.NewAgent(model, program.Send, logger))
	if err != nil {
		return err
	}

	cfg := game.DefaultConfig()
	cfg.StartingChips = c.StartingChips
	caller := game.NewCaller(game.WithResilience(game.Strict), game.WithCallerLogger(logger))
	gm, err := game.NewGame(rng, append([]*game.Player{human}, opponents...), cfg, game.WithLogger(logger), game.WithCaller(caller))
	if err != nil {
		return err
	}

	result, err := tui.Run(program, gm)
	out := g.output()
	switch {
	case errors.Is(err, tui.ErrQuit):
		fmt.Fprintln(out, noteStyle.Render("You left the table."))
		return nil
	case err != nil:
		return err
	}

	if result.Winner == human {
		fmt.Fprintln(out, winnerStyle.Render(fmt.Sprintf("You beat %s in %d hands!", c.Opponent, result.Hands)))
	} else {
		fmt.Fprintf(out, "%s won after %d hands.\n", c.Opponent, result.Hands)
	}
	return nil
}
