package main

import (
	"fmt"
	"strings"

	"github.com/lox/monkeystud/internal/game"
)

// GameCmd plays a single game.
type GameCmd struct {
	Agents        []string `arg:"" name:"agent" help:"Registered agent names, one per seat"`
	StartingChips int      `help:"Chips each player starts with" default:"100"`
	HandLimit     int      `help:"Award the game to the chip leader after this many hands, 0 for no limit" default:"0"`
	Samples       int      `help:"Monte Carlo samples per decision for equity agents, 0 for the default" default:"0"`
}

func (c *GameCmd) Run(g *Globals) error {
	logger := g.Logger()
	rng, seed := g.RNG(logger, 0)

	players, err := newPlayers(c.Agents, letterID, seed, c.Samples, logger)
	if err != nil {
		return err
	}

	cfg := game.DefaultConfig()
	cfg.StartingChips = c.StartingChips
	cfg.HandLimit = c.HandLimit

	caller := game.NewCaller(game.WithResilience(game.Strict), game.WithCallerLogger(logger))
	gm, err := game.NewGame(rng, players, cfg, game.WithLogger(logger), game.WithCaller(caller))
	if err != nil {
		return err
	}
	gm.OnHand = func(r *game.HandResult) {
		logger.Debug("Hand complete", "hand", r.ID, "pot", r.Pot, "winners", strings.Join(r.Winners, ","), "showdown", r.Showdown)
	}

	result, err := gm.Play()
	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	agent := c.Agents[indexOf(players, result.Winner)]
	out := g.output()
	fmt.Fprintln(out, titleStyle.Render("MonkeyStud"))
	fmt.Fprintf(out, "%s wins after %d hands\n",
		winnerStyle.Render(fmt.Sprintf("%s (%s)", result.Winner.ID, agent)), result.Hands)
	if result.HandLimitReached {
		fmt.Fprintln(out, noteStyle.Render("hand limit reached, chip leader declared the winner"))
	}
	return nil
}

func indexOf(players []*game.Player, p *game.Player) int {
	for i, q := range players {
		if q == p {
			return i
		}
	}
	return -1
}
