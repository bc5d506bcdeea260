package main

import (
	"errors"
	"fmt"

	"github.com/lox/monkeystud/internal/config"
	"github.com/lox/monkeystud/internal/game"
)

// TournamentCmd plays many games among the same agents.
type TournamentCmd struct {
	Config string   `short:"c" help:"HCL tournament file" type:"path"`
	Games  int      `arg:"" optional:"" help:"Number of games, overrides the file"`
	Agents []string `arg:"" optional:"" name:"agent" help:"Registered agent names, overrides the file's players"`
}

func (c *TournamentCmd) Run(g *Globals) error {
	logger := g.Logger()

	cfg := config.Default()
	if c.Config != "" {
		var err error
		cfg, err = config.Load(c.Config)
		if err != nil {
			return err
		}
		logger.Info("Loaded tournament config", "path", c.Config, "players", len(cfg.Players))
	}

	games := cfg.Tournament.Games
	if c.Games > 0 {
		games = c.Games
	}

	rng, seed := g.RNG(logger, cfg.Tournament.Seed)

	var (
		players []*game.Player
		agents  = make(map[string]string)
		err     error
	)
	switch {
	case len(c.Agents) > 0:
		players, err = newPlayers(c.Agents, numberID, seed, 0, logger)
		for i, name := range c.Agents {
			agents[numberID(i)] = name
		}
	case len(cfg.Players) > 0:
		for i, pc := range cfg.Players {
			var ps []*game.Player
			ps, err = newPlayers([]string{pc.Agent}, func(int) string { return pc.ID }, seed+int64(i), pc.Samples, logger)
			if err != nil {
				break
			}
			players = append(players, ps...)
			agents[pc.ID] = pc.Agent
		}
	default:
		return errors.New("no agents given and no players configured")
	}
	if err != nil {
		return err
	}

	timeout, err := cfg.DecisionTimeout()
	if err != nil {
		return err
	}
	caller := game.NewCaller(
		game.WithResilience(resilience(g.Strict, cfg.ResilienceMode())),
		game.WithDecisionTimeout(timeout),
		game.WithCallerLogger(logger),
	)

	t, err := game.NewTournament(rng, players, cfg.GameConfig(), game.WithLogger(logger), game.WithCaller(caller))
	if err != nil {
		return err
	}
	t.OnGame = func(n int, r *game.GameResult) {
		logger.Debug("Game complete", "game", n, "winner", r.Winner.ID, "hands", r.Hands)
	}

	ctx, stop := signalContext()
	defer stop()

	logger.Info("Starting tournament", "games", games, "players", len(players), "mode", caller.Mode())
	result, err := t.Run(ctx, games)
	if result == nil {
		return err
	}

	out := g.output()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("MonkeyStud tournament: %d games", result.Games)))
	fmt.Fprintln(out, winsTable(result, agents))
	low, high := result.HandsPerGame.ConfidenceInterval95()
	fmt.Fprintln(out, noteStyle.Render(fmt.Sprintf("%.1f hands per game (95%% CI %.1f-%.1f), %d decided by hand limit",
		result.HandsPerGame.Mean(), low, high, result.HandLimited)))
	return err
}
