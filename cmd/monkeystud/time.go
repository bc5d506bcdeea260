package main

import (
	"fmt"

	"github.com/lox/monkeystud/internal/bot"
	"github.com/lox/monkeystud/internal/game"
	"github.com/lox/monkeystud/internal/randutil"
)

// TimeCmd benchmarks an agent's decision latency.
type TimeCmd struct {
	Agent     string `arg:"" help:"Registered agent to time"`
	Games     int    `help:"Heads-up games to play" default:"100"`
	Baseline  string `help:"Agent to compare against" default:"random"`
	HandLimit int    `help:"Hand limit per game" default:"1000"`
	Samples   int    `help:"Monte Carlo samples per decision for equity agents, 0 for the default" default:"0"`
}

func (c *TimeCmd) Run(g *Globals) error {
	logger := g.Logger()
	rng, seed := g.RNG(logger, 0)

	candidate, err := bot.New(c.Agent, bot.Options{RNG: randutil.Derive(seed, 1), Logger: logger, Samples: c.Samples})
	if err != nil {
		return err
	}
	baseline, err := bot.New(c.Baseline, bot.Options{RNG: randutil.Derive(seed, 2), Logger: logger, Samples: c.Samples})
	if err != nil {
		return err
	}

	cfg := game.DefaultConfig()
	cfg.HandLimit = c.HandLimit
	caller := game.NewCaller(game.WithResilience(resilience(g.Strict, game.Resilient)), game.WithCallerLogger(logger))

	ctx, stop := signalContext()
	defer stop()

	result, err := game.Benchmark(ctx, rng, candidate, baseline, c.Games, cfg, game.WithLogger(logger), game.WithCaller(caller))
	if err != nil {
		return err
	}

	out := g.output()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s vs %s over %d games", c.Agent, c.Baseline, result.Games)))
	fmt.Fprintln(out, benchmarkTable(result, c.Agent, c.Baseline))
	if result.Slowdown > 0 {
		fmt.Fprintf(out, "%s is %.2fx the baseline's decision time\n", c.Agent, result.Slowdown)
	}
	return nil
}
