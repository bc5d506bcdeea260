package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/monkeystud/internal/bot"
	"github.com/lox/monkeystud/internal/game"
)

// Config represents a tournament file
type Config struct {
	Tournament *TournamentSettings `hcl:"tournament,block"`
	Players    []PlayerConfig      `hcl:"player,block"`
}

// TournamentSettings contains the rules of every game in the tournament
type TournamentSettings struct {
	Games           int     `hcl:"games,optional"`
	StartingChips   int     `hcl:"starting_chips,optional"`
	AnteFraction    float64 `hcl:"ante_fraction,optional"`
	HandLimit       int     `hcl:"hand_limit,optional"`
	Resilience      string  `hcl:"resilience,optional"`
	DecisionTimeout string  `hcl:"decision_timeout,optional"`
	Seed            int64   `hcl:"seed,optional"`
}

// PlayerConfig seats one registered agent
type PlayerConfig struct {
	ID      string `hcl:"id,label"`
	Agent   string `hcl:"agent"`
	Samples int    `hcl:"samples,optional"`
}

const (
	defaultGames      = 100
	defaultHandLimit  = 10000
	defaultResilience = "resilient"
)

// Default returns the default tournament settings with no players.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads a tournament file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	// Check if file exists
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, applies defaults and validates the result.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// applyDefaults fills zero values after decoding.
func (c *Config) applyDefaults() {
	if c.Tournament == nil {
		c.Tournament = &TournamentSettings{}
	}
	t := c.Tournament
	if t.Games == 0 {
		t.Games = defaultGames
	}
	if t.StartingChips == 0 {
		t.StartingChips = game.DefaultStartingChips
	}
	if t.AnteFraction == 0 {
		t.AnteFraction = game.DefaultAnteFraction
	}
	if t.HandLimit == 0 {
		t.HandLimit = defaultHandLimit
	}
	if t.Resilience == "" {
		t.Resilience = defaultResilience
	}
}

// Validate validates the tournament configuration
func (c *Config) Validate() error {
	t := c.Tournament
	if t == nil {
		return errors.New("tournament block is required")
	}
	if t.Games <= 0 {
		return fmt.Errorf("tournament: games must be positive, got %d", t.Games)
	}
	if err := c.GameConfig().Validate(); err != nil {
		return fmt.Errorf("tournament: %w", err)
	}
	if _, err := game.ParseResilienceMode(t.Resilience); err != nil {
		return fmt.Errorf("tournament: %w", err)
	}
	if _, err := c.DecisionTimeout(); err != nil {
		return err
	}

	if len(c.Players) == 1 {
		return errors.New("at least 2 players must be configured")
	}
	if len(c.Players) > game.MaxPlayers {
		return fmt.Errorf("%d players configured: %w", len(c.Players), game.ErrTooManyPlayers)
	}

	known := make(map[string]bool)
	for _, info := range bot.List() {
		known[info.Name] = true
	}

	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if err := game.ValidatePlayerID(p.ID); err != nil {
			return fmt.Errorf("player %q: %w", p.ID, err)
		}
		if seen[p.ID] {
			return fmt.Errorf("player %s: configured twice", p.ID)
		}
		seen[p.ID] = true
		if !known[p.Agent] {
			return fmt.Errorf("player %s: %w: %q", p.ID, bot.ErrUnknownAgent, p.Agent)
		}
		if p.Samples < 0 {
			return fmt.Errorf("player %s: samples must not be negative", p.ID)
		}
	}

	return nil
}

// GameConfig returns the rules for each game.
func (c *Config) GameConfig() game.Config {
	return game.Config{
		StartingChips: c.Tournament.StartingChips,
		AnteFraction:  c.Tournament.AnteFraction,
		HandLimit:     c.Tournament.HandLimit,
	}
}

// ResilienceMode returns the parsed failure mode.
func (c *Config) ResilienceMode() game.ResilienceMode {
	mode, _ := game.ParseResilienceMode(c.Tournament.Resilience)
	return mode
}

// DecisionTimeout returns the parsed per-decision timeout, zero if unset.
func (c *Config) DecisionTimeout() (time.Duration, error) {
	s := c.Tournament.DecisionTimeout
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("tournament: decision_timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("tournament: decision_timeout must not be negative, got %s", d)
	}
	return d, nil
}
