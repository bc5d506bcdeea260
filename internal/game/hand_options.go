package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/monkeystud/poker"
)

// DefaultAnteFraction is the share of all chips in play collected as antes.
const DefaultAnteFraction = 0.01

// HandOption configures a Hand during creation.
type HandOption func(*handConfig)

// handConfig holds all configuration for creating a hand.
type handConfig struct {
	deck         *poker.Deck // If provided, uses this deck (overrides RNG for deck creation)
	fixedSeating bool
	caller       *Caller
	logger       *log.Logger
	anteFraction float64
	handID       string
}

func newHandConfig(opts []HandOption) *handConfig {
	cfg := &handConfig{
		anteFraction: DefaultAnteFraction,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.caller == nil {
		cfg.caller = NewCaller(WithCallerLogger(cfg.logger))
	}
	return cfg
}

// WithDeck sets a specific pre-arranged deck.
// This overrides the RNG for deck creation but the RNG
// is still used for seating and the odd chip.
func WithDeck(deck *poker.Deck) HandOption {
	return func(c *handConfig) {
		c.deck = deck
	}
}

// WithFixedSeating seats players in the order given instead of shuffling.
func WithFixedSeating() HandOption {
	return func(c *handConfig) {
		c.fixedSeating = true
	}
}

// WithCaller sets the caller used to reach agents.
func WithCaller(caller *Caller) HandOption {
	return func(c *handConfig) {
		c.caller = caller
	}
}

// WithLogger sets the logger. Hands log every action at debug level.
func WithLogger(logger *log.Logger) HandOption {
	return func(c *handConfig) {
		c.logger = logger
	}
}

// WithAnteFraction sets the share of total chips collected as antes,
// 0.01 by default.
func WithAnteFraction(fraction float64) HandOption {
	return func(c *handConfig) {
		c.anteFraction = fraction
	}
}

// WithHandID sets the hand identifier instead of generating one.
func WithHandID(id string) HandOption {
	return func(c *handConfig) {
		c.handID = id
	}
}
