package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/monkeystud/internal/game"
	"github.com/lox/monkeystud/poker"
)

// RaiseBot bets at every opportunity. Every raise goes to the cap, so it
// gets its stack in fast.
type RaiseBot struct {
	logger *log.Logger
}

// NewRaiseBot creates a new RaiseBot instance
func NewRaiseBot(logger *log.Logger) *RaiseBot {
	return &RaiseBot{logger: logger.WithPrefix("raise-bot")}
}

func (r *RaiseBot) Play(playerID string, _ []poker.Card, _ string) (game.Decision, error) {
	r.logger.Debug("decision", "player", playerID, "decision", game.Bet)
	return game.Bet, nil
}
