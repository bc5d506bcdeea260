package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/monkeystud/internal/game"
	"github.com/lox/monkeystud/poker"
)

// CallBot calls every bet and never raises.
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a new CallBot instance
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger.WithPrefix("call-bot")}
}

func (c *CallBot) Play(playerID string, _ []poker.Card, _ string) (game.Decision, error) {
	c.logger.Debug("decision", "player", playerID, "decision", game.Call)
	return game.Call, nil
}
