package bot

import (
	"github.com/charmbracelet/log"

	"github.com/lox/monkeystud/internal/game"
	"github.com/lox/monkeystud/poker"
)

// FoldBot always folds. The engine turns a fold that owes nothing into a
// check, so it stays in until someone bets.
type FoldBot struct {
	logger *log.Logger
}

// NewFoldBot creates a new FoldBot instance
func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: logger.WithPrefix("fold-bot")}
}

func (f *FoldBot) Play(playerID string, _ []poker.Card, _ string) (game.Decision, error) {
	f.logger.Debug("decision", "player", playerID, "decision", game.Fold)
	return game.Fold, nil
}
