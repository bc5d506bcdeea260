package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/monkeystud/internal/game"
	"github.com/lox/monkeystud/poker"
)

// ErrQuit is returned to the engine once the human has left.
var ErrQuit = errors.New("player quit")

// Agent is a game.Agent driven by a human through a Model.
type Agent struct {
	model  *Model
	send   func(tea.Msg)
	logger *log.Logger
}

// NewAgent returns an agent that forwards histories to the model with send,
// usually (*tea.Program).Send, and blocks until the player decides.
func NewAgent(model *Model, send func(tea.Msg), logger *log.Logger) *Agent {
	return &Agent{
		model:  model,
		send:   send,
		logger: logger.WithPrefix("human"),
	}
}

// Play implements game.Agent.
func (a *Agent) Play(playerID string, hand []poker.Card, history string) (game.Decision, error) {
	select {
	case <-a.model.Done():
		return game.Fold, ErrQuit
	default:
	}

	events, err := game.ParseHistory(history)
	if err != nil {
		return game.Fold, fmt.Errorf("parse history: %w", err)
	}
	view, err := game.ReplayEvents(events)
	if err != nil {
		return game.Fold, fmt.Errorf("replay history: %w", err)
	}

	msg := HistoryMsg{
		Hand:   append([]poker.Card(nil), hand...),
		Events: events,
		View:   view,
		Prompt: !view.Finished,
	}
	a.send(msg)
	if view.Finished {
		return game.Call, nil
	}

	a.logger.Debug("Waiting for decision", "player", playerID, "to_call", view.ToCall(playerID))
	select {
	case d := <-a.model.Decisions():
		a.logger.Debug("Received decision", "player", playerID, "decision", d)
		return d, nil
	case <-a.model.Done():
		return game.Fold, ErrQuit
	}
}

// Run plays g against the human inside program, reporting the outcome to
// the model when the game ends or the player quits.
func Run(program *tea.Program, g *game.Game) (*game.GameResult, error) {
	type outcome struct {
		result *game.GameResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := g.Play()
		msg := GameOverMsg{Err: err}
		if result != nil && result.Winner != nil {
			msg.Winner = result.Winner.ID
			msg.Hands = result.Hands
		}
		program.Send(msg)
		done <- outcome{result, err}
	}()

	if _, err := program.Run(); err != nil {
		return nil, fmt.Errorf("run tui: %w", err)
	}
	o := <-done
	return o.result, o.err
}
