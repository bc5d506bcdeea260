package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/monkeystud/internal/game"
	"github.com/lox/monkeystud/internal/randutil"
	"github.com/lox/monkeystud/poker"
)

// pressing returns a send function that applies each message to the model
// and answers every prompt with key.
func pressing(m *Model, key rune) func(tea.Msg) {
	return func(msg tea.Msg) {
		m.Update(msg)
		if h, ok := msg.(HistoryMsg); ok && h.Prompt {
			m.Update(keyPress(key))
		}
	}
}

func TestAgentReturnsKeyedDecision(t *testing.T) {
	m := NewModel("a", quietLogger())
	agent := NewAgent(m, pressing(m, 'f'), quietLogger())

	d, err := agent.Play("a", poker.MustParseHand("8c,9c"), firstStreet)
	require.NoError(t, err)
	assert.Equal(t, game.Fold, d)
}

func TestAgentNotificationDoesNotBlock(t *testing.T) {
	m := NewModel("b", quietLogger())
	var sent []tea.Msg
	agent := NewAgent(m, func(msg tea.Msg) { sent = append(sent, msg) }, quietLogger())

	d, err := agent.Play("b", poker.MustParseHand("2d,2c"), firstStreet+" a:B:2 b:F: a:W:4")
	require.NoError(t, err)
	assert.Equal(t, game.Call, d)
	require.Len(t, sent, 1)
	assert.False(t, sent[0].(HistoryMsg).Prompt)
}

func TestAgentQuit(t *testing.T) {
	m := NewModel("a", quietLogger())
	agent := NewAgent(m, func(tea.Msg) {}, quietLogger())
	m.Stop()

	_, err := agent.Play("a", poker.MustParseHand("8c,9c"), firstStreet)
	assert.ErrorIs(t, err, ErrQuit)
}

func TestAgentRejectsBadHistory(t *testing.T) {
	m := NewModel("a", quietLogger())
	agent := NewAgent(m, func(tea.Msg) {}, quietLogger())

	_, err := agent.Play("a", nil, "a:Q:1")
	assert.Error(t, err)
}

func TestAgentPlaysGame(t *testing.T) {
	m := NewModel("a", quietLogger())
	human, err := game.NewPlayer("a", NewAgent(m, pressing(m, 'b'), quietLogger()))
	require.NoError(t, err)
	caller, err := game.NewPlayer("b", game.AgentFunc(func(string, []poker.Card, string) (game.Decision, error) {
		return game.Call, nil
	}))
	require.NoError(t, err)

	cfg := game.DefaultConfig()
	cfg.HandLimit = 200
	g, err := game.NewGame(randutil.New(7), []*game.Player{human, caller}, cfg, game.WithLogger(quietLogger()))
	require.NoError(t, err)

	result, err := g.Play()
	require.NoError(t, err)
	require.NotNil(t, result.Winner)
	assert.Equal(t, 2*game.DefaultStartingChips, human.Chips+caller.Chips)
	assert.NotEmpty(t, m.Lines())
}

func TestAgentQuitAbortsStrictGame(t *testing.T) {
	m := NewModel("a", quietLogger())
	m.Stop()
	human, err := game.NewPlayer("a", NewAgent(m, func(tea.Msg) {}, quietLogger()))
	require.NoError(t, err)
	other, err := game.NewPlayer("b", game.AgentFunc(func(string, []poker.Card, string) (game.Decision, error) {
		return game.Call, nil
	}))
	require.NoError(t, err)

	g, err := game.NewGame(randutil.New(1), []*game.Player{human, other}, game.DefaultConfig(), game.WithLogger(quietLogger()))
	require.NoError(t, err)

	_, err = g.Play()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrQuit))
}
