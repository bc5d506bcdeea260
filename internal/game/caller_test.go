package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/monkeystud/internal/randutil"
	"github.com/lox/monkeystud/poker"
)

var errBoom = errors.New("boom")

func failingAgent() Agent {
	return AgentFunc(func(string, []poker.Card, string) (Decision, error) {
		return Fold, errBoom
	})
}

func panickingAgent() Agent {
	return AgentFunc(func(string, []poker.Card, string) (Decision, error) {
		panic("agent bug")
	})
}

func newTestPlayer(t *testing.T, id string, agent Agent) *Player {
	t.Helper()
	p, err := NewPlayer(id, agent)
	require.NoError(t, err)
	return p
}

func TestCallerStrictPropagatesAgentErrors(t *testing.T) {
	c := NewCaller(WithCallerLogger(quietLogger()))
	p := newTestPlayer(t, "a", failingAgent())

	d, err := c.Decide(p, "")
	assert.Equal(t, Fold, d)

	var agentErr *AgentError
	require.ErrorAs(t, err, &agentErr)
	assert.Equal(t, "a", agentErr.PlayerID)
	assert.ErrorIs(t, err, errBoom)
}

func TestCallerResilientFoldsOnError(t *testing.T) {
	c := NewCaller(WithResilience(Resilient), WithCallerLogger(quietLogger()))

	for _, agent := range []Agent{failingAgent(), panickingAgent()} {
		p := newTestPlayer(t, "a", agent)
		d, err := c.Decide(p, "")
		require.NoError(t, err)
		assert.Equal(t, Fold, d)
		assert.NoError(t, c.Notify(p, ""))
	}
}

func TestCallerRecoversPanics(t *testing.T) {
	c := NewCaller(WithCallerLogger(quietLogger()))
	p := newTestPlayer(t, "a", panickingAgent())

	_, err := c.Decide(p, "")
	var agentErr *AgentError
	require.ErrorAs(t, err, &agentErr)
	assert.ErrorContains(t, err, "panic: agent bug")
	assert.Error(t, c.Notify(p, ""))
}

func TestCallerInvalidDecisionFoldsEvenWhenStrict(t *testing.T) {
	c := NewCaller(WithCallerLogger(quietLogger()))
	p := newTestPlayer(t, "a", always(Decision('X')))

	d, err := c.Decide(p, "")
	require.NoError(t, err)
	assert.Equal(t, Fold, d)
}

func TestCallerRecordsTiming(t *testing.T) {
	clock := quartz.NewMock(t)
	c := NewCaller(WithClock(clock), WithCallerLogger(quietLogger()))

	slow := AgentFunc(func(string, []poker.Card, string) (Decision, error) {
		clock.Advance(25 * time.Millisecond)
		return Call, nil
	})
	p := newTestPlayer(t, "a", slow)

	for range 2 {
		d, err := c.Decide(p, "")
		require.NoError(t, err)
		assert.Equal(t, Call, d)
	}

	assert.Equal(t, 2, p.Timing.Count)
	assert.InDelta(t, 0.025, p.Timing.Mean(), 1e-9)
}

func TestCallerTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clock := quartz.NewMock(t)
	c := NewCaller(WithClock(clock), WithDecisionTimeout(time.Second), WithCallerLogger(quietLogger()))

	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)
	stuck := AgentFunc(func(string, []poker.Card, string) (Decision, error) {
		close(started)
		<-release
		return Bet, nil
	})
	p := newTestPlayer(t, "a", stuck)

	type outcome struct {
		d   Decision
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		d, err := c.Decide(p, "")
		done <- outcome{d, err}
	}()

	<-started
	clock.Advance(time.Second).MustWait(ctx)

	select {
	case out := <-done:
		assert.Equal(t, Fold, out.d)
		assert.ErrorIs(t, out.err, ErrDecisionTimeout)
	case <-ctx.Done():
		t.Fatal("decision did not time out")
	}
	assert.InDelta(t, 1.0, p.Timing.Mean(), 1e-9)
}

func TestCallerTimeoutReturnsPromptAnswers(t *testing.T) {
	clock := quartz.NewMock(t)
	c := NewCaller(WithClock(clock), WithDecisionTimeout(time.Second), WithCallerLogger(quietLogger()))
	p := newTestPlayer(t, "a", always(Bet))

	d, err := c.Decide(p, "")
	require.NoError(t, err)
	assert.Equal(t, Bet, d)
}

func TestStrictFailureAbortsHand(t *testing.T) {
	players := newPlayers(t, always(Call), failingAgent())
	h, err := NewHand(randutil.New(1), players, WithFixedSeating(), WithLogger(quietLogger()))
	require.NoError(t, err)

	_, err = h.Play()
	var agentErr *AgentError
	require.ErrorAs(t, err, &agentErr)
	assert.Equal(t, "b", agentErr.PlayerID)
}

func TestResilientFailureFoldsAndHandCompletes(t *testing.T) {
	players := newPlayers(t, always(Bet), failingAgent())
	caller := NewCaller(WithResilience(Resilient), WithCallerLogger(quietLogger()))

	result := playHand(t, randutil.New(1), players, WithCaller(caller))

	assert.Contains(t, result.History, "b:F:")
	assert.Equal(t, []string{"a"}, result.Winners)
	assert.Equal(t, 200, totalChips(players))
}

func TestParseResilienceMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ResilienceMode
		wantErr bool
	}{
		{"strict", Strict, false},
		{"", Strict, false},
		{"Resilient", Resilient, false},
		{"lenient", Strict, true},
	}
	for _, tt := range tests {
		got, err := ParseResilienceMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.want, mustParse(t, got.String()))
	}
}

func mustParse(t *testing.T, s string) ResilienceMode {
	t.Helper()
	m, err := ParseResilienceMode(s)
	require.NoError(t, err)
	return m
}
