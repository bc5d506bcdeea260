package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/monkeystud/poker"
)

// ResilienceMode selects what happens when an agent fails.
type ResilienceMode int

const (
	// Strict propagates agent failures, aborting the hand. Useful when
	// developing an agent.
	Strict ResilienceMode = iota
	// Resilient logs agent failures and treats them as a fold, so
	// unattended tournaments keep running.
	Resilient
)

func (m ResilienceMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Resilient:
		return "resilient"
	default:
		return fmt.Sprintf("ResilienceMode(%d)", int(m))
	}
}

// ParseResilienceMode parses "strict" or "resilient".
func ParseResilienceMode(s string) (ResilienceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "":
		return Strict, nil
	case "resilient":
		return Resilient, nil
	default:
		return Strict, fmt.Errorf("unknown resilience mode %q", s)
	}
}

// Caller is the single place agents are invoked. It times every call,
// enforces the optional decision timeout, recovers panics and applies the
// resilience mode.
type Caller struct {
	clock   quartz.Clock
	timeout time.Duration
	mode    ResilienceMode
	logger  *log.Logger
}

// CallerOption configures a Caller.
type CallerOption func(*Caller)

// WithClock sets the clock used for timing and timeouts.
func WithClock(clock quartz.Clock) CallerOption {
	return func(c *Caller) { c.clock = clock }
}

// WithDecisionTimeout bounds each agent call. Zero disables the bound.
func WithDecisionTimeout(d time.Duration) CallerOption {
	return func(c *Caller) { c.timeout = d }
}

// WithResilience sets the failure mode.
func WithResilience(mode ResilienceMode) CallerOption {
	return func(c *Caller) { c.mode = mode }
}

// WithCallerLogger sets the logger for degraded agents.
func WithCallerLogger(logger *log.Logger) CallerOption {
	return func(c *Caller) { c.logger = logger }
}

// NewCaller creates a caller. Defaults: real clock, no timeout, Strict.
func NewCaller(opts ...CallerOption) *Caller {
	c := &Caller{
		clock: quartz.NewReal(),
		mode:  Strict,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	c.logger = c.logger.WithPrefix("caller")
	return c
}

// Mode returns the configured resilience mode.
func (c *Caller) Mode() ResilienceMode {
	return c.mode
}

// Decide asks p's agent for a decision. Failures become a Fold in Resilient
// mode and an *AgentError in Strict mode. A decision outside F, C and B is
// always a Fold.
func (c *Caller) Decide(p *Player, history string) (Decision, error) {
	d, err := c.invoke(p, history)
	if err != nil {
		if c.mode == Strict {
			return Fold, err
		}
		c.logger.Warn("agent failed, folding", "player", p.ID, "error", err)
		return Fold, nil
	}
	if !d.Valid() {
		c.logger.Warn("invalid decision, folding", "player", p.ID, "decision", fmt.Sprintf("%q", byte(d)))
		return Fold, nil
	}
	return d, nil
}

// Notify shows p's agent the final history of a hand. The decision is
// discarded; only failures matter.
func (c *Caller) Notify(p *Player, history string) error {
	if _, err := c.invoke(p, history); err != nil {
		if c.mode == Strict {
			return err
		}
		c.logger.Warn("agent failed on notification", "player", p.ID, "error", err)
	}
	return nil
}

type callResult struct {
	decision Decision
	err      error
}

func (c *Caller) invoke(p *Player, history string) (Decision, error) {
	start := c.clock.Now()
	defer func() {
		p.Timing.AddDuration(c.clock.Since(start))
	}()

	hand := p.handCopy()
	if c.timeout <= 0 {
		r := safePlay(p.Agent, p.ID, hand, history)
		return r.decision, wrapAgentError(p.ID, r.err)
	}

	// Buffered so a late agent never blocks after the timeout.
	results := make(chan callResult, 1)
	timeoutFired := make(chan struct{})

	timer := c.clock.AfterFunc(c.timeout, func() {
		close(timeoutFired)
	}, "caller", "decide")
	defer timer.Stop()

	go func() {
		results <- safePlay(p.Agent, p.ID, hand, history)
	}()

	select {
	case r := <-results:
		return r.decision, wrapAgentError(p.ID, r.err)
	case <-timeoutFired:
		return Fold, &AgentError{PlayerID: p.ID, Err: ErrDecisionTimeout}
	}
}

func safePlay(agent Agent, id string, hand []poker.Card, history string) (r callResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r = callResult{decision: Fold, err: fmt.Errorf("panic: %v", rec)}
		}
	}()
	d, err := agent.Play(id, hand, history)
	return callResult{decision: d, err: err}
}

func wrapAgentError(id string, err error) error {
	if err == nil {
		return nil
	}
	var agentErr *AgentError
	if errors.As(err, &agentErr) {
		return err
	}
	return &AgentError{PlayerID: id, Err: err}
}
