package game

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

// Benchmark player IDs.
const (
	CandidateID = "candidate"
	BaselineID  = "baseline"
)

// BenchmarkResult compares an agent's decision latency with a baseline.
type BenchmarkResult struct {
	Games     int
	Decisions map[string]int
	Mean      map[string]time.Duration
	P95       map[string]time.Duration
	Wins      map[string]int
	// Slowdown is the candidate's mean latency over the baseline's; zero
	// when the baseline was never timed.
	Slowdown float64
}

// Benchmark plays heads-up games between candidate and baseline and reports
// the average time each spends per decision.
func Benchmark(ctx context.Context, rng *rand.Rand, candidate, baseline Agent, games int, cfg Config, opts ...HandOption) (*BenchmarkResult, error) {
	c, err := NewPlayer(CandidateID, candidate)
	if err != nil {
		return nil, err
	}
	b, err := NewPlayer(BaselineID, baseline)
	if err != nil {
		return nil, err
	}

	t, err := NewTournament(rng, []*Player{c, b}, cfg, opts...)
	if err != nil {
		return nil, err
	}
	tr, err := t.Run(ctx, games)
	if err != nil {
		return nil, fmt.Errorf("benchmark: %w", err)
	}

	result := &BenchmarkResult{
		Games:     tr.Games,
		Decisions: make(map[string]int, 2),
		Mean:      make(map[string]time.Duration, 2),
		P95:       make(map[string]time.Duration, 2),
		Wins:      tr.Wins,
	}
	for id, s := range tr.Latency {
		result.Decisions[id] = s.Count
		result.Mean[id] = s.MeanDuration()
		result.P95[id] = s.PercentileDuration(0.95)
	}
	if base := tr.Latency[BaselineID].Mean(); base > 0 {
		result.Slowdown = tr.Latency[CandidateID].Mean() / base
	}
	return result, nil
}
