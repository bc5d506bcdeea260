package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/monkeystud/internal/game"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(noteStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// standing is one row of a tournament table.
type standing struct {
	id, agent string
	wins      int
	mean      time.Duration
	p50, p95  time.Duration
}

// winsTable renders tournament standings, most wins first.
func winsTable(result *game.TournamentResult, agents map[string]string) string {
	rows := make([]standing, 0, len(result.Wins))
	for id, wins := range result.Wins {
		s := standing{id: id, agent: agents[id], wins: wins}
		if lat := result.Latency[id]; lat != nil {
			s.mean = lat.MeanDuration()
			s.p50 = time.Duration(lat.Median() * float64(time.Second))
			s.p95 = lat.PercentileDuration(0.95)
		}
		rows = append(rows, s)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].wins != rows[j].wins {
			return rows[i].wins > rows[j].wins
		}
		return rows[i].id < rows[j].id
	})

	t := newTable("Player", "Agent", "Wins", "Win %", "Mean decision", "p50", "p95")
	for _, r := range rows {
		pct := 0.0
		if result.Games > 0 {
			pct = 100 * float64(r.wins) / float64(result.Games)
		}
		t.Row(r.id, r.agent, fmt.Sprint(r.wins), fmt.Sprintf("%.1f", pct),
			roundLatency(r.mean), roundLatency(r.p50), roundLatency(r.p95))
	}
	return t.String()
}

// benchmarkTable renders a latency comparison.
func benchmarkTable(result *game.BenchmarkResult, candidate, baseline string) string {
	t := newTable("Role", "Agent", "Decisions", "Mean decision", "p95", "Wins")
	for _, role := range []struct{ id, agent string }{
		{game.CandidateID, candidate},
		{game.BaselineID, baseline},
	} {
		t.Row(role.id, role.agent,
			fmt.Sprint(result.Decisions[role.id]),
			roundLatency(result.Mean[role.id]),
			roundLatency(result.P95[role.id]),
			fmt.Sprint(result.Wins[role.id]))
	}
	return t.String()
}

func roundLatency(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
