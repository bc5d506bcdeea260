package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/monkeystud/internal/game"
	"github.com/lox/monkeystud/poker"
)

// HistoryMsg carries the hand as the human player currently sees it.
type HistoryMsg struct {
	Hand   []poker.Card
	Events []game.Event
	View   *game.TableView
	Prompt bool // a decision is expected
}

// GameOverMsg announces the end of the game.
type GameOverMsg struct {
	Winner string
	Hands  int
	Err    error
}

// Model is the Bubble Tea model for a human seat.
type Model struct {
	logger   *log.Logger
	playerID string

	keys     KeyMap
	help     help.Model
	viewport viewport.Model

	lines    []string
	shown    int // events of the current hand already logged
	hands    int
	hand     []poker.Card
	view     *game.TableView
	awaiting bool
	over     bool

	decisions chan game.Decision
	quit      chan struct{}
	quitOnce  sync.Once
	quitting  bool

	width, height int
}

// NewModel creates a model for the player with the given id.
func NewModel(playerID string, logger *log.Logger) *Model {
	vp := viewport.New(80, 10)
	vp.SetContent("")

	return &Model{
		logger:    logger.WithPrefix("tui"),
		playerID:  playerID,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		viewport:  vp,
		decisions: make(chan game.Decision, 1),
		quit:      make(chan struct{}),
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()

	case HistoryMsg:
		m.applyHistory(msg)

	case GameOverMsg:
		m.over = true
		m.awaiting = false
		switch {
		case msg.Err != nil:
			m.addLine(WarningStyle.Render("Game aborted: " + msg.Err.Error()))
		default:
			m.addLine(WinStyle.Render(fmt.Sprintf("%s wins the game after %d hands", m.name(msg.Winner), msg.Hands)))
		}
		m.addLine(InfoStyle.Render("Press q to leave."))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Stop()
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		case key.Matches(msg, m.keys.Fold):
			m.decide(game.Fold)
			return m, nil
		case key.Matches(msg, m.keys.Call):
			m.decide(game.Call)
			return m, nil
		case key.Matches(msg, m.keys.Bet):
			m.decide(game.Bet)
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// decide hands a decision to the waiting agent. Keys pressed while no
// decision is pending are ignored.
func (m *Model) decide(d game.Decision) {
	if !m.awaiting {
		return
	}
	select {
	case m.decisions <- d:
		m.awaiting = false
		m.addLine(SelfStyle.Render("You " + d.String()))
	default:
		m.logger.Warn("Decision dropped, previous one not consumed", "decision", d)
	}
}

func (m *Model) applyHistory(msg HistoryMsg) {
	if m.shown == 0 || len(msg.Events) < m.shown {
		m.hands++
		m.shown = 0
		m.addLine(HeaderStyle.Render(fmt.Sprintf("Hand %d", m.hands)))
	}
	for _, e := range msg.Events[m.shown:] {
		m.addLine(m.describe(e))
	}
	m.shown = len(msg.Events)
	if msg.View != nil && msg.View.Finished {
		// the next history belongs to a new hand
		m.shown = 0
	}

	m.hand = msg.Hand
	m.view = msg.View
	m.awaiting = msg.Prompt
}

// describe renders one history event as a log line.
func (m *Model) describe(e game.Event) string {
	who := m.name(e.Player())
	switch e := e.(type) {
	case game.SeatEvent:
		return fmt.Sprintf("%s sits in seat %d", who, e.Seat)
	case game.AnteEvent:
		return fmt.Sprintf("%s antes %d", who, e.Amount)
	case game.DealEvent:
		return fmt.Sprintf("%s is dealt a hidden card", who)
	case game.UpCardEvent:
		return fmt.Sprintf("%s shows %s", who, renderCard(e.Card))
	case game.CallEvent:
		if e.Amount == 0 {
			return fmt.Sprintf("%s checks", who)
		}
		return fmt.Sprintf("%s calls %d", who, e.Amount)
	case game.BetEvent:
		return ActionsStyle.Render(fmt.Sprintf("%s raises %d", who, e.Amount))
	case game.FoldEvent:
		return InfoStyle.Render(who + " folds")
	case game.RevealEvent:
		return fmt.Sprintf("%s reveals %s (%s)", who, renderCards(e.Cards), poker.BestHand(e.Cards))
	case game.WinEvent:
		return WinStyle.Render(fmt.Sprintf("%s wins %d", who, e.Amount))
	case game.OddChipEvent:
		return WinStyle.Render(fmt.Sprintf("%s takes the odd chip (%d)", who, e.Amount))
	default:
		return game.FormatEvent(e)
	}
}

func (m *Model) name(id string) string {
	if id == m.playerID {
		return id + " (you)"
	}
	return id
}

func (m *Model) addLine(line string) {
	m.lines = append(m.lines, line)
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	chrome := lipgloss.Height(m.header()) + lipgloss.Height(m.status()) + lipgloss.Height(m.footer()) + 2
	m.viewport.Width = max(1, m.width-2)
	m.viewport.Height = max(1, m.height-chrome)
	m.viewport.GotoBottom()
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		GameLogStyle.Render(m.viewport.View()),
		m.status(),
		m.footer(),
	)
}

func (m *Model) header() string {
	return HeaderStyle.Render("MonkeyStud") + " " + InfoStyle.Render("playing as "+m.playerID)
}

func (m *Model) status() string {
	if m.view == nil {
		return InfoStyle.Render("Waiting for the first hand...")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", HandInfoStyle.Render("Your hand:"), renderCards(m.hand))
	fmt.Fprintf(&b, "   Pot: %d", m.view.Pot)
	if !m.view.Finished {
		fmt.Fprintf(&b, "   Street: %d   To call: %d", m.view.Street, m.view.ToCall(m.playerID))
	}
	for _, s := range m.view.Opponents(m.playerID) {
		state := renderCards(s.UpCards)
		if s.Folded {
			state = InfoStyle.Render("folded")
		}
		fmt.Fprintf(&b, "\n  %s: %s", s.ID, state)
	}
	return b.String()
}

func (m *Model) footer() string {
	var prompt string
	switch {
	case m.over:
		prompt = InfoStyle.Render("Game over.")
	case m.awaiting:
		prompt = ActionsStyle.Render("Your move:")
	default:
		prompt = InfoStyle.Render("Waiting for opponents...")
	}
	return prompt + "\n" + m.help.View(m.keys)
}

// Decisions delivers the player's choices.
func (m *Model) Decisions() <-chan game.Decision {
	return m.decisions
}

// Done is closed once the player quits.
func (m *Model) Done() <-chan struct{} {
	return m.quit
}

// Stop signals that the player has left the table.
func (m *Model) Stop() {
	m.quitOnce.Do(func() { close(m.quit) })
}

// Awaiting reports whether a decision is pending.
func (m *Model) Awaiting() bool {
	return m.awaiting
}

// Lines returns a copy of the log.
func (m *Model) Lines() []string {
	result := make([]string, len(m.lines))
	copy(result, m.lines)
	return result
}
