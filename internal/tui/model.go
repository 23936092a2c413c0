// Package tui is the interactive scoreboard. It forwards key presses to the
// match engine and countdown and renders their state.
package tui

import (
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/roach88/rallyref/internal/match"
	"github.com/roach88/rallyref/internal/timer"
)

// tickMsg advances the countdown. Ticks from an earlier start carry a stale
// gen and are dropped.
type tickMsg struct {
	gen int
}

// Model is the bubbletea model for a match.
type Model struct {
	engine       *match.Engine
	countdown    *timer.Countdown
	timerSeconds int
	tickGen      int
	status       string
	quitting     bool
	logger       *slog.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithTimerSeconds sets the countdown length used by reset.
func WithTimerSeconds(seconds int) Option {
	return func(m *Model) {
		m.timerSeconds = seconds
	}
}

// WithLogger sets the logger for UI events.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// New creates a scoreboard over eng.
func New(eng *match.Engine, opts ...Option) *Model {
	m := &Model{
		engine:       eng,
		timerSeconds: timer.DefaultSeconds,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.countdown = timer.New(m.timerSeconds)
	return m
}

// State returns the current match state.
func (m *Model) State() match.State { return m.engine.State() }

// Countdown exposes the bench timer.
func (m *Model) Countdown() *timer.Countdown { return m.countdown }

// Status is the last transient message shown under the scoreboard.
func (m *Model) Status() string { return m.status }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		if msg.gen != m.tickGen || !m.countdown.Running() {
			return m, nil
		}
		if m.countdown.Tick() {
			m.status = "Time!"
			m.logger.Info("timer expired")
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch k.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "a", "left":
		m.point(match.TeamA)
	case "b", "right":
		m.point(match.TeamB)
	case "1":
		m.engine.SwapPlayers(match.TeamA)
	case "2":
		m.engine.SwapPlayers(match.TeamB)
	case "s":
		m.engine.ToggleServingTeam()
	case "u":
		if !m.engine.Undo() {
			m.status = "Nothing to undo"
		}
	case "n":
		s := m.engine.State()
		if !s.IsGameOver || s.IsMatchOver {
			m.status = "Next game is available once a game ends"
			return m, nil
		}
		m.engine.NextGame()
	case "t":
		m.countdown.Toggle()
		if m.countdown.Running() {
			m.tickGen++
			return m, m.tick()
		}
	case "r":
		m.countdown.Reset(m.timerSeconds)
		m.tickGen++
	}
	return m, nil
}

func (m *Model) point(team match.TeamID) {
	s := m.engine.State()
	if s.IsMatchOver {
		m.status = "Match over"
		return
	}
	if s.IsGameOver {
		m.status = "Game over, press n for the next game"
		return
	}
	m.engine.RegisterPoint(team)
}

func (m *Model) tick() tea.Cmd {
	gen := m.tickGen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Run starts the full-screen scoreboard and blocks until the user quits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
