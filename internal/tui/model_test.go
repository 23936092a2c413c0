package tui

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rallyref/internal/match"
)

func newTestModel(t *testing.T, settings match.Settings) *Model {
	t.Helper()
	s, err := match.NewState(match.Setup{
		TeamA:    match.TeamSetup{Name: "Eagles", Player1: "Mike", Player2: "John"},
		TeamB:    match.TeamSetup{Name: "Hawks", Player1: "Sarah", Player2: "Jane"},
		Settings: settings,
		Serving:  match.TeamA,
	})
	require.NoError(t, err)
	eng := match.New(s, match.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return New(eng, WithTimerSeconds(30))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func TestUpdate_PointKeys(t *testing.T) {
	m := newTestModel(t, match.DefaultSettings)

	press(m, runes("a"), tea.KeyMsg{Type: tea.KeyLeft}, runes("b"), tea.KeyMsg{Type: tea.KeyRight})

	s := m.State()
	assert.Equal(t, 2, s.TeamA.Score)
	assert.Equal(t, 2, s.TeamB.Score)
	assert.Equal(t, match.TeamB, s.ServingTeam)
}

func TestUpdate_SwapServeUndo(t *testing.T) {
	m := newTestModel(t, match.DefaultSettings)

	press(m, runes("1"))
	assert.Equal(t, "a2", m.State().TeamA.Players[0].ID)

	press(m, runes("2"))
	assert.Equal(t, "b2", m.State().TeamB.Players[0].ID)

	press(m, runes("s"))
	assert.Equal(t, match.TeamB, m.State().ServingTeam)

	press(m, runes("u"), runes("u"), runes("u"))
	s := m.State()
	assert.Equal(t, match.TeamA, s.ServingTeam)
	assert.Equal(t, "a1", s.TeamA.Players[0].ID)
	assert.Equal(t, "b1", s.TeamB.Players[0].ID)

	press(m, runes("u"))
	assert.Equal(t, "Nothing to undo", m.Status())
}

func TestUpdate_NextGameOnlyAfterGameOver(t *testing.T) {
	m := newTestModel(t, match.Settings{WinAt: 2, WinByTwo: false, BestOf: 3})

	press(m, runes("a"), runes("n"))
	assert.Equal(t, 1, m.State().TeamA.Score, "next ignored mid-game")
	assert.NotEmpty(t, m.Status())

	press(m, runes("a"))
	require.True(t, m.State().IsGameOver)

	press(m, runes("b"))
	assert.Equal(t, 0, m.State().TeamB.Score, "points blocked while game over")

	press(m, runes("n"))
	s := m.State()
	assert.False(t, s.IsGameOver)
	assert.Equal(t, 0, s.TeamA.Score)
	assert.Equal(t, 1, s.TeamA.GamesWon)
}

func TestUpdate_NoNextGameAfterMatchOver(t *testing.T) {
	m := newTestModel(t, match.Settings{WinAt: 1, WinByTwo: false, BestOf: 1})

	press(m, runes("a"))
	require.True(t, m.State().IsMatchOver)

	press(m, runes("n"))
	assert.True(t, m.State().IsGameOver, "next refused once the match is decided")
	assert.Contains(t, m.View(), "Match over: Eagles wins 1-0")
}

func TestUpdate_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, match.DefaultSettings)
		cmd := press(m, k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.View())
	}
}

func TestUpdate_Timer(t *testing.T) {
	m := newTestModel(t, match.DefaultSettings)
	c := m.Countdown()
	assert.Equal(t, 30, c.Remaining())

	cmd := press(m, runes("t"))
	require.NotNil(t, cmd, "starting the timer schedules a tick")
	assert.True(t, c.Running())

	gen := m.tickGen
	m.Update(tickMsg{gen: gen})
	assert.Equal(t, 29, c.Remaining())

	m.Update(tickMsg{gen: gen - 1})
	assert.Equal(t, 29, c.Remaining(), "stale tick ignored")

	press(m, runes("t"))
	assert.False(t, c.Running())
	m.Update(tickMsg{gen: m.tickGen})
	assert.Equal(t, 29, c.Remaining(), "paused timer does not tick")

	press(m, runes("r"))
	assert.Equal(t, 30, c.Remaining())
	assert.False(t, c.Running())
}

func TestUpdate_TimerExpiry(t *testing.T) {
	m := newTestModel(t, match.DefaultSettings)
	m.countdown.Reset(1)
	press(m, runes("t"))

	_, cmd := m.Update(tickMsg{gen: m.tickGen})

	assert.Nil(t, cmd)
	assert.True(t, m.Countdown().Expired())
	assert.Equal(t, "Time!", m.Status())
}

func TestView(t *testing.T) {
	m := newTestModel(t, match.Settings{WinAt: 11, WinByTwo: true, BestOf: 3})
	press(m, runes("a"))

	v := m.View()

	assert.Contains(t, v, "Game 1")
	assert.Contains(t, v, "Eagles (serving)")
	assert.Contains(t, v, "Hawks")
	assert.Contains(t, v, "● LEFT  Mike")
	assert.Contains(t, v, "RIGHT John")
	assert.Contains(t, v, "Rally to 11, win by 2, best of 3")
	assert.Contains(t, v, "Timer 0:30 (paused)")
}
