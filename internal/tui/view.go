package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/rallyref/internal/export"
	"github.com/roach88/rallyref/internal/match"
)

// styles
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Width(28)
	servingStyle = panelStyle.BorderForeground(lipgloss.Color("42"))
	scoreStyle   = lipgloss.NewStyle().Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

const helpText = "[a/←] Point A  [b/→] Point B  [1/2] Swap  [s] Serve  [u] Undo  [n] Next game  [t] Timer  [r] Reset  [q] Quit"

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.engine.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Game %d", s.GameNumber())))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		renderTeam(s, match.TeamA),
		" ",
		renderTeam(s, match.TeamB),
	))
	b.WriteString("\n")

	if line := statusLine(s); line != "" {
		b.WriteString(statusStyle.Render(line))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	timerState := "paused"
	if m.countdown.Running() {
		timerState = "running"
	}
	fmt.Fprintf(&b, "%s  |  Timer %s (%s)\n", export.RulesLine(s.Settings), m.countdown, timerState)
	b.WriteString(helpStyle.Render(helpText))
	return b.String()
}

func renderTeam(s match.State, id match.TeamID) string {
	t := s.Team(id)
	serving := s.ServingTeam == id

	var b strings.Builder
	name := t.Name
	if serving {
		name += " (serving)"
	}
	b.WriteString(name + "\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d", t.Score)))
	fmt.Fprintf(&b, "  games %d\n", t.GamesWon)

	server := -1
	if serving {
		server = match.ServerSlot(t)
	}
	for slot, p := range t.Players {
		marker := "  "
		if slot == server {
			marker = "● "
		}
		fmt.Fprintf(&b, "%s%-5s %s", marker, match.SlotSide(slot), p.Name)
		if slot == 0 {
			b.WriteString("\n")
		}
	}

	style := panelStyle
	if serving {
		style = servingStyle
	}
	return style.Render(b.String())
}

func statusLine(s match.State) string {
	if winner, ok := s.Winner(); ok {
		w := s.Team(winner)
		return fmt.Sprintf("Match over: %s wins %d-%d", w.Name, w.GamesWon, s.Team(winner.Other()).GamesWon)
	}
	if s.IsGameOver {
		return fmt.Sprintf("Game over at %d-%d. Press n for the next game", s.TeamA.Score, s.TeamB.Score)
	}
	return ""
}
