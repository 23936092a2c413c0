// Package export renders a finished or in-progress match for sharing: a CSV
// summary row and a short human-readable result.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/roach88/rallyref/internal/match"
)

// DateFormat is the layout of the CSV date column.
const DateFormat = "2006-01-02"

// CSVHeader returns the column names for CSVRecord.
func CSVHeader() []string {
	return []string{
		"date", "team_a", "team_b",
		"score_a", "score_b", "games_a", "games_b",
		"win_at", "win_by_two", "best_of",
	}
}

// CSVRecord summarizes s as one CSV row.
func CSVRecord(s match.State, date time.Time) []string {
	return []string{
		date.Format(DateFormat),
		s.TeamA.Name,
		s.TeamB.Name,
		strconv.Itoa(s.TeamA.Score),
		strconv.Itoa(s.TeamB.Score),
		strconv.Itoa(s.TeamA.GamesWon),
		strconv.Itoa(s.TeamB.GamesWon),
		strconv.Itoa(s.Settings.WinAt),
		strconv.FormatBool(s.Settings.WinByTwo),
		strconv.Itoa(s.Settings.BestOf),
	}
}

// WriteCSV writes the summary row, preceded by the header when header is
// true.
func WriteCSV(w io.Writer, s match.State, date time.Time, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(CSVHeader()); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
	}
	if err := cw.Write(CSVRecord(s, date)); err != nil {
		return fmt.Errorf("write csv record: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// RulesLine describes the settings, e.g. "Rally to 11, win by 2, best of 3".
func RulesLine(st match.Settings) string {
	margin := "win by 2"
	if !st.WinByTwo {
		margin = "sudden death"
	}
	return fmt.Sprintf("Rally to %d, %s, best of %d", st.WinAt, margin, st.BestOf)
}

// ShareText returns a short multi-line summary of the match.
func ShareText(s match.State) string {
	var b strings.Builder

	if winner, ok := s.Winner(); ok {
		w, l := s.Team(winner), s.Team(winner.Other())
		fmt.Fprintf(&b, "%s def. %s %d-%d\n", w.Name, l.Name, w.GamesWon, l.GamesWon)
	} else {
		status := "in progress"
		if s.IsGameOver {
			status = "game over"
		}
		fmt.Fprintf(&b, "%s vs %s, game %d %s\n", s.TeamA.Name, s.TeamB.Name, s.GameNumber(), status)
	}

	label := "Score"
	if s.IsGameOver || s.IsMatchOver {
		label = "Final game"
	}
	fmt.Fprintf(&b, "%s: %d-%d\n", label, s.TeamA.Score, s.TeamB.Score)
	fmt.Fprintf(&b, "%s\n", RulesLine(s.Settings))
	fmt.Fprintf(&b, "%s: %s & %s | %s: %s & %s",
		s.TeamA.Name, s.TeamA.Players[0].Name, s.TeamA.Players[1].Name,
		s.TeamB.Name, s.TeamB.Players[0].Name, s.TeamB.Players[1].Name,
	)
	return b.String()
}
