package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/rallyref/internal/match"
)

// ExpectationError is a single mismatch between Expect and the final state.
type ExpectationError struct {
	Field    string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *ExpectationError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

// checkExpect compares every set field of want with s.
func checkExpect(want Expect, s match.State, canUndo bool) []*ExpectationError {
	var errs []*ExpectationError

	checkInt := func(field string, want *int, got int) {
		if want != nil && *want != got {
			errs = append(errs, &ExpectationError{Field: field, Expected: fmt.Sprint(*want), Actual: fmt.Sprint(got)})
		}
	}
	checkBool := func(field string, want *bool, got bool) {
		if want != nil && *want != got {
			errs = append(errs, &ExpectationError{Field: field, Expected: fmt.Sprint(*want), Actual: fmt.Sprint(got)})
		}
	}
	checkSlots := func(field string, want []string, t match.Team) {
		if len(want) == 0 {
			return
		}
		got := []string{t.Players[0].ID, t.Players[1].ID}
		if !strings.EqualFold(want[0], got[0]) || !strings.EqualFold(want[1], got[1]) {
			errs = append(errs, &ExpectationError{Field: field, Expected: strings.Join(want, ","), Actual: strings.Join(got, ",")})
		}
	}

	checkInt("score_a", want.ScoreA, s.TeamA.Score)
	checkInt("score_b", want.ScoreB, s.TeamB.Score)
	checkInt("games_a", want.GamesA, s.TeamA.GamesWon)
	checkInt("games_b", want.GamesB, s.TeamB.GamesWon)
	if want.Serving != "" {
		team, err := match.ParseTeamID(want.Serving)
		if err != nil || team != s.ServingTeam {
			errs = append(errs, &ExpectationError{Field: "serving", Expected: want.Serving, Actual: s.ServingTeam.String()})
		}
	}
	checkBool("game_over", want.GameOver, s.IsGameOver)
	checkBool("match_over", want.MatchOver, s.IsMatchOver)
	checkBool("can_undo", want.CanUndo, canUndo)
	checkSlots("slots_a", want.SlotsA, s.TeamA)
	checkSlots("slots_b", want.SlotsB, s.TeamB)

	return errs
}
