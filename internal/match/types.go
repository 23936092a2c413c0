package match

import (
	"fmt"
	"strings"
)

// Side is a half of the court from the perspective of a team.
type Side string

const (
	SideLeft  Side = "LEFT"
	SideRight Side = "RIGHT"
)

// TeamID identifies one of the two teams. The zero value is not a team.
type TeamID int

const (
	TeamA TeamID = iota + 1
	TeamB
)

// String returns "A" or "B".
func (t TeamID) String() string {
	switch t {
	case TeamA:
		return "A"
	case TeamB:
		return "B"
	default:
		return fmt.Sprintf("TeamID(%d)", int(t))
	}
}

// Valid reports whether t is TeamA or TeamB.
func (t TeamID) Valid() bool {
	return t == TeamA || t == TeamB
}

// Other returns the opposing team.
func (t TeamID) Other() TeamID {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

// MarshalText encodes the team as "A" or "B".
func (t TeamID) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid team id %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText accepts "A"/"B" in any case.
func (t *TeamID) UnmarshalText(text []byte) error {
	id, err := ParseTeamID(string(text))
	if err != nil {
		return err
	}
	*t = id
	return nil
}

// ParseTeamID parses "A", "B", "a" or "b".
func ParseTeamID(s string) (TeamID, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return TeamA, nil
	case "B":
		return TeamB, nil
	default:
		return 0, &ValidationError{Field: "team", Message: fmt.Sprintf("unknown team %q: must be A or B", s)}
	}
}

// Player is a participant. Identity survives slot swaps.
type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	InitialSide Side   `json:"initial_side"`
}

// Team is a doubles pair with its running score.
//
// Players[0] is the right-court occupant and Players[1] the left-court one.
type Team struct {
	Name     string    `json:"name"`
	Players  [2]Player `json:"players"`
	Score    int       `json:"score"`
	GamesWon int       `json:"games_won"`
}

// swapSlots exchanges the two players' court positions.
func (t *Team) swapSlots() {
	t.Players[0], t.Players[1] = t.Players[1], t.Players[0]
}

// Settings are the scoring rules for a match.
type Settings struct {
	WinAt    int  `json:"win_at" yaml:"win_at"`
	WinByTwo bool `json:"win_by_two" yaml:"win_by_two"`
	BestOf   int  `json:"best_of" yaml:"best_of"`
}

// DefaultSettings is rally to 21, win by two, single game.
var DefaultSettings = Settings{WinAt: 21, WinByTwo: true, BestOf: 1}

// GamesToClinch is the number of games needed to take the match.
func (s Settings) GamesToClinch() int {
	return (s.BestOf + 1) / 2
}

// Validate checks that WinAt is positive and BestOf is a positive odd count.
func (s Settings) Validate() error {
	if s.WinAt <= 0 {
		return &ValidationError{Field: "win_at", Message: fmt.Sprintf("must be positive, got %d", s.WinAt)}
	}
	if s.BestOf <= 0 || s.BestOf%2 == 0 {
		return &ValidationError{Field: "best_of", Message: fmt.Sprintf("must be a positive odd number, got %d", s.BestOf)}
	}
	return nil
}

// State is the complete scoreboard for a match. It is the unit of undo.
type State struct {
	TeamA       Team     `json:"team_a"`
	TeamB       Team     `json:"team_b"`
	ServingTeam TeamID   `json:"serving_team"`
	Settings    Settings `json:"settings"`
	IsGameOver  bool     `json:"is_game_over"`
	IsMatchOver bool     `json:"is_match_over"`
}

// Clone returns an independent copy of s. State contains no reference
// types, so the copy shares nothing with the original.
func (s State) Clone() State {
	return s
}

// Team returns the team identified by id.
func (s State) Team(id TeamID) Team {
	if id == TeamB {
		return s.TeamB
	}
	return s.TeamA
}

// team returns a pointer to the team identified by id for mutation.
func (s *State) team(id TeamID) *Team {
	if id == TeamB {
		return &s.TeamB
	}
	return &s.TeamA
}

// Winner returns the match winner once IsMatchOver is set.
func (s State) Winner() (TeamID, bool) {
	if !s.IsMatchOver {
		return 0, false
	}
	if s.TeamA.GamesWon > s.TeamB.GamesWon {
		return TeamA, true
	}
	return TeamB, true
}

// GameNumber is the 1-based number of the game in progress, or of the game
// just finished when IsGameOver is set.
func (s State) GameNumber() int {
	n := s.TeamA.GamesWon + s.TeamB.GamesWon
	if s.IsGameOver {
		return n
	}
	return n + 1
}
