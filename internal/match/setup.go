package match

import "fmt"

// Default team and player names used when a setup leaves them blank.
const (
	DefaultTeamAName = "Team A"
	DefaultTeamBName = "Team B"
)

var defaultPlayerNames = map[TeamID][2]string{
	TeamA: {"P1", "P2"},
	TeamB: {"P3", "P4"},
}

// TeamSetup names a team and its two players. Player1 starts on the right.
type TeamSetup struct {
	Name    string `json:"name" yaml:"name"`
	Player1 string `json:"player1" yaml:"player1"`
	Player2 string `json:"player2" yaml:"player2"`
}

// Setup is everything needed to start a match.
type Setup struct {
	TeamA    TeamSetup
	TeamB    TeamSetup
	Settings Settings
	Serving  TeamID
}

// NewState builds the opening state for a match: zero scores, zero games
// won, the chosen serving team. Blank names fall back to defaults.
func NewState(setup Setup) (State, error) {
	if err := setup.Settings.Validate(); err != nil {
		return State{}, err
	}
	serving := setup.Serving
	if serving == 0 {
		serving = TeamA
	}
	if !serving.Valid() {
		return State{}, &ValidationError{Field: "serving", Message: fmt.Sprintf("unknown team %d", int(serving))}
	}

	return State{
		TeamA:       newTeam(TeamA, setup.TeamA),
		TeamB:       newTeam(TeamB, setup.TeamB),
		ServingTeam: serving,
		Settings:    setup.Settings,
	}, nil
}

// DefaultState is a new match with default teams and DefaultSettings.
func DefaultState() State {
	s, err := NewState(Setup{Settings: DefaultSettings, Serving: TeamA})
	if err != nil {
		panic(err)
	}
	return s
}

func newTeam(id TeamID, ts TeamSetup) Team {
	name := ts.Name
	if name == "" {
		if id == TeamA {
			name = DefaultTeamAName
		} else {
			name = DefaultTeamBName
		}
	}
	defaults := defaultPlayerNames[id]
	p1, p2 := ts.Player1, ts.Player2
	if p1 == "" {
		p1 = defaults[0]
	}
	if p2 == "" {
		p2 = defaults[1]
	}

	prefix := "a"
	if id == TeamB {
		prefix = "b"
	}
	return Team{
		Name: name,
		Players: [2]Player{
			{ID: prefix + "1", Name: p1, InitialSide: SideRight},
			{ID: prefix + "2", Name: p2, InitialSide: SideLeft},
		},
	}
}
