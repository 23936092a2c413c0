package preset

import "github.com/roach88/rallyref/internal/match"

// Preset is a saved team: a name and two player names.
type Preset struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

// Draft is a preset that has not been assigned an ID yet.
type Draft struct {
	Name    string `json:"name"`
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

// TeamSetup converts the preset into match setup input.
func (p Preset) TeamSetup() match.TeamSetup {
	return match.TeamSetup{Name: p.Name, Player1: p.Player1, Player2: p.Player2}
}
