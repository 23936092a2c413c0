package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/rallyref/internal/match"
)

// Scenario is a scripted match: an opening setup, a list of steps and the
// expected final state.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Profile names a rule profile. Mutually exclusive with Settings.
	Profile string `yaml:"profile,omitempty"`

	// Settings gives the rules inline. Omitted fields take the defaults
	// (21, win by two, single game).
	Settings *SettingsSpec `yaml:"settings,omitempty"`

	// Teams optionally names the teams and players.
	Teams *TeamsSpec `yaml:"teams,omitempty"`

	// Serving is the team serving first, "A" (default) or "B".
	Serving string `yaml:"serving,omitempty"`

	// Steps are actions in match.ParseAction form.
	Steps []string `yaml:"steps"`

	// Expect is checked against the final state.
	Expect Expect `yaml:"expect"`
}

// SettingsSpec is the inline form of match.Settings.
type SettingsSpec struct {
	WinAt    int   `yaml:"win_at,omitempty"`
	WinByTwo *bool `yaml:"win_by_two,omitempty"`
	BestOf   int   `yaml:"best_of,omitempty"`
}

// Resolve fills omitted fields from match.DefaultSettings.
func (s SettingsSpec) Resolve() match.Settings {
	out := match.DefaultSettings
	if s.WinAt != 0 {
		out.WinAt = s.WinAt
	}
	if s.WinByTwo != nil {
		out.WinByTwo = *s.WinByTwo
	}
	if s.BestOf != 0 {
		out.BestOf = s.BestOf
	}
	return out
}

// TeamsSpec names both teams.
type TeamsSpec struct {
	A match.TeamSetup `yaml:"a"`
	B match.TeamSetup `yaml:"b"`
}

// Expect lists final-state fields to check. Nil and empty fields are not
// checked.
type Expect struct {
	ScoreA    *int     `yaml:"score_a,omitempty"`
	ScoreB    *int     `yaml:"score_b,omitempty"`
	GamesA    *int     `yaml:"games_a,omitempty"`
	GamesB    *int     `yaml:"games_b,omitempty"`
	Serving   string   `yaml:"serving,omitempty"`
	GameOver  *bool    `yaml:"game_over,omitempty"`
	MatchOver *bool    `yaml:"match_over,omitempty"`
	CanUndo   *bool    `yaml:"can_undo,omitempty"`
	SlotsA    []string `yaml:"slots_a,omitempty"`
	SlotsB    []string `yaml:"slots_b,omitempty"`
}

func (e Expect) empty() bool {
	return e.ScoreA == nil && e.ScoreB == nil &&
		e.GamesA == nil && e.GamesB == nil &&
		e.Serving == "" &&
		e.GameOver == nil && e.MatchOver == nil && e.CanUndo == nil &&
		len(e.SlotsA) == 0 && len(e.SlotsB) == 0
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Profile != "" && s.Settings != nil {
		return fmt.Errorf("profile and settings are mutually exclusive")
	}
	if s.Settings != nil {
		if err := s.Settings.Resolve().Validate(); err != nil {
			return fmt.Errorf("settings: %w", err)
		}
	}
	if s.Serving != "" {
		if _, err := match.ParseTeamID(s.Serving); err != nil {
			return fmt.Errorf("serving: %w", err)
		}
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	for i, step := range s.Steps {
		if _, err := match.ParseAction(step); err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
	}

	if s.Expect.empty() {
		return fmt.Errorf("expect is required and must name at least one field")
	}
	if s.Expect.Serving != "" {
		if _, err := match.ParseTeamID(s.Expect.Serving); err != nil {
			return fmt.Errorf("expect.serving: %w", err)
		}
	}
	if n := len(s.Expect.SlotsA); n != 0 && n != 2 {
		return fmt.Errorf("expect.slots_a: need 2 player ids, got %d", n)
	}
	if n := len(s.Expect.SlotsB); n != 0 && n != 2 {
		return fmt.Errorf("expect.slots_b: need 2 player ids, got %d", n)
	}
	return nil
}
