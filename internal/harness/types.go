package harness

import "github.com/roach88/rallyref/internal/match"

// Step outcomes recorded in TraceEvent.Outcome.
const (
	OutcomeHold      = "hold"
	OutcomeSideOut   = "side-out"
	OutcomeIgnored   = "ignored"
	OutcomeGameOver  = "game-over"
	OutcomeMatchOver = "match-over"
	OutcomeUndone    = "undone"
	OutcomeEmpty     = "empty"
)

// TraceEvent is the scoreboard after one step. Step 0 is the opening state.
type TraceEvent struct {
	Step      int          `json:"step"`
	Action    string       `json:"action"`
	Outcome   string       `json:"outcome,omitempty"`
	ScoreA    int          `json:"score_a"`
	ScoreB    int          `json:"score_b"`
	GamesA    int          `json:"games_a"`
	GamesB    int          `json:"games_b"`
	Serving   match.TeamID `json:"serving"`
	Server    string       `json:"server"`
	SlotsA    [2]string    `json:"slots_a"`
	SlotsB    [2]string    `json:"slots_b"`
	GameOver  bool         `json:"game_over"`
	MatchOver bool         `json:"match_over"`
	CanUndo   bool         `json:"can_undo"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expectation matched.
	Pass bool `json:"pass"`

	// Trace holds the opening state followed by one event per step.
	Trace []TraceEvent `json:"trace"`

	// Errors lists expectation mismatches. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Final is the state after the last step.
	Final match.State `json:"final"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// snapshot builds a TraceEvent from s.
func snapshot(step int, action, outcome string, s match.State, canUndo bool) TraceEvent {
	return TraceEvent{
		Step:      step,
		Action:    action,
		Outcome:   outcome,
		ScoreA:    s.TeamA.Score,
		ScoreB:    s.TeamB.Score,
		GamesA:    s.TeamA.GamesWon,
		GamesB:    s.TeamB.GamesWon,
		Serving:   s.ServingTeam,
		Server:    match.ServingPlayer(s).ID,
		SlotsA:    [2]string{s.TeamA.Players[0].ID, s.TeamA.Players[1].ID},
		SlotsB:    [2]string{s.TeamB.Players[0].ID, s.TeamB.Players[1].ID},
		GameOver:  s.IsGameOver,
		MatchOver: s.IsMatchOver,
		CanUndo:   canUndo,
	}
}
