package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/rallyref/internal/match"
	"github.com/roach88/rallyref/internal/rules"
)

// Harness executes scenarios. The zero configuration uses the built-in rule
// profiles and discards engine logs.
type Harness struct {
	profiles []rules.Profile
	logger   *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithProfiles sets the profiles scenarios may name.
func WithProfiles(p []rules.Profile) Option {
	return func(h *Harness) {
		h.profiles = p
	}
}

// WithLogger routes engine logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = l
	}
}

// New creates a Harness.
func New(opts ...Option) *Harness {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes scenario with a default Harness.
func Run(scenario *Scenario, opts ...Option) (*Result, error) {
	return New(opts...).Run(scenario)
}

// Run executes a scenario and returns the result.
//
// Execution flow:
// 1. Resolve settings from the profile or inline settings
// 2. Build the opening state and record it as step 0
// 3. Apply each step, recording the post-step scoreboard
// 4. Compare the final state against the expect clause
//
// A returned error means the scenario could not be executed. Expectation
// mismatches are reported through Result.Pass and Result.Errors.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	settings, err := h.settings(scenario)
	if err != nil {
		return nil, err
	}

	setup := match.Setup{Settings: settings, Serving: match.TeamA}
	if scenario.Teams != nil {
		setup.TeamA = scenario.Teams.A
		setup.TeamB = scenario.Teams.B
	}
	if scenario.Serving != "" {
		setup.Serving, err = match.ParseTeamID(scenario.Serving)
		if err != nil {
			return nil, fmt.Errorf("serving: %w", err)
		}
	}
	initial, err := match.NewState(setup)
	if err != nil {
		return nil, fmt.Errorf("failed to build opening state: %w", err)
	}

	actions, err := match.ParseActions(scenario.Steps)
	if err != nil {
		return nil, fmt.Errorf("failed to parse steps: %w", err)
	}

	eng := match.New(initial, match.WithLogger(h.logger))
	result := NewResult()
	result.Trace = append(result.Trace, snapshot(0, "start", "", eng.State(), eng.CanUndo()))

	for i, action := range actions {
		before := eng.State()
		hadHistory := eng.CanUndo()
		action.Apply(eng)
		after := eng.State()

		outcome := describe(action, before, after, hadHistory)
		result.Trace = append(result.Trace, snapshot(i+1, action.String(), outcome, after, eng.CanUndo()))
	}

	result.Final = eng.State()
	for _, e := range checkExpect(scenario.Expect, result.Final, eng.CanUndo()) {
		result.AddError(e.Error())
	}
	return result, nil
}

func (h *Harness) settings(s *Scenario) (match.Settings, error) {
	switch {
	case s.Settings != nil:
		return s.Settings.Resolve(), nil
	case s.Profile != "":
		profiles := h.profiles
		if profiles == nil {
			var err error
			if profiles, err = rules.Builtin(); err != nil {
				return match.Settings{}, fmt.Errorf("failed to load profiles: %w", err)
			}
		}
		p, ok := rules.Lookup(profiles, s.Profile)
		if !ok {
			return match.Settings{}, fmt.Errorf("unknown profile %q", s.Profile)
		}
		return p.Settings, nil
	default:
		return match.DefaultSettings, nil
	}
}

// describe names what a step did, comparing the states around it.
func describe(a match.Action, before, after match.State, hadHistory bool) string {
	switch a.Kind {
	case match.ActionPoint:
		if before.IsGameOver || before.IsMatchOver {
			return OutcomeIgnored
		}
		outcome := OutcomeSideOut
		if before.ServingTeam == a.Team {
			outcome = OutcomeHold
		}
		switch {
		case after.IsMatchOver:
			outcome += " " + OutcomeMatchOver
		case after.IsGameOver:
			outcome += " " + OutcomeGameOver
		}
		return outcome
	case match.ActionUndo:
		if hadHistory {
			return OutcomeUndone
		}
		return OutcomeEmpty
	default:
		return ""
	}
}
