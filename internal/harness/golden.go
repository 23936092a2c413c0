package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RenderTrace formats a result as stable text, one line per trace event:
//
//	01 point A  1-0 games 0-0 serve A:a1 slots a2,a1 b1,b2 hold
//
// followed by the pass/fail verdict and any errors.
func RenderTrace(name string, result *Result) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "scenario: %s\n", name)
	st := result.Final.Settings
	fmt.Fprintf(&b, "rules: win_at=%d win_by_two=%t best_of=%d\n", st.WinAt, st.WinByTwo, st.BestOf)
	fmt.Fprintf(&b, "teams: %s vs %s\n", result.Final.TeamA.Name, result.Final.TeamB.Name)

	for _, ev := range result.Trace {
		fmt.Fprintf(&b, "%02d %-8s %d-%d games %d-%d serve %s:%s slots %s,%s %s,%s",
			ev.Step, ev.Action,
			ev.ScoreA, ev.ScoreB,
			ev.GamesA, ev.GamesB,
			ev.Serving, ev.Server,
			ev.SlotsA[0], ev.SlotsA[1], ev.SlotsB[0], ev.SlotsB[1],
		)
		if ev.Outcome != "" {
			fmt.Fprintf(&b, " %s", ev.Outcome)
		}
		b.WriteByte('\n')
	}

	if result.Pass {
		b.WriteString("result: pass\n")
	} else {
		b.WriteString("result: fail\n")
		for _, e := range result.Errors {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
	}
	return []byte(b.String())
}

// RunWithGolden executes a scenario and compares its rendered trace against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if trace doesn't match golden file.
func RunWithGolden(t *testing.T, scenario *Scenario, opts ...Option) (*Result, error) {
	t.Helper()

	result, err := Run(scenario, opts...)
	if err != nil {
		return nil, err
	}
	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares an already computed result with its golden file.
func AssertGolden(t *testing.T, scenarioName string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, RenderTrace(scenarioName, result))
}
