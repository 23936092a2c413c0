// Package harness runs scripted match scenarios against the scoring engine.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: deuce_at_ten
//	description: "Win-by-two keeps the game alive at 11-10"
//	settings:            # or `profile: rally11`
//	  win_at: 11
//	  win_by_two: true
//	  best_of: 1
//	teams:
//	  a: { name: Eagles, player1: Mike, player2: John }
//	  b: { name: Hawks, player1: Sarah, player2: Jane }
//	serving: A
//	steps:
//	  - point A
//	  - swap B
//	  - undo
//	expect:
//	  score_a: 1
//	  serving: A
//	  slots_a: [a2, a1]
//
// Steps use the action grammar of match.ParseAction. Expect is a subset
// match against the final state: only the listed fields are checked.
//
// # Trace
//
// Run records one TraceEvent for the opening state and one per step. Each
// event carries the post-step scoreboard and an outcome for points ("hold",
// "side-out" or "ignored", followed by "game-over"/"match-over" when the
// rally ended something) and undo ("undone" or "empty").
//
// RenderTrace turns a Result into a stable text form, which RunWithGolden
// compares against testdata/golden/<name>.golden. To regenerate:
//
//	go test ./internal/harness -update
package harness
