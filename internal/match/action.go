package match

import (
	"fmt"
	"strings"
)

// ActionKind names an engine operation.
type ActionKind string

const (
	ActionPoint ActionKind = "point"
	ActionSwap  ActionKind = "swap"
	ActionServe ActionKind = "serve"
	ActionUndo  ActionKind = "undo"
	ActionNext  ActionKind = "next"
)

// Action is a single parsed engine operation. Team is set for point and swap.
type Action struct {
	Kind ActionKind
	Team TeamID
}

// String renders the action in canonical form, e.g. "point A" or "serve".
func (a Action) String() string {
	if a.Kind == ActionPoint || a.Kind == ActionSwap {
		return fmt.Sprintf("%s %s", a.Kind, a.Team)
	}
	return string(a.Kind)
}

// ParseAction parses an operation. Accepted forms:
//
//	point A | a        point B | b
//	swap A  | swap:a   swap B  | swap:b
//	serve   | flip     undo    | u       next | n
func ParseAction(s string) (Action, error) {
	fields := strings.Fields(strings.ToLower(strings.ReplaceAll(s, ":", " ")))
	if len(fields) == 0 {
		return Action{}, &ValidationError{Field: "action", Message: "empty action"}
	}

	verb, args := fields[0], fields[1:]
	switch verb {
	case "a", "b":
		if len(args) != 0 {
			break
		}
		team, _ := ParseTeamID(verb)
		return Action{Kind: ActionPoint, Team: team}, nil
	case "point", "swap":
		if len(args) != 1 {
			return Action{}, &ValidationError{Field: "action", Message: fmt.Sprintf("%q needs a team (A or B)", s)}
		}
		team, err := ParseTeamID(args[0])
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: ActionKind(verb), Team: team}, nil
	case "serve", "flip":
		if len(args) == 0 {
			return Action{Kind: ActionServe}, nil
		}
	case "undo", "u":
		if len(args) == 0 {
			return Action{Kind: ActionUndo}, nil
		}
	case "next", "n":
		if len(args) == 0 {
			return Action{Kind: ActionNext}, nil
		}
	}
	return Action{}, &ValidationError{Field: "action", Message: fmt.Sprintf("unknown action %q", s)}
}

// ParseActions parses each string in order, stopping at the first error.
func ParseActions(ss []string) ([]Action, error) {
	actions := make([]Action, 0, len(ss))
	for i, s := range ss {
		a, err := ParseAction(s)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i+1, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// Apply runs the action against e.
func (a Action) Apply(e *Engine) {
	switch a.Kind {
	case ActionPoint:
		e.RegisterPoint(a.Team)
	case ActionSwap:
		e.SwapPlayers(a.Team)
	case ActionServe:
		e.ToggleServingTeam()
	case ActionUndo:
		e.Undo()
	case ActionNext:
		e.NextGame()
	}
}
