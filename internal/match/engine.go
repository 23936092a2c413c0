package match

import "log/slog"

// Engine applies scoring operations to a match State and keeps an undo
// history.
type Engine struct {
	state   State
	history *History
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for operation tracing.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithHistoryLimit overrides DefaultHistoryLimit.
func WithHistoryLimit(limit int) Option {
	return func(e *Engine) {
		e.history = NewHistory(limit)
	}
}

// New creates an Engine starting from initial.
func New(initial State, opts ...Option) *Engine {
	e := &Engine{
		state:   initial,
		history: NewHistory(DefaultHistoryLimit),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartMatch discards the current match and history and begins s.
func (e *Engine) StartMatch(s State) {
	e.state = s
	e.history.Clear()
	e.logger.Info("match started",
		"team_a", s.TeamA.Name,
		"team_b", s.TeamB.Name,
		"serving", s.ServingTeam,
		"win_at", s.Settings.WinAt,
		"win_by_two", s.Settings.WinByTwo,
		"best_of", s.Settings.BestOf,
	)
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state.Clone()
}

// CanUndo reports whether Undo would change anything.
func (e *Engine) CanUndo() bool {
	return e.history.Len() > 0
}

// HistoryLen returns the number of undo snapshots held.
func (e *Engine) HistoryLen() int {
	return e.history.Len()
}

// RegisterPoint awards a rally to team. It is ignored once the game or match
// is over.
//
// If team was serving it keeps the serve and its players swap slots (hold).
// Otherwise the serve moves to team and nobody moves (side-out).
func (e *Engine) RegisterPoint(team TeamID) {
	if !team.Valid() {
		e.logger.Debug("point ignored: invalid team", "team", int(team))
		return
	}
	if e.state.IsGameOver || e.state.IsMatchOver {
		e.logger.Debug("point ignored: game over", "team", team)
		return
	}
	e.history.Push(e.state)

	next := e.state
	scorer := next.team(team)
	scorer.Score++

	hold := next.ServingTeam == team
	if hold {
		scorer.swapSlots()
	} else {
		next.ServingTeam = team
	}

	if winner, ok := CheckWin(next.TeamA.Score, next.TeamB.Score, next.Settings); ok {
		next.team(winner).GamesWon++
		next.IsGameOver = true
		need := next.Settings.GamesToClinch()
		if next.TeamA.GamesWon >= need || next.TeamB.GamesWon >= need {
			next.IsMatchOver = true
		}
	}

	e.state = next
	e.logger.Debug("point registered",
		"team", team,
		"hold", hold,
		"score_a", next.TeamA.Score,
		"score_b", next.TeamB.Score,
		"serving", next.ServingTeam,
	)
	if next.IsGameOver {
		e.logger.Info("game over",
			"winner", team,
			"score_a", next.TeamA.Score,
			"score_b", next.TeamB.Score,
			"games_a", next.TeamA.GamesWon,
			"games_b", next.TeamB.GamesWon,
			"match_over", next.IsMatchOver,
		)
	}
}

// SwapPlayers exchanges the slots of team's two players.
func (e *Engine) SwapPlayers(team TeamID) {
	if !team.Valid() {
		e.logger.Debug("swap ignored: invalid team", "team", int(team))
		return
	}
	e.history.Push(e.state)
	e.state.team(team).swapSlots()
	e.logger.Debug("players swapped", "team", team)
}

// ToggleServingTeam hands the serve to the other team without touching
// scores or positions.
func (e *Engine) ToggleServingTeam() {
	e.history.Push(e.state)
	e.state.ServingTeam = e.state.ServingTeam.Other()
	e.logger.Debug("serve toggled", "serving", e.state.ServingTeam)
}

// NextGame zeroes both scores, reopens play and clears history. Games won,
// serving team and slots carry over. Callers should only use it after a
// game ends and before the match ends.
func (e *Engine) NextGame() {
	e.state.TeamA.Score = 0
	e.state.TeamB.Score = 0
	e.state.IsGameOver = false
	e.history.Clear()
	e.logger.Info("next game", "game", e.state.GameNumber())
}

// Undo restores the most recent snapshot. It returns false when there is
// nothing to undo.
func (e *Engine) Undo() bool {
	prev, ok := e.history.Pop()
	if !ok {
		e.logger.Debug("undo ignored: empty history")
		return false
	}
	e.state = prev
	e.logger.Debug("undo", "remaining", e.history.Len())
	return true
}
