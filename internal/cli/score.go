package cli

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/rallyref/internal/export"
	"github.com/roach88/rallyref/internal/match"
)

// ScoreOptions holds flags for the score command.
type ScoreOptions struct {
	*RootOptions
	MatchFlags
	CSV   bool
	Share bool
	Date  string

	// Now allows overriding the clock used for the CSV date (for testing).
	// If nil, defaults to time.Now.
	Now func() time.Time
}

// ScoreResult is the JSON payload of the score command.
type ScoreResult struct {
	State   match.State `json:"state"`
	Server  string      `json:"server"`
	CanUndo bool        `json:"can_undo"`
	CSV     string      `json:"csv,omitempty"`
	Share   string      `json:"share,omitempty"`
}

// NewScoreCommand creates the score command.
func NewScoreCommand(rootOpts *RootOptions) *cobra.Command {
	return newScoreCommand(&ScoreOptions{RootOptions: rootOpts})
}

func newScoreCommand(opts *ScoreOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <action>...",
		Short: "Apply actions without the TUI and print the result",
		Long: `Apply a sequence of scoring actions to a new match and print the
final scoreboard.

Actions:
  a | point A        rally won by team A
  b | point B        rally won by team B
  swap A | swap:b    swap a team's players
  serve | flip       hand the serve to the other team
  undo | u           undo the last change
  next | n           start the next game

Examples:
  rallyref score a a b a
  rallyref score --win-at 11 --best-of 3 a b b next a --share
  rallyref score --profile rally15 a b --csv --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(opts, args, cmd)
		},
	}

	opts.MatchFlags.register(cmd)
	cmd.Flags().BoolVar(&opts.CSV, "csv", false, "print a CSV summary row with header")
	cmd.Flags().BoolVar(&opts.Share, "share", false, "print a shareable result")
	cmd.Flags().StringVar(&opts.Date, "date", "", "date for the CSV row (YYYY-MM-DD, default today)")

	return cmd
}

func runScore(opts *ScoreOptions, args []string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	actions, err := match.ParseActions(args)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid actions", err)
	}
	setup, err := opts.MatchFlags.Build(cmd.Context(), cmd, cfg)
	if err != nil {
		return err
	}
	state, err := match.NewState(setup)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid match setup", err)
	}

	eng := match.New(state, match.WithLogger(slog.Default()))
	eng.StartMatch(state)
	for _, a := range actions {
		out.VerboseLog("apply %s", a)
		a.Apply(eng)
	}
	final := eng.State()

	result := ScoreResult{
		State:   final,
		Server:  match.ServingPlayer(final).ID,
		CanUndo: eng.CanUndo(),
	}
	if opts.CSV {
		date, err := opts.csvDate()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := export.WriteCSV(&buf, final, date, true); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
		result.CSV = buf.String()
	}
	if opts.Share {
		result.Share = export.ShareText(final)
	}

	if opts.Format == "json" {
		return out.Success(result)
	}
	return out.Success(renderScore(result))
}

func (o *ScoreOptions) csvDate() (time.Time, error) {
	if o.Date != "" {
		d, err := time.Parse(export.DateFormat, o.Date)
		if err != nil {
			return time.Time{}, WrapExitError(ExitCommandError, "invalid --date", err)
		}
		return d, nil
	}
	if o.Now != nil {
		return o.Now(), nil
	}
	return time.Now(), nil
}

// renderScore is the text form of a ScoreResult.
func renderScore(r ScoreResult) string {
	s := r.State
	var b strings.Builder

	for _, id := range []match.TeamID{match.TeamA, match.TeamB} {
		t := s.Team(id)
		fmt.Fprintf(&b, "%s %d (games %d)  %s: %s  %s: %s",
			t.Name, t.Score, t.GamesWon,
			match.SlotSide(0), t.Players[0].Name,
			match.SlotSide(1), t.Players[1].Name,
		)
		if s.ServingTeam == id {
			fmt.Fprintf(&b, "  serving: %s", match.ServingPlayer(s).Name)
		}
		b.WriteByte('\n')
	}
	b.WriteString(export.RulesLine(s.Settings))

	switch winner, ok := s.Winner(); {
	case ok:
		fmt.Fprintf(&b, "\nMatch over: %s wins", s.Team(winner).Name)
	case s.IsGameOver:
		fmt.Fprintf(&b, "\nGame %d over", s.GameNumber())
	}

	if r.CSV != "" {
		b.WriteString("\n\n")
		b.WriteString(strings.TrimRight(r.CSV, "\n"))
	}
	if r.Share != "" {
		b.WriteString("\n\n")
		b.WriteString(r.Share)
	}
	return b.String()
}
