package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/rallyref/internal/match"
	"github.com/roach88/rallyref/internal/tui"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	MatchFlags
	LogFile string
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Keep score interactively",
		Long: `Open the full-screen scoreboard.

Teams, players and rules come from the config file, then from saved
presets, then from flags. The TUI owns the terminal, so engine logs go
to --log-file when given and are discarded otherwise.

Examples:
  rallyref play --team-a Eagles --a1 Mike --a2 John --team-b Hawks --b1 Sarah --b2 Jane
  rallyref play --preset-a eagles --preset-b hawks --profile tournament --toss`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, cmd)
		},
	}

	opts.MatchFlags.register(cmd)
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "write engine logs to this file")

	return cmd
}

func runPlay(opts *PlayOptions, cmd *cobra.Command) error {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	setup, err := opts.MatchFlags.Build(cmd.Context(), cmd, cfg)
	if err != nil {
		return err
	}
	state, err := match.NewState(setup)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid match setup", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open log file", err)
		}
		defer f.Close()
		level := cfg.LogLevel()
		if opts.Verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	eng := match.New(state, match.WithLogger(logger))
	eng.StartMatch(state)

	model := tui.New(eng,
		tui.WithTimerSeconds(cfg.Timer.Seconds),
		tui.WithLogger(logger),
	)
	if err := tui.Run(model); err != nil {
		return fmt.Errorf("scoreboard: %w", err)
	}
	return nil
}
