package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/rallyref/internal/timer"
)

// TimerOptions holds flags for the timer command.
type TimerOptions struct {
	*RootOptions
	Seconds int

	// Ticker allows overriding the one-second ticker (for testing).
	// If nil, defaults to timer.NewTicker(time.Second).
	Ticker timer.Ticker
}

// NewTimerCommand creates the timer command.
func NewTimerCommand(rootOpts *RootOptions) *cobra.Command {
	return newTimerCommand(&TimerOptions{RootOptions: rootOpts})
}

func newTimerCommand(opts *TimerOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run a countdown on the terminal",
		Long: `Count down from --seconds (default from config, 60) and print the
remaining time each second. Ctrl+C stops early.

Example:
  rallyref timer --seconds 30`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimer(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Seconds, "seconds", 0, "countdown length in seconds")

	return cmd
}

func runTimer(opts *TimerOptions, cmd *cobra.Command) error {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	seconds := cfg.Timer.Seconds
	if opts.Seconds > 0 {
		seconds = opts.Seconds
	}

	ticker := opts.Ticker
	if ticker == nil {
		ticker = timer.NewTicker(time.Second)
	}

	// Stop on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := cmd.OutOrStdout()
	c := timer.New(seconds)
	fmt.Fprintln(w, c)
	err = timer.Run(ctx, c, ticker, func(c *timer.Countdown) {
		fmt.Fprintln(w, c)
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintf(w, "Stopped at %s\n", c)
			return nil
		}
		return err
	}
	fmt.Fprintln(w, "Time!")
	return nil
}
