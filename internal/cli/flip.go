package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/rallyref/internal/coin"
	"github.com/roach88/rallyref/internal/match"
)

// FlipOptions holds flags for the flip command.
type FlipOptions struct {
	*RootOptions
	Caller string
	Call   string

	// Source allows overriding the coin (for testing).
	// If nil, defaults to coin.Default().
	Source coin.Source
}

// FlipResult is the JSON payload of the flip command.
type FlipResult struct {
	Face    string       `json:"face"`
	Serving match.TeamID `json:"serving,omitempty"`
}

// NewFlipCommand creates the flip command.
func NewFlipCommand(rootOpts *RootOptions) *cobra.Command {
	return newFlipCommand(&FlipOptions{RootOptions: rootOpts})
}

func newFlipCommand(opts *FlipOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flip",
		Short: "Flip a coin",
		Long: `Flip a coin. With --call, the calling team (--caller, default A)
serves first if the call is right.

Examples:
  rallyref flip
  rallyref flip --call tails --caller B`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlip(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Call, "call", "", "heads|tails, decides the first serve")
	cmd.Flags().StringVar(&opts.Caller, "caller", "A", "team making the call (A|B)")

	return cmd
}

func runFlip(opts *FlipOptions, cmd *cobra.Command) error {
	src := opts.Source
	if src == nil {
		src = coin.Default()
	}
	out := opts.formatter(cmd)

	if opts.Call == "" {
		face := coin.Flip(src)
		if opts.Format == "json" {
			return out.Success(FlipResult{Face: face.String()})
		}
		return out.Success(face.String())
	}

	call, err := parseFace(opts.Call)
	if err != nil {
		return err
	}
	caller, err := match.ParseTeamID(opts.Caller)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --caller", err)
	}

	serving, face := coin.Toss(src, caller, call)
	if opts.Format == "json" {
		return out.Success(FlipResult{Face: face.String(), Serving: serving})
	}
	return out.Success(fmt.Sprintf("%s: team %s serves first", face, serving))
}

func parseFace(s string) (coin.Face, error) {
	switch s {
	case "h", "H", "heads", "Heads":
		return coin.Heads, nil
	case "t", "T", "tails", "Tails":
		return coin.Tails, nil
	default:
		return "", NewExitError(ExitCommandError, fmt.Sprintf("invalid --call %q: must be heads or tails", s))
	}
}
