package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/rallyref/internal/export"
	"github.com/roach88/rallyref/internal/rules"
)

// ProfilesOptions holds flags for the profiles command.
type ProfilesOptions struct {
	*RootOptions
	File string
}

// NewProfilesCommand creates the profiles command.
func NewProfilesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProfilesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List rule profiles",
		Long: `List the built-in rule profiles and any defined in a CUE file.

A profile file has the form:

  profile: league: {
      description: "League night"
      win_at:      15
      best_of:     3
  }

Examples:
  rallyref profiles
  rallyref profiles --file ./club.cue`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfiles(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "extra CUE profile file (default rules.file from config)")

	return cmd
}

func runProfiles(opts *ProfilesOptions, cmd *cobra.Command) error {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}
	file := cfg.Rules.File
	if opts.File != "" {
		file = opts.File
	}

	profiles, err := rules.LoadFile(file)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load rule profiles", err)
	}

	out := opts.formatter(cmd)
	if opts.Format == "json" {
		return out.Success(profiles)
	}

	var b strings.Builder
	for i, p := range profiles {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-14s %s", p.Name, export.RulesLine(p.Settings))
		if p.Description != "" {
			fmt.Fprintf(&b, "  (%s)", p.Description)
		}
	}
	return out.Success(b.String())
}
