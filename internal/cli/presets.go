package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/rallyref/internal/preset"
)

// PresetsOptions holds flags shared by the presets subcommands.
type PresetsOptions struct {
	*RootOptions
	Database string
}

// NewPresetsCommand creates the presets command and its subcommands.
func NewPresetsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PresetsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage saved teams",
		Long: `Manage saved teams (a team name and two players).

Batch import reads one team per line, fields separated by commas, pipes
or tabs:

  Eagles, Mike, John
  Hawks | Sarah | Jane

Examples:
  rallyref presets add Eagles Mike John
  rallyref presets import teams.txt
  rallyref presets import-legacy savedTeams.json
  rallyref presets find eagels`,
	}

	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "preset database (default from config)")

	cmd.AddCommand(newPresetsListCommand(opts))
	cmd.AddCommand(newPresetsAddCommand(opts))
	cmd.AddCommand(newPresetsImportCommand(opts))
	cmd.AddCommand(newPresetsImportLegacyCommand(opts))
	cmd.AddCommand(newPresetsDeleteCommand(opts))
	cmd.AddCommand(newPresetsClearCommand(opts))
	cmd.AddCommand(newPresetsFindCommand(opts))

	return cmd
}

// withCatalog opens the configured database for the duration of fn.
func (o *PresetsOptions) withCatalog(fn func(*preset.Catalog) error) error {
	cfg, err := o.Config()
	if err != nil {
		return err
	}
	cat, closeFn, err := openCatalog(databasePath(o.Database, cfg))
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(cat)
}

func presetsCommand(use, short string, args cobra.PositionalArgs, run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          args,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

func newPresetsListCommand(opts *PresetsOptions) *cobra.Command {
	return presetsCommand("list", "List saved teams", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		return opts.withCatalog(func(cat *preset.Catalog) error {
			list, err := cat.List(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to list presets", err)
			}
			return writePresets(opts, cmd, list, "No saved teams.")
		})
	})
}

func newPresetsAddCommand(opts *PresetsOptions) *cobra.Command {
	return presetsCommand("add <team> <player1> <player2>", "Save a team", cobra.ExactArgs(3), func(cmd *cobra.Command, args []string) error {
		return opts.withCatalog(func(cat *preset.Catalog) error {
			p, err := cat.Add(cmd.Context(), preset.Draft{Name: args[0], Player1: args[1], Player2: args[2]})
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to add preset", err)
			}
			return writePresets(opts, cmd, []preset.Preset{p}, "")
		})
	})
}

func newPresetsImportCommand(opts *PresetsOptions) *cobra.Command {
	return presetsCommand("import <file|->", "Import teams from a text batch", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		return opts.withCatalog(func(cat *preset.Catalog) error {
			added, err := cat.Import(cmd.Context(), string(data))
			if err != nil {
				return WrapExitError(ExitCommandError, "import failed, nothing saved", err)
			}
			return writePresets(opts, cmd, added, "No teams in input.")
		})
	})
}

func newPresetsImportLegacyCommand(opts *PresetsOptions) *cobra.Command {
	return presetsCommand("import-legacy <file|->", "Import teams from a saved-teams JSON export", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		return opts.withCatalog(func(cat *preset.Catalog) error {
			added, err := cat.ImportLegacy(cmd.Context(), data)
			if err != nil {
				return WrapExitError(ExitCommandError, "legacy import failed", err)
			}
			return writePresets(opts, cmd, added, "No teams in input.")
		})
	})
}

func newPresetsDeleteCommand(opts *PresetsOptions) *cobra.Command {
	return presetsCommand("delete <id>", "Delete a saved team", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return opts.withCatalog(func(cat *preset.Catalog) error {
			ok, err := cat.Delete(cmd.Context(), args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to delete preset", err)
			}
			if !ok {
				return NewExitError(ExitCommandError, fmt.Sprintf("no preset with id %q", args[0]))
			}
			out := opts.formatter(cmd)
			if opts.Format == "json" {
				return out.Success(map[string]any{"deleted": args[0]})
			}
			return out.Success(fmt.Sprintf("Deleted %s.", args[0]))
		})
	})
}

func newPresetsClearCommand(opts *PresetsOptions) *cobra.Command {
	return presetsCommand("clear", "Delete all saved teams", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		return opts.withCatalog(func(cat *preset.Catalog) error {
			n, err := cat.Clear(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to clear presets", err)
			}
			out := opts.formatter(cmd)
			if opts.Format == "json" {
				return out.Success(map[string]any{"deleted": n})
			}
			return out.Success(fmt.Sprintf("Deleted %d saved teams.", n))
		})
	})
}

func newPresetsFindCommand(opts *PresetsOptions) *cobra.Command {
	return presetsCommand("find <name>", "Find a saved team by approximate name", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return opts.withCatalog(func(cat *preset.Catalog) error {
			p, ok, err := cat.Find(cmd.Context(), args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to search presets", err)
			}
			if !ok {
				return NewExitError(ExitCommandError, fmt.Sprintf("no preset matches %q", args[0]))
			}
			return writePresets(opts, cmd, []preset.Preset{p}, "")
		})
	})
}

func writePresets(opts *PresetsOptions, cmd *cobra.Command, list []preset.Preset, empty string) error {
	out := opts.formatter(cmd)
	if opts.Format == "json" {
		return out.Success(list)
	}
	if len(list) == 0 {
		return out.Success(empty)
	}
	var b strings.Builder
	for i, p := range list {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s  %s: %s & %s", p.ID, p.Name, p.Player1, p.Player2)
	}
	return out.Success(b.String())
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to read input", err)
	}
	return data, nil
}
