package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/rallyref/internal/coin"
	"github.com/roach88/rallyref/internal/config"
	"github.com/roach88/rallyref/internal/match"
	"github.com/roach88/rallyref/internal/preset"
	"github.com/roach88/rallyref/internal/rules"
	"github.com/roach88/rallyref/internal/store"
)

// MatchFlags are the match setup flags shared by play and score. Config
// supplies the defaults; a flag only wins when set explicitly.
type MatchFlags struct {
	TeamA, A1, A2 string
	TeamB, B1, B2 string
	PresetA       string
	PresetB       string
	Profile       string
	WinAt         int
	WinByTwo      bool
	BestOf        int
	Serve         string
	Toss          bool
	Database      string

	// CoinSource allows overriding the coin used by --toss (for testing).
	// If nil, defaults to coin.Default().
	CoinSource coin.Source
}

func (f *MatchFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.TeamA, "team-a", "", "team A name")
	fl.StringVar(&f.A1, "a1", "", "team A player starting on the right")
	fl.StringVar(&f.A2, "a2", "", "team A player starting on the left")
	fl.StringVar(&f.TeamB, "team-b", "", "team B name")
	fl.StringVar(&f.B1, "b1", "", "team B player starting on the right")
	fl.StringVar(&f.B2, "b2", "", "team B player starting on the left")
	fl.StringVar(&f.PresetA, "preset-a", "", "load team A from a saved preset (fuzzy name match)")
	fl.StringVar(&f.PresetB, "preset-b", "", "load team B from a saved preset (fuzzy name match)")
	fl.StringVar(&f.Profile, "profile", "", "rule profile name (see `rallyref profiles`)")
	fl.IntVar(&f.WinAt, "win-at", match.DefaultSettings.WinAt, "points needed to win a game")
	fl.BoolVar(&f.WinByTwo, "win-by-two", match.DefaultSettings.WinByTwo, "require a two-point margin")
	fl.IntVar(&f.BestOf, "best-of", match.DefaultSettings.BestOf, "games in the match (odd)")
	fl.StringVar(&f.Serve, "serve", "", "team serving first (A|B)")
	fl.BoolVar(&f.Toss, "toss", false, "decide the first serve by coin toss (team A calls heads)")
	fl.StringVar(&f.Database, "db", "", "preset database (default from config)")
}

// Build resolves config and flags into a match setup.
func (f *MatchFlags) Build(ctx context.Context, cmd *cobra.Command, cfg config.Config) (match.Setup, error) {
	settings, err := f.settings(cmd, cfg)
	if err != nil {
		return match.Setup{}, err
	}
	setup, err := cfg.Setup(settings)
	if err != nil {
		return match.Setup{}, WrapExitError(ExitCommandError, "invalid config", err)
	}

	if f.PresetA != "" || f.PresetB != "" {
		cat, closeFn, err := openCatalog(databasePath(f.Database, cfg))
		if err != nil {
			return match.Setup{}, err
		}
		defer closeFn()

		if setup.TeamA, err = lookupPreset(ctx, cat, f.PresetA, setup.TeamA); err != nil {
			return match.Setup{}, err
		}
		if setup.TeamB, err = lookupPreset(ctx, cat, f.PresetB, setup.TeamB); err != nil {
			return match.Setup{}, err
		}
	}

	overrideString(cmd, "team-a", f.TeamA, &setup.TeamA.Name)
	overrideString(cmd, "a1", f.A1, &setup.TeamA.Player1)
	overrideString(cmd, "a2", f.A2, &setup.TeamA.Player2)
	overrideString(cmd, "team-b", f.TeamB, &setup.TeamB.Name)
	overrideString(cmd, "b1", f.B1, &setup.TeamB.Player1)
	overrideString(cmd, "b2", f.B2, &setup.TeamB.Player2)

	switch {
	case f.Toss:
		src := f.CoinSource
		if src == nil {
			src = coin.Default()
		}
		serving, face := coin.Toss(src, match.TeamA, coin.Heads)
		setup.Serving = serving
		fmt.Fprintf(cmd.ErrOrStderr(), "Coin toss: %s, %s serves first\n", face, teamName(setup, serving))
	case f.Serve != "":
		if setup.Serving, err = match.ParseTeamID(f.Serve); err != nil {
			return match.Setup{}, WrapExitError(ExitCommandError, "invalid --serve", err)
		}
	}
	return setup, nil
}

func (f *MatchFlags) settings(cmd *cobra.Command, cfg config.Config) (match.Settings, error) {
	settings := cfg.Match.Settings()

	name := cfg.Match.Profile
	if cmd.Flags().Changed("profile") {
		name = f.Profile
	}
	if name != "" {
		profiles, err := rules.LoadFile(cfg.Rules.File)
		if err != nil {
			return match.Settings{}, WrapExitError(ExitCommandError, "failed to load rule profiles", err)
		}
		p, ok := rules.Lookup(profiles, name)
		if !ok {
			return match.Settings{}, NewExitError(ExitCommandError, fmt.Sprintf("unknown profile %q", name))
		}
		settings = p.Settings
	}

	if cmd.Flags().Changed("win-at") {
		settings.WinAt = f.WinAt
	}
	if cmd.Flags().Changed("win-by-two") {
		settings.WinByTwo = f.WinByTwo
	}
	if cmd.Flags().Changed("best-of") {
		settings.BestOf = f.BestOf
	}
	if err := settings.Validate(); err != nil {
		return match.Settings{}, WrapExitError(ExitCommandError, "invalid match settings", err)
	}
	return settings, nil
}

func overrideString(cmd *cobra.Command, flag, value string, dst *string) {
	if cmd.Flags().Changed(flag) {
		*dst = value
	}
}

func teamName(setup match.Setup, id match.TeamID) string {
	name := setup.TeamA.Name
	if id == match.TeamB {
		name = setup.TeamB.Name
	}
	if name == "" {
		return "team " + id.String()
	}
	return name
}

func lookupPreset(ctx context.Context, cat *preset.Catalog, query string, fallback match.TeamSetup) (match.TeamSetup, error) {
	if query == "" {
		return fallback, nil
	}
	p, ok, err := cat.Find(ctx, query)
	if err != nil {
		return match.TeamSetup{}, WrapExitError(ExitCommandError, "failed to read presets", err)
	}
	if !ok {
		return match.TeamSetup{}, NewExitError(ExitCommandError, fmt.Sprintf("no preset matches %q", query))
	}
	return p.TeamSetup(), nil
}

func databasePath(flag string, cfg config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Database.Path
}

// openCatalog opens the preset database at path, creating its directory.
func openCatalog(path string) (*preset.Catalog, func(), error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "failed to create database directory", err)
		}
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return preset.NewCatalog(st, preset.WithLogger(slog.Default())), func() { st.Close() }, nil
}
