// Package config loads rallyref settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/roach88/rallyref/internal/match"
)

// EnvPrefix prefixes environment overrides, e.g. RALLYREF_MATCH_WIN_AT.
const EnvPrefix = "RALLYREF"

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Match    MatchConfig    `mapstructure:"match"`
	Teams    TeamsConfig    `mapstructure:"teams"`
	Timer    TimerConfig    `mapstructure:"timer"`
	Rules    RulesConfig    `mapstructure:"rules"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// MatchConfig holds the default rules for new matches. A non-empty Profile
// takes precedence over the individual fields.
type MatchConfig struct {
	Profile  string `mapstructure:"profile"`
	WinAt    int    `mapstructure:"win_at"`
	WinByTwo bool   `mapstructure:"win_by_two"`
	BestOf   int    `mapstructure:"best_of"`
	Serving  string `mapstructure:"serving"`
}

// TeamsConfig holds default team names.
type TeamsConfig struct {
	A TeamConfig `mapstructure:"a"`
	B TeamConfig `mapstructure:"b"`
}

// TeamConfig names a team and its players.
type TeamConfig struct {
	Name    string `mapstructure:"name"`
	Player1 string `mapstructure:"player1"`
	Player2 string `mapstructure:"player2"`
}

// TimerConfig holds countdown settings.
type TimerConfig struct {
	Seconds int `mapstructure:"seconds"`
}

// RulesConfig points at an optional CUE file of extra rule profiles.
type RulesConfig struct {
	File string `mapstructure:"file"`
}

// Load reads configuration from file and env. The file is path when given,
// else $RALLYREF_CONFIG, else ~/.config/rallyref/config.yaml. A missing
// default file is not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPrefix + "_CONFIG")
		explicit = path != ""
	}
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "rallyref"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "rallyref", "rallyref.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("match.profile", "")
	v.SetDefault("match.win_at", match.DefaultSettings.WinAt)
	v.SetDefault("match.win_by_two", match.DefaultSettings.WinByTwo)
	v.SetDefault("match.best_of", match.DefaultSettings.BestOf)
	v.SetDefault("match.serving", "A")
	v.SetDefault("teams.a.name", match.DefaultTeamAName)
	v.SetDefault("teams.a.player1", "P1")
	v.SetDefault("teams.a.player2", "P2")
	v.SetDefault("teams.b.name", match.DefaultTeamBName)
	v.SetDefault("teams.b.player1", "P3")
	v.SetDefault("teams.b.player2", "P4")
	v.SetDefault("timer.seconds", 60)
	v.SetDefault("rules.file", "")
}

// Settings returns the configured rules, ignoring Profile.
func (m MatchConfig) Settings() match.Settings {
	return match.Settings{WinAt: m.WinAt, WinByTwo: m.WinByTwo, BestOf: m.BestOf}
}

// Setup converts the configured teams into a match setup with the given
// settings.
func (c Config) Setup(settings match.Settings) (match.Setup, error) {
	serving, err := match.ParseTeamID(c.Match.Serving)
	if err != nil {
		return match.Setup{}, fmt.Errorf("match.serving: %w", err)
	}
	return match.Setup{
		TeamA:    c.Teams.A.setup(),
		TeamB:    c.Teams.B.setup(),
		Settings: settings,
		Serving:  serving,
	}, nil
}

func (t TeamConfig) setup() match.TeamSetup {
	return match.TeamSetup{Name: t.Name, Player1: t.Player1, Player2: t.Player2}
}

// LogLevel parses Log.Level. Unknown values fall back to info.
func (c Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
