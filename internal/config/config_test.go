package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rallyref/internal/match"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("RALLYREF_CONFIG", "")
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".local", "share", "rallyref", "rallyref.db"), c.Database.Path)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, match.DefaultSettings, c.Match.Settings())
	assert.Equal(t, "A", c.Match.Serving)
	assert.Equal(t, TeamConfig{Name: "Team A", Player1: "P1", Player2: "P2"}, c.Teams.A)
	assert.Equal(t, TeamConfig{Name: "Team B", Player1: "P3", Player2: "P4"}, c.Teams.B)
	assert.Equal(t, 60, c.Timer.Seconds)
	assert.Empty(t, c.Rules.File)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "rallyref.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
match:
  win_at: 11
  best_of: 3
  serving: B
teams:
  a:
    name: Eagles
    player1: Mike
timer:
  seconds: 30
`), 0644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, match.Settings{WinAt: 11, WinByTwo: true, BestOf: 3}, c.Match.Settings())
	assert.Equal(t, "Eagles", c.Teams.A.Name)
	assert.Equal(t, "Mike", c.Teams.A.Player1)
	assert.Equal(t, "P2", c.Teams.A.Player2, "unset keys keep defaults")
	assert.Equal(t, 30, c.Timer.Seconds)

	setup, err := c.Setup(c.Match.Settings())
	require.NoError(t, err)
	assert.Equal(t, match.TeamB, setup.Serving)
	assert.Equal(t, "Eagles", setup.TeamA.Name)
}

func TestLoad_ConfigFromEnvPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0644))
	t.Setenv("RALLYREF_CONFIG", path)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, c.LogLevel())
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("RALLYREF_MATCH_WIN_AT", "15")
	t.Setenv("RALLYREF_TEAMS_B_NAME", "Hawks")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 15, c.Match.WinAt)
	assert.Equal(t, "Hawks", c.Teams.B.Name)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestSetup_BadServing(t *testing.T) {
	c := Config{Match: MatchConfig{Serving: "C"}}
	_, err := c.Setup(match.DefaultSettings)
	require.Error(t, err)
	assert.True(t, match.IsValidationError(err))
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Config{Log: LogConfig{Level: "warn"}}.LogLevel())
	assert.Equal(t, slog.LevelInfo, Config{Log: LogConfig{Level: "loud"}}.LogLevel())
}
