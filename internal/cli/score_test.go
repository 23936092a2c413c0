package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rallyref/internal/match"
	"github.com/roach88/rallyref/internal/testutil"
)

func runScoreCommand(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewScoreCommand(newTestRootOptions(t, format))
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestScoreCommand_Text(t *testing.T) {
	out, err := runScoreCommand(t, "text",
		"--team-a", "Eagles", "--a1", "Mike", "--a2", "John",
		"--team-b", "Hawks",
		"a", "a", "b",
	)
	require.NoError(t, err)

	want := "Eagles 2 (games 0)  RIGHT: Mike  LEFT: John\n" +
		"Hawks 1 (games 0)  RIGHT: P3  LEFT: P4  serving: P4\n" +
		"Rally to 21, win by 2, best of 1\n"
	assert.Equal(t, want, out)
}

func TestScoreCommand_MatchOverWithShare(t *testing.T) {
	out, err := runScoreCommand(t, "text",
		"--win-at", "2", "--win-by-two=false", "--serve", "B",
		"b", "b", "a",
		"--share",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "Match over: Team B wins")
	assert.Contains(t, out, "Team B def. Team A 1-0\nFinal game: 0-2\nRally to 2, sudden death, best of 1\n")
}

func TestScoreCommand_CSV(t *testing.T) {
	out, err := runScoreCommand(t, "text", "--date", "2026-05-01", "--csv", "a", "b", "b")
	require.NoError(t, err)

	assert.Contains(t, out, "\n\ndate,team_a,team_b,score_a,score_b,games_a,games_b,win_at,win_by_two,best_of\n"+
		"2026-05-01,Team A,Team B,1,2,0,0,21,true,1")
}

func TestScoreCommand_CSVDefaultsToNow(t *testing.T) {
	opts := &ScoreOptions{
		RootOptions: newTestRootOptions(t, "json"),
		Now:         func() time.Time { return time.Date(2026, 7, 4, 9, 0, 0, 0, time.UTC) },
	}
	d, err := opts.csvDate()
	require.NoError(t, err)
	assert.Equal(t, "2026-07-04", d.Format("2006-01-02"))
}

func TestScoreCommand_JSON(t *testing.T) {
	out, err := runScoreCommand(t, "json", "--profile", "tournament", "a", "swap:b", "undo", "serve")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   ScoreResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	s := resp.Data.State
	assert.Equal(t, match.Settings{WinAt: 11, WinByTwo: true, BestOf: 3}, s.Settings)
	assert.Equal(t, 1, s.TeamA.Score)
	assert.Equal(t, match.TeamB, s.ServingTeam)
	assert.Equal(t, "b1", s.TeamB.Players[0].ID, "swap was undone")
	assert.Equal(t, "b1", resp.Data.Server)
	assert.True(t, resp.Data.CanUndo)
}

func TestScoreCommand_FlagsOverrideProfile(t *testing.T) {
	out, err := runScoreCommand(t, "text", "--profile", "tournament", "--win-at", "15", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "Rally to 15, win by 2, best of 3")
}

func TestScoreCommand_Toss(t *testing.T) {
	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	opts := &ScoreOptions{RootOptions: newTestRootOptions(t, "text")}
	// Team A calls heads; a scripted tails hands the serve to team B, and
	// the manual serve flip hands it back.
	opts.CoinSource = testutil.NewScriptedSource(1)

	cmd := newScoreCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(errBuf)
	cmd.SetArgs([]string{"--toss", "serve"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errBuf.String(), "Coin toss: Tails, Team B serves first")
	assert.Contains(t, buf.String(), "Team A 0 (games 0)  RIGHT: P1  LEFT: P2  serving: P1")
}

func TestScoreCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no actions", []string{}, "requires at least 1 arg"},
		{"bad action", []string{"lob"}, "invalid actions"},
		{"even best_of", []string{"--best-of", "4", "a"}, "invalid match settings"},
		{"unknown profile", []string{"--profile", "nope", "a"}, `unknown profile "nope"`},
		{"bad serve", []string{"--serve", "C", "a"}, "invalid --serve"},
		{"bad date", []string{"--csv", "--date", "05/01/2026", "a"}, "invalid --date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runScoreCommand(t, "text", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
