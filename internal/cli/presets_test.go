package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rallyref/internal/preset"
)

type presetsHarness struct {
	t    *testing.T
	opts *RootOptions
	db   string
}

func newPresetsHarness(t *testing.T, format string) *presetsHarness {
	t.Helper()
	return &presetsHarness{
		t:    t,
		opts: newTestRootOptions(t, format),
		db:   filepath.Join(t.TempDir(), "presets", "rallyref.db"),
	}
}

func (h *presetsHarness) run(stdin string, args ...string) (string, error) {
	h.t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewPresetsCommand(h.opts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--db", h.db))
	err := cmd.Execute()
	return buf.String(), err
}

func TestPresetsCommand_AddListFindDelete(t *testing.T) {
	h := newPresetsHarness(t, "json")

	out, err := h.run("", "add", "Eagles", "Mike", "John")
	require.NoError(t, err)
	var added struct {
		Data []preset.Preset `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &added))
	require.Len(t, added.Data, 1)
	id := added.Data[0].ID
	assert.NotEmpty(t, id)

	_, err = h.run("", "add", "Hawks", "Sarah", "Jane")
	require.NoError(t, err)

	out, err = h.run("", "list")
	require.NoError(t, err)
	var listed struct {
		Data []preset.Preset `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed.Data, 2)
	assert.Equal(t, "Eagles", listed.Data[0].Name)
	assert.Equal(t, "Hawks", listed.Data[1].Name)

	out, err = h.run("", "find", "eagels")
	require.NoError(t, err)
	assert.Contains(t, out, `"name":"Eagles"`)

	out, err = h.run("", "delete", id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","data":{"deleted":"`+id+`"}}`, out)

	_, err = h.run("", "delete", id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no preset with id")
}

func TestPresetsCommand_ImportFromStdin(t *testing.T) {
	h := newPresetsHarness(t, "text")

	out, err := h.run("Eagles, Mike, John\n\nHawks | Sarah | Jane\n", "import", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Eagles: Mike & John")
	assert.Contains(t, out, "Hawks: Sarah & Jane")

	_, err = h.run("Owls, Ann, Bo\nbroken line\n", "import", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	out, err = h.run("", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Owls", "a malformed batch saves nothing")
}

func TestPresetsCommand_ImportLegacyFile(t *testing.T) {
	h := newPresetsHarness(t, "text")
	path := filepath.Join(t.TempDir(), "savedTeams.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"1","name":"Eagles","p1":"Mike","p2":"John"}]`), 0644))

	out, err := h.run("", "import-legacy", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Eagles: Mike & John")

	out, err = h.run("not json", "import-legacy", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "No teams in input.")
}

func TestPresetsCommand_Clear(t *testing.T) {
	h := newPresetsHarness(t, "text")

	_, err := h.run("A, 1, 2\nB, 3, 4\n", "import", "-")
	require.NoError(t, err)

	out, err := h.run("", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2 saved teams.")

	out, err = h.run("", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved teams.")
}

func TestPresetsCommand_FindNoMatch(t *testing.T) {
	h := newPresetsHarness(t, "text")

	_, err := h.run("", "find", "anyone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no preset matches "anyone"`)
}

func TestScoreCommand_PresetFlags(t *testing.T) {
	h := newPresetsHarness(t, "text")
	_, err := h.run("Eagles, Mike, John\nHawks, Sarah, Jane\n", "import", "-")
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	cmd := NewScoreCommand(h.opts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--db", h.db, "--preset-a", "eagle", "--preset-b", "HAWKS", "--b2", "Zoe", "b"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Eagles 0 (games 0)  RIGHT: Mike  LEFT: John")
	assert.Contains(t, buf.String(), "Hawks 1 (games 0)  RIGHT: Sarah  LEFT: Zoe  serving: Zoe")
}
