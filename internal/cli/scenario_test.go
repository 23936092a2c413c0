package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `name: hold
description: "serving team holds"
steps: [a]
expect:
  score_a: 1
  slots_a: [a2, a1]
`

const failingScenario = `name: wrong_serve
description: "expects the wrong server"
steps: [a, b]
expect:
  serving: A
`

func writeScenarios(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func runScenarioCommand(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewScenarioCommand(newTestRootOptions(t, format))
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestScenarioCommandMissingArgs(t *testing.T) {
	_, err := runScenarioCommand(t, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestScenarioCommandNonExistentPath(t *testing.T) {
	_, err := runScenarioCommand(t, "text", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario path not found")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestScenarioCommandEmptyDir(t *testing.T) {
	out, err := runScenarioCommand(t, "text", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found")
}

func TestScenarioCommandPass(t *testing.T) {
	dir := writeScenarios(t, map[string]string{
		"hold.yaml":       passingScenario,
		"nested/two.yml":  passingScenario,
		"notes/readme.md": "not a scenario",
	})

	out, err := runScenarioCommand(t, "text", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ hold")
	assert.Contains(t, out, "2 passed, 0 failed, 2 total")
}

func TestScenarioCommandFailureExitCode(t *testing.T) {
	dir := writeScenarios(t, map[string]string{
		"hold.yaml":  passingScenario,
		"wrong.yaml": failingScenario,
		"bad.yaml":   "name: [unclosed",
	})

	out, err := runScenarioCommand(t, "text", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "2 of 3 scenarios failed")

	assert.Contains(t, out, "✗ wrong_serve")
	assert.Contains(t, out, "serving: expected A, got B")
	assert.Contains(t, out, "✗ bad.yaml")
	assert.Contains(t, out, "failed to load scenario")
}

func TestScenarioCommandFilterAndTrace(t *testing.T) {
	dir := writeScenarios(t, map[string]string{
		"hold.yaml":  passingScenario,
		"wrong.yaml": failingScenario,
	})

	out, err := runScenarioCommand(t, "text", dir, "--filter", "ho*", "--trace")
	require.NoError(t, err)
	assert.NotContains(t, out, "wrong_serve")
	assert.Contains(t, out, "    01 point A  1-0 games 0-0 serve A:a1 slots a2,a1 b1,b2 hold\n")
}

func TestScenarioCommandJSON(t *testing.T) {
	dir := writeScenarios(t, map[string]string{
		"hold.yaml":  passingScenario,
		"wrong.yaml": failingScenario,
	})

	out, err := runScenarioCommand(t, "json", dir)
	require.Error(t, err)

	var resp struct {
		Status string          `json:"status"`
		Data   ScenarioSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 2, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.Passed)
	assert.Equal(t, 1, resp.Data.Failed)
}

func TestScenarioCommandRepoScenarios(t *testing.T) {
	out, err := runScenarioCommand(t, "text", filepath.Join("..", "harness", "testdata", "scenarios"))
	require.NoError(t, err, out)
	assert.Contains(t, out, "5 passed, 0 failed, 5 total")
}
