package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rallyref/internal/testutil"
)

func TestTimerCommand(t *testing.T) {
	ticker := testutil.NewManualTicker(3)
	for range 3 {
		ticker.Tick()
	}

	buf := &bytes.Buffer{}
	cmd := newTimerCommand(&TimerOptions{
		RootOptions: newTestRootOptions(t, "text"),
		Ticker:      ticker,
	})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--seconds", "3"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "0:03\n0:02\n0:01\n0:00\nTime!\n", buf.String())
	assert.True(t, ticker.Stopped())
}

func TestTimerCommand_SecondsFromConfig(t *testing.T) {
	isolateConfig(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("timer:\n  seconds: 2\n"), 0644))

	ticker := testutil.NewManualTicker(2)
	ticker.Tick()
	ticker.Tick()

	buf := &bytes.Buffer{}
	cmd := newTimerCommand(&TimerOptions{
		RootOptions: &RootOptions{Format: "text", ConfigPath: cfgPath},
		Ticker:      ticker,
	})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "0:02\n0:01\n0:00\nTime!\n", buf.String())
}
