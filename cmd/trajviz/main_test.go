package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fileConfig = "theme: dark\nresolution: 120\ntick_interval: 30ms\nlayout:\n  mode: hide\n"

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trajviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// runSetup parses args for the named subcommand of a fresh command tree and
// runs the persistent setup on it.
func runSetup(t *testing.T, name string, args ...string) {
	t.Helper()
	root := newRootCmd()
	var cmd *cobra.Command
	for _, c := range root.Commands() {
		if c.Name() == name {
			cmd = c
		}
	}
	require.NotNil(t, cmd, name)
	require.NoError(t, cmd.ParseFlags(args))
	require.NoError(t, setup(cmd, nil))
}

func TestSetupConfigFileWithoutFlags(t *testing.T) {
	path := writeConfig(t, fileConfig)
	runSetup(t, "frame", "--config", path)

	assert.Equal(t, "dark", settings.Theme)
	assert.Equal(t, 120, settings.Resolution)
	assert.Equal(t, 30*time.Millisecond, settings.TickInterval)
	assert.Equal(t, "hide", settings.Layout.Mode)
	assert.False(t, settings.Panel.ShowCounter)
}

func TestSetupFlagsOverrideConfigFile(t *testing.T) {
	path := writeConfig(t, fileConfig)
	runSetup(t, "frame",
		"--config", path,
		"--theme", "light",
		"--resolution", "80",
		"--interval", "50ms",
		"--mode", "counter",
		"--counter",
	)

	assert.Equal(t, "light", settings.Theme)
	assert.Equal(t, 80, settings.Resolution)
	assert.Equal(t, 50*time.Millisecond, settings.TickInterval)
	assert.Equal(t, "counter", settings.Layout.Mode)
	assert.True(t, settings.Panel.ShowCounter)
}

func TestSetupMetricsFlag(t *testing.T) {
	runSetup(t, "bench")
	assert.Equal(t, []string{"iterations", "time_ms"}, settings.Bench.Metrics)

	runSetup(t, "bench", "--metrics", "iterations,grad_norm")
	assert.Equal(t, []string{"iterations", "grad_norm"}, settings.Bench.Metrics)
}

func TestSetupPresetUnderConfigFile(t *testing.T) {
	path := writeConfig(t, "theme: light\n")
	runSetup(t, "frame", "--config", path, "--preset", "presentation")

	assert.Equal(t, "light", settings.Theme)
	assert.Equal(t, 48, settings.Panel.Width)
	assert.Equal(t, 40*time.Millisecond, settings.TickInterval)
}

func TestSetupInvalid(t *testing.T) {
	root := newRootCmd()
	cmd, _, err := root.Find([]string{"frame"})
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags([]string{"--mode", "grid"}))
	assert.Error(t, setup(cmd, nil))

	require.NoError(t, cmd.ParseFlags([]string{"--mode", "counter", "--preset", "huge"}))
	assert.Error(t, setup(cmd, nil))
}
