package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
driver: sim
tiles:
  x: 8
  y: 1
rotation: 0
use_24h: true
schedule:
  enabled: true
  start_hour: 23
  end_hour: 7
  end_minute: 30
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sim", c.Driver)
	assert.Equal(t, 8, c.Tiles.X)
	assert.Equal(t, 1, c.Tiles.Y)
	assert.Equal(t, 0, c.Rotation)
	assert.True(t, c.Use24h)
	assert.True(t, c.Schedule.Enabled)
	assert.Equal(t, 23, c.Schedule.StartHour)
	assert.Equal(t, 30, c.Schedule.EndMinute)
	// Untouched fields keep their defaults.
	assert.Equal(t, 100, c.TickMs)
	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "GPIO4", c.PIRPin)
}

func TestLoadClampsBadValues(t *testing.T) {
	path := writeConfig(t, `
tiles:
  x: 0
  y: -3
tick_ms: 1
timeout_ticks: 0
override_seconds: 0
brightness:
  level: 99
schedule:
  enabled: true
  start_hour: 30
  end_minute: 120
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Tiles.X)
	assert.Equal(t, 1, c.Tiles.Y)
	assert.Equal(t, 10, c.TickMs)
	assert.Equal(t, 1, c.TimeoutTicks)
	assert.Equal(t, 1, c.OverrideSeconds)
	assert.Equal(t, 15, c.Brightness.Level)
	assert.Equal(t, 23, c.Schedule.StartHour)
	assert.Equal(t, 59, c.Schedule.EndMinute)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "tiles: [not a map")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := Default()
	c.Driver = "sim"
	c.Tiles.X = 6
	c.Schedule.Enabled = true
	c.Schedule.StartHour = 22
	require.NoError(t, Save(path, c))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}
