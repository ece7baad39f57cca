package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ballpit/core"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/sensor"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ballpit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, parameter.DefaultBodyCount, cfg.Simulation.Bodies)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
simulation:
  bodies: 25
  palette: gray
loop:
  frame_interval: 8ms
sensor:
  mode: keyboard
  orientation: ios
audio:
  enabled: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Simulation.Bodies)
	assert.Equal(t, parameter.DefaultObstacleCount, cfg.Simulation.Obstacles)
	assert.Equal(t, 8*time.Millisecond, cfg.Loop.FrameInterval)
	assert.Equal(t, parameter.SpawnInterval, cfg.Loop.SpawnInterval)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, -1.0, cfg.Audio.Volume)

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, core.PaletteGray, p)

	m, err := cfg.SensorMode()
	require.NoError(t, err)
	assert.Equal(t, sensor.ModeKeyboard, m)

	o, err := cfg.Orientation()
	require.NoError(t, err)
	assert.Equal(t, sensor.OrientationIOS, o)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "simulation:\n  bodys: 3\n", "bodys"},
		{"bad palette", "simulation:\n  palette: neon\n", "simulation.palette"},
		{"bad sensor", "sensor:\n  mode: gps\n", "sensor.mode"},
		{"bad orientation", "sensor:\n  orientation: sideways\n", "sensor.orientation"},
		{"bad duration", "loop:\n  frame_interval: soon\n", "decode yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.want), err.Error())
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_Clamps(t *testing.T) {
	cfg := Default()
	cfg.Simulation.Bodies = 500
	cfg.Simulation.Obstacles = -2
	cfg.Simulation.Passes = 0
	cfg.Simulation.Seed = 0
	cfg.Loop.FrameInterval = -time.Second
	cfg.Loop.MetricsInterval = -time.Second
	cfg.Sensor.PollInterval = 0
	cfg.Sensor.Root = ""
	cfg.Audio.Volume = 40
	cfg.Log.Dir = ""

	require.NoError(t, cfg.Validate())

	assert.Equal(t, parameter.MaxBodyCount, cfg.Simulation.Bodies)
	assert.Equal(t, parameter.MinObstacleCount, cfg.Simulation.Obstacles)
	assert.Equal(t, parameter.RelaxationPasses, cfg.Simulation.Passes)
	assert.Equal(t, uint64(1), cfg.Simulation.Seed)
	assert.Equal(t, parameter.FrameUpdateInterval, cfg.Loop.FrameInterval)
	assert.Equal(t, time.Duration(0), cfg.Loop.MetricsInterval)
	assert.Equal(t, parameter.SensorPollInterval, cfg.Sensor.PollInterval)
	assert.Equal(t, parameter.IIORoot, cfg.Sensor.Root)
	assert.Equal(t, MaxVolume, cfg.Audio.Volume)
	assert.Equal(t, "logs", cfg.Log.Dir)

	cfg.Simulation.Bodies = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, parameter.MinBodyCount, cfg.Simulation.Bodies)
}
