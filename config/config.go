// Package config loads ballpit settings from YAML layered over built-in defaults
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/ballpit/core"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/sensor"
)

// Config is the root document
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Loop       LoopConfig       `yaml:"loop"`
	Sensor     SensorConfig     `yaml:"sensor"`
	Audio      AudioConfig      `yaml:"audio"`
	Log        LogConfig        `yaml:"log"`
}

type SimulationConfig struct {
	Bodies    int     `yaml:"bodies"`
	Obstacles int     `yaml:"obstacles"`
	Palette   string  `yaml:"palette"`
	GravityX  float64 `yaml:"gravity_x"`
	GravityY  float64 `yaml:"gravity_y"`
	Passes    int     `yaml:"passes"`
	Seed      uint64  `yaml:"seed"`
}

type LoopConfig struct {
	FrameInterval   time.Duration `yaml:"frame_interval"`
	SpawnInterval   time.Duration `yaml:"spawn_interval"`
	MetricsInterval time.Duration `yaml:"metrics_interval"`
}

type SensorConfig struct {
	Mode         string        `yaml:"mode"`
	Orientation  string        `yaml:"orientation"`
	Root         string        `yaml:"root"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	// Volume is a base-2 exponent applied to impact clicks; 0 is unity
	Volume float64 `yaml:"volume"`
}

type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"`
}

// Volume bounds accepted by Validate
const (
	MinVolume = -8.0
	MaxVolume = 2.0
)

// Default returns the reference settings
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Bodies:    parameter.DefaultBodyCount,
			Obstacles: parameter.DefaultObstacleCount,
			Palette:   core.PaletteRGB.String(),
			GravityX:  parameter.DefaultGravityX,
			GravityY:  parameter.DefaultGravityY,
			Passes:    parameter.RelaxationPasses,
			Seed:      1,
		},
		Loop: LoopConfig{
			FrameInterval:   parameter.FrameUpdateInterval,
			SpawnInterval:   parameter.SpawnInterval,
			MetricsInterval: 5 * time.Second,
		},
		Sensor: SensorConfig{
			Mode:         sensor.ModeAuto.String(),
			Orientation:  sensor.OrientationAndroid.String(),
			Root:         parameter.IIORoot,
			PollInterval: parameter.SensorPollInterval,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  -1,
		},
		Log: LogConfig{
			Enabled: false,
			Dir:     "logs",
			Level:   "debug",
		},
	}
}

// Load reads path over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := Decode(f, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays YAML from r onto cfg; unknown keys are rejected and an empty document is not an error
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

// Validate clamps numeric settings into policy ranges and rejects unknown names
func (c *Config) Validate() error {
	s := &c.Simulation
	s.Bodies = min(max(s.Bodies, parameter.MinBodyCount), parameter.MaxBodyCount)
	s.Obstacles = min(max(s.Obstacles, parameter.MinObstacleCount), parameter.MaxObstacleCount)
	if s.Passes < 1 {
		s.Passes = parameter.RelaxationPasses
	}
	if s.Seed == 0 {
		s.Seed = 1
	}
	if _, err := c.Palette(); err != nil {
		return err
	}

	def := Default()
	if c.Loop.FrameInterval <= 0 {
		c.Loop.FrameInterval = def.Loop.FrameInterval
	}
	if c.Loop.SpawnInterval <= 0 {
		c.Loop.SpawnInterval = def.Loop.SpawnInterval
	}
	if c.Loop.MetricsInterval < 0 {
		c.Loop.MetricsInterval = 0
	}

	if _, err := c.SensorMode(); err != nil {
		return err
	}
	if _, err := c.Orientation(); err != nil {
		return err
	}
	if c.Sensor.Root == "" {
		c.Sensor.Root = def.Sensor.Root
	}
	if c.Sensor.PollInterval <= 0 {
		c.Sensor.PollInterval = def.Sensor.PollInterval
	}

	c.Audio.Volume = min(max(c.Audio.Volume, MinVolume), MaxVolume)

	if c.Log.Dir == "" {
		c.Log.Dir = def.Log.Dir
	}
	return nil
}

// Palette resolves the configured palette name
func (c *Config) Palette() (core.Palette, error) {
	p, err := core.ParsePalette(c.Simulation.Palette)
	if err != nil {
		return p, fmt.Errorf("simulation.palette: %w", err)
	}
	return p, nil
}

// SensorMode resolves the configured sensor mode
func (c *Config) SensorMode() (sensor.Mode, error) {
	m, err := sensor.ParseMode(c.Sensor.Mode)
	if err != nil {
		return m, fmt.Errorf("sensor.mode: %w", err)
	}
	return m, nil
}

// Orientation resolves the configured axis mapping
func (c *Config) Orientation() (sensor.Orientation, error) {
	o, err := sensor.ParseOrientation(c.Sensor.Orientation)
	if err != nil {
		return o, fmt.Errorf("sensor.orientation: %w", err)
	}
	return o, nil
}
