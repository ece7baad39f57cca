package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/ballpit/audio"
	"github.com/lixenwraith/ballpit/config"
	"github.com/lixenwraith/ballpit/core"
	"github.com/lixenwraith/ballpit/engine"
	"github.com/lixenwraith/ballpit/input"
	"github.com/lixenwraith/ballpit/logger"
	"github.com/lixenwraith/ballpit/physics"
	"github.com/lixenwraith/ballpit/render"
	"github.com/lixenwraith/ballpit/sensor"
	"github.com/lixenwraith/ballpit/status"
	"github.com/lixenwraith/ballpit/vmath"
)

var (
	configPath  = flag.String("config", "", "Path to YAML config file")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/ballpit.log")
	audioFlag   = flag.Bool("audio", false, "Play impact clicks on wall bounces")
	sensorFlag  = flag.String("sensor", "", "Gravity source: keyboard, iio, auto")
	orientFlag  = flag.String("orientation", "", "Accelerometer axis mapping: android, ios, identity")
	countFlag   = flag.Int("count", 0, "Body count (1-50)")
	blocksFlag  = flag.Int("blocks", 0, "Obstacle count (0-5)")
	paletteFlag = flag.String("palette", "", "Body palette: rgb, gray, white")
)

func main() {
	// Panic recovery: ensure terminal is reset even if the simulation crashes
	defer core.Recover()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ballpit: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers explicitly set flags over the config file
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Log.Enabled = *debugFlag
		case "audio":
			cfg.Audio.Enabled = *audioFlag
		case "sensor":
			cfg.Sensor.Mode = *sensorFlag
		case "orientation":
			cfg.Sensor.Orientation = *orientFlag
		case "count":
			cfg.Simulation.Bodies = *countFlag
		case "blocks":
			cfg.Simulation.Obstacles = *blocksFlag
		case "palette":
			cfg.Simulation.Palette = *paletteFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, closer, err := logger.Setup(logger.Options{
		Enabled: cfg.Log.Enabled,
		Dir:     cfg.Log.Dir,
		Level:   cfg.Log.Level,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	// Names were checked by Validate
	palette, _ := cfg.Palette()
	mode, _ := cfg.SensorMode()
	orient, _ := cfg.Orientation()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Crash hook restores the terminal before the stack trace is printed
	core.SetCrashReset(screen.Fini)
	defer screen.Fini()

	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	width, height := render.ArenaSize(cols, rows)

	sim := engine.NewSimulation(engine.Options{
		Arena:           physics.Arena{Width: width, Height: height},
		TargetBodies:    cfg.Simulation.Bodies,
		TargetObstacles: cfg.Simulation.Obstacles,
		Palette:         palette,
		Gravity:         vmath.V2(cfg.Simulation.GravityX, cfg.Simulation.GravityY),
		Passes:          cfg.Simulation.Passes,
		Seed:            cfg.Simulation.Seed,
	}, log.Named("sim"))

	metrics := status.NewRegistry()
	loop := engine.NewLoop(sim, engine.NewMonotonicTimeProvider(), engine.LoopConfig{
		FrameInterval:   cfg.Loop.FrameInterval,
		SpawnInterval:   cfg.Loop.SpawnInterval,
		MetricsInterval: cfg.Loop.MetricsInterval,
	}, metrics, log.Named("loop"))

	renderer := render.NewRenderer(screen, metrics)

	sound := audio.NewSoundManager(cfg.Audio.Volume, log.Named("audio"))
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer sound.Cleanup()
		}
	}

	loop.SetObserver(func(snap *engine.Snapshot) {
		renderer.Draw(snap)
		sound.PlayImpact(snap.Stats.Contacts.Bounces)
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer core.Recover()
		return loop.Run(gctx)
	})

	src, err := sensor.Open(mode, cfg.Sensor.Root, orient, cfg.Sensor.PollInterval, log.Named("sensor"))
	if err != nil {
		// Sensor absence is degraded functionality, keyboard tilt still works
		log.Warn("accelerometer unavailable, keyboard gravity only", zap.String("mode", mode.String()), zap.Error(err))
	}
	if src != nil {
		g.Go(func() error {
			defer core.Recover()
			err := src.Run(gctx, func(gv vmath.Vec2) {
				loop.Post(func(s *engine.Simulation) { s.SetGravity(gv.X, gv.Y) })
			})
			if err != nil {
				log.Warn("accelerometer feed stopped, gravity keeps last value", zap.String("source", src.Name()), zap.Error(err))
			}
			return nil
		})
	}

	controller := input.NewController(loop, renderer, sound, log.Named("input"))

	// Input polling blocks in PollEvent, so it stays outside the errgroup and ends at screen.Fini
	core.Go(func() {
		input.Pump(screen, input.NewMachine(), controller, func(ev tcell.Event) {
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
		})
		cancel()
	})

	log.Info("ballpit started",
		zap.Int("cols", cols), zap.Int("rows", rows),
		zap.Int("bodies", cfg.Simulation.Bodies),
		zap.String("palette", palette.String()),
		zap.String("sensor", mode.String()),
	)

	err = g.Wait()
	log.Info("ballpit stopped", zap.Any("metrics", metrics.Values()))
	return err
}
