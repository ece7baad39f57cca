package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/status"
)

// ErrLoopRunning is returned when Run is called on a loop that already ran
var ErrLoopRunning = errors.New("simulation loop already started")

// Command mutates the simulation on the loop goroutine
type Command func(*Simulation)

// Observer receives the snapshot after every frame, on the loop goroutine
// The snapshot is reused between frames and must not be retained
type Observer func(*Snapshot)

// LoopConfig controls loop cadence
type LoopConfig struct {
	FrameInterval time.Duration
	SpawnInterval time.Duration
	QueueSize     int
	// MetricsInterval logs a metrics summary at debug level; zero disables
	MetricsInterval time.Duration
}

// DefaultLoopConfig returns the reference cadence
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		FrameInterval:   parameter.FrameUpdateInterval,
		SpawnInterval:   parameter.SpawnInterval,
		QueueSize:       parameter.CommandQueueSize,
		MetricsInterval: 5 * time.Second,
	}
}

// Loop is the single execution context that owns a Simulation
// Frame ticks, spawn ticks and posted commands are serialized on one goroutine,
// so no command ever runs during a relaxation pass
type Loop struct {
	sim     *Simulation
	driver  *FrameDriver
	spawner *Spawner
	cfg     LoopConfig

	commands chan Command
	done     chan struct{}
	running  atomic.Bool

	observer Observer
	snap     Snapshot

	metrics  *status.Registry
	statFrm  *atomic.Int64
	statBody *atomic.Int64
	statObst *atomic.Int64
	statBnc  *atomic.Int64
	statCtc  *atomic.Int64
	statStep *status.AtomicFloat
	statPeak *status.AtomicFloat
	statDt   *status.AtomicFloat

	log *zap.Logger
}

// NewLoop wires a frame driver and spawner around sim
// A nil registry or logger is replaced with a private registry or no-op logger
func NewLoop(sim *Simulation, clock TimeProvider, cfg LoopConfig, metrics *status.Registry, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	def := DefaultLoopConfig()
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = def.FrameInterval
	}
	if cfg.SpawnInterval <= 0 {
		cfg.SpawnInterval = def.SpawnInterval
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = def.QueueSize
	}

	return &Loop{
		sim:      sim,
		driver:   NewFrameDriver(sim, clock),
		spawner:  NewSpawner(sim, log),
		cfg:      cfg,
		commands: make(chan Command, cfg.QueueSize),
		done:     make(chan struct{}),
		metrics:  metrics,
		statFrm:  metrics.Ints.Get("sim.frames"),
		statBody: metrics.Ints.Get("sim.bodies"),
		statObst: metrics.Ints.Get("sim.obstacles"),
		statBnc:  metrics.Ints.Get("sim.bounces"),
		statCtc:  metrics.Ints.Get("sim.contacts"),
		statStep: metrics.Floats.Get("sim.step_ms"),
		statPeak: metrics.Floats.Get("sim.step_ms_peak"),
		statDt:   metrics.Floats.Get("sim.dt"),
		log:      log,
	}
}

// SetObserver registers the per-frame snapshot consumer, must be called before Run
func (l *Loop) SetObserver(fn Observer) {
	l.observer = fn
}

// Metrics returns the registry the loop writes to
func (l *Loop) Metrics() *status.Registry {
	return l.metrics
}

// Post queues a command for the loop goroutine, blocking while the queue is full
// Returns false once the loop has stopped
func (l *Loop) Post(cmd Command) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.commands <- cmd:
		return true
	case <-l.done:
		return false
	}
}

// TogglePause flips the pause state on the loop goroutine
func (l *Loop) TogglePause() bool {
	return l.Post(func(*Simulation) {
		l.driver.SetPaused(!l.driver.Paused())
	})
}

// Done is closed when Run returns
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run drives the loop until ctx is cancelled; tickers are released on return
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer close(l.done)

	frameTicker := time.NewTicker(l.cfg.FrameInterval)
	defer frameTicker.Stop()
	spawnTicker := time.NewTicker(l.cfg.SpawnInterval)
	defer spawnTicker.Stop()

	var metricsC <-chan time.Time
	if l.cfg.MetricsInterval > 0 {
		metricsTicker := time.NewTicker(l.cfg.MetricsInterval)
		defer metricsTicker.Stop()
		metricsC = metricsTicker.C
	}

	l.log.Info("simulation loop started",
		zap.Duration("frame_interval", l.cfg.FrameInterval),
		zap.Duration("spawn_interval", l.cfg.SpawnInterval),
	)

	for {
		select {
		case <-ctx.Done():
			l.log.Info("simulation loop stopped", zap.Uint64("frames", l.sim.Frame()))
			return nil

		case cmd := <-l.commands:
			cmd(l.sim)

		case <-spawnTicker.C:
			l.spawner.Fire()

		case <-frameTicker.C:
			l.frame()

		case <-metricsC:
			l.log.Debug("metrics", zap.Any("values", l.metrics.Values()))
		}
	}
}

// frame runs one tick and publishes the snapshot
func (l *Loop) frame() {
	start := time.Now()
	stats := l.driver.Tick()
	elapsed := time.Since(start)

	l.statFrm.Add(1)
	l.statBody.Store(int64(stats.Bodies))
	l.statObst.Store(int64(l.sim.Store().ObstacleCount()))
	l.statBnc.Add(int64(stats.Contacts.Bounces))
	l.statCtc.Add(int64(stats.Contacts.Bodies + stats.Contacts.Obstacles))
	stepMs := float64(elapsed.Microseconds()) / 1000
	l.statStep.Set(stepMs)
	l.statPeak.SetMax(stepMs)
	l.statDt.Set(stats.Delta)

	if l.observer == nil {
		return
	}
	l.sim.SnapshotInto(&l.snap)
	l.snap.Stats = stats
	l.observer(&l.snap)
}
