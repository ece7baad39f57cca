package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/ballpit/core"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/physics"
	"github.com/lixenwraith/ballpit/vmath"
)

// Options configures a new Simulation
type Options struct {
	Arena           physics.Arena
	TargetBodies    int
	TargetObstacles int
	Palette         core.Palette
	Gravity         vmath.Vec2
	// Passes is the relaxation pass count; zero selects parameter.RelaxationPasses
	Passes int
	// Seed drives body radius draws; zero is replaced by 1
	Seed uint64
}

// DefaultOptions returns the reference configuration
func DefaultOptions() Options {
	return Options{
		TargetBodies:    parameter.DefaultBodyCount,
		TargetObstacles: parameter.DefaultObstacleCount,
		Palette:         core.PaletteRGB,
		Gravity:         vmath.V2(parameter.DefaultGravityX, parameter.DefaultGravityY),
		Passes:          parameter.RelaxationPasses,
	}
}

// FrameStats reports one step
type FrameStats struct {
	// Delta is the clamped wall-clock delta in seconds, before time scaling
	Delta    float64
	Contacts physics.Contacts
	Bodies   int
	Stepped  bool
}

// Simulation is the explicit context shared by every subsystem call
// All methods must run on one goroutine (see Loop)
type Simulation struct {
	arena   physics.Arena
	store   *Store
	gravity *physics.Gravity
	palette core.Palette
	passes  int
	rng     *vmath.FastRand

	frame  uint64
	paused bool

	log *zap.Logger
}

// NewSimulation builds a simulation context; a nil logger is replaced with a no-op
func NewSimulation(opts Options, log *zap.Logger) *Simulation {
	if log == nil {
		log = zap.NewNop()
	}
	passes := opts.Passes
	if passes <= 0 {
		passes = parameter.RelaxationPasses
	}

	s := &Simulation{
		arena:   opts.Arena,
		store:   NewStore(),
		gravity: physics.NewGravity(opts.Gravity.X, opts.Gravity.Y),
		palette: opts.Palette,
		passes:  passes,
		rng:     vmath.NewFastRand(opts.Seed),
		log:     log,
	}
	s.store.SetTargetBodyCount(opts.TargetBodies)
	s.store.SetTargetObstacleCount(opts.TargetObstacles, s.arena.Center())
	return s
}

// Store exposes the body store for solvers and tests
func (s *Simulation) Store() *Store { return s.store }

func (s *Simulation) Arena() physics.Arena  { return s.arena }
func (s *Simulation) Palette() core.Palette { return s.palette }
func (s *Simulation) Gravity() vmath.Vec2   { return s.gravity.Vector() }
func (s *Simulation) Frame() uint64         { return s.frame }

// SetArenaSize applies a layout change; takes effect on the next step
func (s *Simulation) SetArenaSize(width, height float64) {
	width, height = max(width, 0), max(height, 0)
	if width == s.arena.Width && height == s.arena.Height {
		return
	}
	s.arena = physics.Arena{Width: width, Height: height}
	s.log.Debug("arena resized", zap.Float64("width", width), zap.Float64("height", height))
}

// SetTargetBodyCount truncates immediately; the spawner grows toward the target
func (s *Simulation) SetTargetBodyCount(n int) {
	s.store.SetTargetBodyCount(n)
	s.log.Debug("target bodies", zap.Int("target", s.store.TargetBodyCount()), zap.Int("live", s.store.BodyCount()))
}

// SetTargetObstacleCount adds obstacles at arena center or drops them from the tail
func (s *Simulation) SetTargetObstacleCount(n int) {
	s.store.SetTargetObstacleCount(n, s.arena.Center())
	s.log.Debug("target obstacles", zap.Int("target", s.store.TargetObstacleCount()))
}

// SetPalette affects bodies spawned afterwards only
func (s *Simulation) SetPalette(p core.Palette) {
	s.palette = p
}

// Restart clears all bodies; the spawner refills them
func (s *Simulation) Restart() {
	s.store.Restart()
	s.log.Debug("restart")
}

// SetGravity overwrites the gravity vector
func (s *Simulation) SetGravity(x, y float64) {
	s.gravity.Set(x, y)
}

// SetPaused toggles stepping; paused frames leave every body untouched
func (s *Simulation) SetPaused(paused bool) {
	s.paused = paused
}

func (s *Simulation) Paused() bool { return s.paused }

// DragObstacle moves an obstacle to pos clamped into the arena
// Returns false for an unknown id
func (s *Simulation) DragObstacle(id int, pos vmath.Vec2) bool {
	return s.store.MoveObstacle(id, s.arena.Clamp(pos))
}

// DragObstacleBy moves an obstacle by a pointer delta, clamped into the arena
func (s *Simulation) DragObstacleBy(id int, delta vmath.Vec2) bool {
	obstacles := s.store.Obstacles()
	if id < 0 || id >= len(obstacles) {
		return false
	}
	return s.DragObstacle(id, vmath.V2Add(obstacles[id].Position, delta))
}

// ObstacleAt hit-tests obstacles for pointer grabs
func (s *Simulation) ObstacleAt(p vmath.Vec2) (int, bool) {
	return s.store.ObstacleAt(p)
}

// Spawn adds one body with the current palette if below target
func (s *Simulation) Spawn() bool {
	return s.store.Spawn(s.palette, s.rng)
}

// Step advances the simulation by dt wall-clock seconds
// Paused or zero-area simulations count the frame but move nothing
// dt is clamped to parameter.MaxFrameDelta and scaled by parameter.TimeScale, then
// gravity, integration and relaxation passes run in order
func (s *Simulation) Step(dt float64) FrameStats {
	s.frame++
	bodies := s.store.Bodies()

	// Zero-area arenas have no valid positions; hold bodies until a layout arrives
	if s.paused || s.arena.Empty() {
		return FrameStats{Bodies: len(bodies)}
	}

	dt = vmath.Clamp(dt, 0, parameter.MaxFrameDelta)

	s.gravity.ApplyTo(bodies)
	physics.IntegrateAll(bodies, dt*parameter.TimeScale)
	contacts := physics.Relax(bodies, s.store.Obstacles(), s.arena, s.passes)

	return FrameStats{
		Delta:    dt,
		Contacts: contacts,
		Bodies:   len(bodies),
		Stepped:  true,
	}
}
