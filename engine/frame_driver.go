package engine

import "time"

// FrameState is the frame driver lifecycle
type FrameState uint8

const (
	// FrameIdle has not yet seen a frame, no delta can be computed
	FrameIdle FrameState = iota
	// FrameRunning steps on every tick
	FrameRunning
)

func (s FrameState) String() string {
	switch s {
	case FrameIdle:
		return "Idle"
	case FrameRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// FrameDriver turns clock readings into simulation steps
// Time comes from a PausableClock so pause produces zero motion and no catch-up on resume
type FrameDriver struct {
	sim   *Simulation
	clock *PausableClock

	state     FrameState
	lastFrame time.Time
}

// NewFrameDriver creates an idle driver reading time from source
func NewFrameDriver(sim *Simulation, source TimeProvider) *FrameDriver {
	return &FrameDriver{
		sim:   sim,
		clock: NewPausableClock(source),
		state: FrameIdle,
	}
}

// Tick computes the delta since the previous tick and steps the simulation
// The first tick only records the time and steps with a zero delta
func (d *FrameDriver) Tick() FrameStats {
	now := d.clock.Now()

	var dt float64
	if d.state == FrameIdle {
		d.state = FrameRunning
	} else {
		dt = now.Sub(d.lastFrame).Seconds()
	}
	d.lastFrame = now

	return d.sim.Step(dt)
}

// State returns the current lifecycle state
func (d *FrameDriver) State() FrameState {
	return d.state
}

// SetPaused freezes or resumes simulation time and stepping together
func (d *FrameDriver) SetPaused(paused bool) {
	if paused {
		d.clock.Pause()
	} else {
		d.clock.Resume()
	}
	d.sim.SetPaused(paused)
}

// Paused reports whether the driver is paused
func (d *FrameDriver) Paused() bool {
	return d.clock.IsPaused()
}
