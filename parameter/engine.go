package parameter

import "time"

// Loop & Frame Timing
const (
	// FrameUpdateInterval is the animation frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// SpawnInterval is the cadence at which one body is added until the target count is reached
	SpawnInterval = 200 * time.Millisecond

	// MaxFrameDelta caps the wall-clock delta fed to a single step (seconds)
	// Prevents catch-up jumps after a stall or a suspended terminal
	MaxFrameDelta = 0.1

	// TimeScale multiplies the clamped delta before integration; controls overall simulation speed
	TimeScale = 10.0

	// RelaxationPasses is the number of collision solver iterations per frame
	RelaxationPasses = 4

	// CommandQueueSize bounds pending commands posted to the simulation loop
	CommandQueueSize = 256
)
