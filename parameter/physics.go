package parameter

// Body geometry
const (
	// MinBodyRadius is the inclusive lower bound of spawned body radii
	MinBodyRadius = 12.0

	// MaxBodyRadius is the exclusive upper bound of spawned body radii
	MaxBodyRadius = 24.0

	// MaxBodyDiameter is the broad-phase reject distance on each axis
	MaxBodyDiameter = MaxBodyRadius * 2

	// ObstacleRadius is the fixed radius of every obstacle
	ObstacleRadius = 24.0
)

// Integration
const (
	// MaxVelocity caps each implicit velocity component per step; one radius per step prevents tunneling
	MaxVelocity = MaxBodyRadius

	// Resistance damps every position update (per step, not per second)
	Resistance = 0.995
)

// Spawn point: PrevPosition trails Position so new bodies enter moving right
const (
	SpawnX     = 28.0
	SpawnY     = 32.0
	SpawnPrevX = 24.0
	SpawnPrevY = 32.0
)

// Gravity
const (
	// DefaultGravityX and DefaultGravityY point straight down
	DefaultGravityX = 0.0
	DefaultGravityY = 10.0

	// GravityMagnitude is the reference magnitude used by keyboard tilt
	GravityMagnitude = 10.0
)
