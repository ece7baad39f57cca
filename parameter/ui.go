package parameter

import "math"

// Count policy ranges enforced by the controls, not the core
const (
	MinBodyCount     = 1
	MaxBodyCount     = 50
	DefaultBodyCount = 10

	MinObstacleCount     = 0
	MaxObstacleCount     = 5
	DefaultObstacleCount = 0
)

// Terminal raster
const (
	// CellWidthPx is the arena width covered by one terminal column
	CellWidthPx = 4.0

	// CellHeightPx is the arena height covered by one terminal row
	// Rows are drawn as two half-block pixels, each CellHeightPx/2 tall
	CellHeightPx = 8.0

	// StatusRows are reserved at the bottom of the screen for the status line
	StatusRows = 1

	// GradientStops is the swatch resolution shown in the menu
	GradientStops = 10
)

// Keyboard tilt
const (
	// TiltStep rotates the gravity vector per arrow key press (radians)
	TiltStep = math.Pi / 12

	// MaxTiltAngle limits keyboard tilt away from straight down
	MaxTiltAngle = math.Pi
)

// Keyboard gravity magnitude
const (
	// GravityStep changes magnitude per up/down key press
	GravityStep = 2.5

	// MaxGravityMagnitude bounds keyboard-driven gravity strength
	MaxGravityMagnitude = 40.0
)
