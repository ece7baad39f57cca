package core

import "fmt"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
	// RGBObstacle fills obstacles; RGBObstacleRim outlines them
	RGBObstacle    = RGB{0, 0, 0}
	RGBObstacleRim = RGB{0x88, 0x88, 0x88}
)

// String formats as rgb(r, g, b)
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
