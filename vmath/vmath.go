package vmath

import "math"

// Vec2 is a float64 2D vector used for positions, displacements and accelerations
type Vec2 struct {
	X, Y float64
}

// Zero is the additive identity
var Zero = Vec2{}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Dist returns Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

// V2ClampComponents clamps each component independently to [-limit, limit]
// Direction is not preserved, matching per-axis velocity caps
func V2ClampComponents(v Vec2, limit float64) Vec2 {
	return Vec2{Clamp(v.X, -limit, limit), Clamp(v.Y, -limit, limit)}
}

// V2ClampRect clamps a point into the rectangle [0,w]x[0,h]
func V2ClampRect(v Vec2, w, h float64) Vec2 {
	return Vec2{Clamp(v.X, 0, w), Clamp(v.Y, 0, h)}
}

// V2Rotate rotates vector counter-clockwise by angle radians
func V2Rotate(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Clamp limits x to [lo, hi]; hi wins when the range is inverted
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	return x
}

// IsFinite reports whether both components are neither NaN nor Inf
func IsFinite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
