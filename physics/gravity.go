package physics

import "github.com/lixenwraith/ballpit/vmath"

// Gravity holds the shared gravity vector
// Written by sensor feeds, read by the integrator; callers confine both to one goroutine
type Gravity struct {
	v vmath.Vec2
}

// NewGravity creates a gravity source with an initial vector
func NewGravity(x, y float64) *Gravity {
	return &Gravity{v: vmath.Vec2{X: x, Y: y}}
}

// Set overwrites the vector, last write wins
func (g *Gravity) Set(x, y float64) {
	g.v = vmath.Vec2{X: x, Y: y}
}

// Vector returns the current gravity vector
func (g *Gravity) Vector() vmath.Vec2 {
	return g.v
}

// ApplyTo accumulates gravity into every body's acceleration
func (g *Gravity) ApplyTo(bodies []Body) {
	for i := range bodies {
		bodies[i].Acceleration.X += g.v.X
		bodies[i].Acceleration.Y += g.v.Y
	}
}
