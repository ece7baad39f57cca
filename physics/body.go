package physics

import (
	"github.com/lixenwraith/ballpit/core"
	"github.com/lixenwraith/ballpit/vmath"
)

// Body is a circle advanced by Verlet integration
// Velocity is implicit: Position - PrevPosition
type Body struct {
	Position     vmath.Vec2
	PrevPosition vmath.Vec2
	Acceleration vmath.Vec2
	Radius       float64
	Color        core.RGB
}

// NewStaticBody creates a body at rest (PrevPosition == Position)
func NewStaticBody(pos vmath.Vec2, radius float64, color core.RGB) Body {
	return Body{
		Position:     pos,
		PrevPosition: pos,
		Radius:       radius,
		Color:        color,
	}
}

// Velocity returns the implicit per-step displacement
func (b *Body) Velocity() vmath.Vec2 {
	return vmath.V2Sub(b.Position, b.PrevPosition)
}

// Arena is the drawable rectangle bodies are contained in, origin at top-left
// Zero area is a valid transient state
type Arena struct {
	Width, Height float64
}

// Center returns the arena midpoint
func (a Arena) Center() vmath.Vec2 {
	return vmath.Vec2{X: 0.5 * a.Width, Y: 0.5 * a.Height}
}

// Clamp pulls a point into [0,Width]x[0,Height]
func (a Arena) Clamp(p vmath.Vec2) vmath.Vec2 {
	return vmath.V2ClampRect(p, a.Width, a.Height)
}

// Empty reports a zero-area arena
func (a Arena) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}
