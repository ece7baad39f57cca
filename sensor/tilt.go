package sensor

import (
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/vmath"
)

// Tilt is the keyboard gravity source: an angle from straight down and a magnitude
// Not safe for concurrent use; owned by the input goroutine
type Tilt struct {
	angle     float64
	magnitude float64
}

// NewTilt starts at the default straight-down gravity
func NewTilt() *Tilt {
	t := &Tilt{}
	t.Reset()
	return t
}

// Reset restores straight-down gravity at reference magnitude
func (t *Tilt) Reset() vmath.Vec2 {
	t.angle = 0
	t.magnitude = parameter.GravityMagnitude
	return t.Vector()
}

// Left rotates gravity toward −X
func (t *Tilt) Left() vmath.Vec2 {
	return t.rotate(-parameter.TiltStep)
}

// Right rotates gravity toward +X
func (t *Tilt) Right() vmath.Vec2 {
	return t.rotate(parameter.TiltStep)
}

// Up weakens gravity, down to zero
func (t *Tilt) Up() vmath.Vec2 {
	t.magnitude = vmath.Clamp(t.magnitude-parameter.GravityStep, 0, parameter.MaxGravityMagnitude)
	return t.Vector()
}

// Down strengthens gravity up to the keyboard maximum
func (t *Tilt) Down() vmath.Vec2 {
	t.magnitude = vmath.Clamp(t.magnitude+parameter.GravityStep, 0, parameter.MaxGravityMagnitude)
	return t.Vector()
}

func (t *Tilt) rotate(step float64) vmath.Vec2 {
	t.angle = vmath.Clamp(t.angle+step, -parameter.MaxTiltAngle, parameter.MaxTiltAngle)
	return t.Vector()
}

// Angle returns the tilt from straight down in radians, positive toward +X
func (t *Tilt) Angle() float64 { return t.angle }

// Magnitude returns the gravity strength
func (t *Tilt) Magnitude() float64 { return t.magnitude }

// Vector returns g = (m·sinθ, m·cosθ): straight down rotated toward +X by the tilt angle
func (t *Tilt) Vector() vmath.Vec2 {
	return vmath.V2Rotate(vmath.V2(0, t.magnitude), -t.angle)
}
