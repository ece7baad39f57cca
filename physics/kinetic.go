package physics

import (
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/vmath"
)

// Integrate performs one Störmer-Verlet step: p' = p + (clamp(p - prev) + a*dt²) * resistance
// dt is already scaled by the caller; acceleration is consumed
func Integrate(b *Body, dt float64) {
	v := vmath.V2ClampComponents(b.Velocity(), parameter.MaxVelocity)
	dt2 := dt * dt

	b.PrevPosition = b.Position
	b.Position.X += (v.X + b.Acceleration.X*dt2) * parameter.Resistance
	b.Position.Y += (v.Y + b.Acceleration.Y*dt2) * parameter.Resistance
	b.Acceleration = vmath.Zero
}

// IntegrateAll advances every body one step
func IntegrateAll(bodies []Body, dt float64) {
	for i := range bodies {
		Integrate(&bodies[i], dt)
	}
}
