package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/vmath"
)

func TestIntegrate_DampsVelocityPerStep(t *testing.T) {
	b := Body{
		Position:     vmath.V2(100, 100),
		PrevPosition: vmath.V2(97, 96),
		Radius:       12,
	}

	prevSpeed := vmath.V2Mag(b.Velocity())
	for step := 0; step < 50; step++ {
		Integrate(&b, 0.16)
		speed := vmath.V2Mag(b.Velocity())
		assert.InDelta(t, prevSpeed*parameter.Resistance, speed, 1e-9, "step %d", step)
		prevSpeed = speed
	}
}

func TestIntegrate_ResetsAcceleration(t *testing.T) {
	b := Body{Position: vmath.V2(10, 10), PrevPosition: vmath.V2(10, 10), Acceleration: vmath.V2(3, -4)}
	Integrate(&b, 1)

	assert.Equal(t, vmath.Zero, b.Acceleration)
	assert.Equal(t, vmath.V2(10, 10), b.PrevPosition)
	assert.InDelta(t, 10+3*parameter.Resistance, b.Position.X, 1e-12)
	assert.InDelta(t, 10-4*parameter.Resistance, b.Position.Y, 1e-12)
}

func TestIntegrate_ClampsInertialVelocity(t *testing.T) {
	tests := []struct {
		name  string
		prev  vmath.Vec2
		accel vmath.Vec2
	}{
		{"fast right", vmath.V2(-500, 0), vmath.Zero},
		{"fast up-left", vmath.V2(900, 700), vmath.Zero},
		{"huge accel", vmath.V2(0, 0), vmath.V2(1e6, -1e6)},
		{"fast and accelerating", vmath.V2(-300, 300), vmath.V2(1e3, 1e3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Body{Position: vmath.V2(0, 0), PrevPosition: tt.prev, Acceleration: tt.accel}
			// Acceleration lands in the displacement of the step it is applied on; the clamp bounds the inertial part after it
			for i := 0; i < 5; i++ {
				Integrate(&b, 1)
				b.Acceleration = tt.accel
				Integrate(&b, 0)
				v := b.Velocity()
				require.LessOrEqual(t, math.Abs(v.X), parameter.MaxVelocity+1e-9)
				require.LessOrEqual(t, math.Abs(v.Y), parameter.MaxVelocity+1e-9)
			}
		})
	}
}

func TestIntegrate_AccelerationOvershootsClampForOneStep(t *testing.T) {
	b := Body{Position: vmath.V2(0, 0), PrevPosition: vmath.V2(-500, 0), Acceleration: vmath.V2(10, 0)}

	Integrate(&b, 1)

	// Inertial part is clamped to MaxVelocity; acceleration lands on top of it before damping
	assert.InDelta(t, (parameter.MaxVelocity+10)*parameter.Resistance, b.Velocity().X, 1e-9)
	assert.Greater(t, b.Velocity().X, parameter.MaxVelocity)

	// Next step without acceleration falls back under the clamp
	Integrate(&b, 1)
	assert.InDelta(t, parameter.MaxVelocity*parameter.Resistance, b.Velocity().X, 1e-9)
}

func TestIntegrateAll_EmptySlice(t *testing.T) {
	assert.NotPanics(t, func() { IntegrateAll(nil, 0.16) })
}
