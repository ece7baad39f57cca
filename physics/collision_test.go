package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ballpit/core"
	"github.com/lixenwraith/ballpit/vmath"
)

func body(x, y, r float64) Body {
	return NewStaticBody(vmath.V2(x, y), r, core.RGBWhite)
}

func TestSolveBodies_SymmetricHalfPush(t *testing.T) {
	bodies := []Body{body(100, 100, 20), body(130, 100, 20)}

	n := SolveBodies(bodies)

	require.Equal(t, 1, n)
	assert.InDelta(t, 95, bodies[0].Position.X, 1e-9)
	assert.InDelta(t, 135, bodies[1].Position.X, 1e-9)
	assert.InDelta(t, 40, vmath.V2Dist(bodies[0].Position, bodies[1].Position), 1e-9)
	// Previous positions are untouched by collision pushes
	assert.Equal(t, vmath.V2(100, 100), bodies[0].PrevPosition)
}

func TestSolveBodies_BroadPhaseReject(t *testing.T) {
	// Large radii would overlap, but the axis gap exceeds the broad-phase range
	bodies := []Body{body(0, 0, 40), body(48, 0, 40)}

	assert.Equal(t, 0, SolveBodies(bodies))
	assert.Equal(t, vmath.V2(0, 0), bodies[0].Position)
	assert.Equal(t, vmath.V2(48, 0), bodies[1].Position)
}

func TestSolveBodies_TouchingIsNotContact(t *testing.T) {
	bodies := []Body{body(0, 0, 10), body(20, 0, 10)}
	assert.Equal(t, 0, SolveBodies(bodies))
}

func TestSolveBodies_CoincidentCentersUseFallbackAxis(t *testing.T) {
	bodies := []Body{body(50, 50, 10), body(50, 50, 14)}

	require.Equal(t, 1, SolveBodies(bodies))

	for _, b := range bodies {
		require.True(t, vmath.IsFinite(b.Position))
	}
	assert.InDelta(t, 62, bodies[0].Position.X, 1e-9)
	assert.InDelta(t, 38, bodies[1].Position.X, 1e-9)
	assert.InDelta(t, 50, bodies[0].Position.Y, 1e-9)
}

func TestRelax_ConvergesTowardNonPenetration(t *testing.T) {
	bodies := []Body{
		body(100, 100, 20),
		body(135, 100, 20),
		body(170, 100, 20),
		body(300, 300, 15),
		body(310, 320, 18),
	}
	arena := Arena{Width: 1000, Height: 1000}

	Relax(bodies, nil, arena, 4)

	const epsilon = 0.5
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			d := vmath.V2Dist(bodies[i].Position, bodies[j].Position)
			assert.GreaterOrEqual(t, d, bodies[i].Radius+bodies[j].Radius-epsilon, "pair %d-%d", i, j)
		}
	}
}

func TestSolveObstacles_ObstacleImmovable(t *testing.T) {
	obstacles := []Body{body(200, 200, 24), body(260, 200, 24)}
	before := make([]Body, len(obstacles))
	copy(before, obstacles)

	bodies := []Body{body(210, 205, 15), body(250, 190, 20), body(200, 200, 12)}

	n := SolveObstacles(bodies, obstacles)

	assert.Greater(t, n, 0)
	for i := range obstacles {
		assert.Equal(t, math.Float64bits(before[i].Position.X), math.Float64bits(obstacles[i].Position.X))
		assert.Equal(t, math.Float64bits(before[i].Position.Y), math.Float64bits(obstacles[i].Position.Y))
		assert.Equal(t, before[i], obstacles[i])
	}
}

func TestSolveObstacles_FullPush(t *testing.T) {
	obstacles := []Body{body(100, 100, 24)}
	bodies := []Body{body(130, 100, 16)}

	require.Equal(t, 1, SolveObstacles(bodies, obstacles))
	assert.InDelta(t, 140, bodies[0].Position.X, 1e-9)
	assert.InDelta(t, 100, bodies[0].Position.Y, 1e-9)
}

func TestRelax_EmptyInputs(t *testing.T) {
	assert.NotPanics(t, func() {
		c := Relax(nil, nil, Arena{}, 4)
		assert.Equal(t, Contacts{}, c)
	})
}

func TestRelax_ZeroPasses(t *testing.T) {
	bodies := []Body{body(0, 0, 20), body(1, 0, 20)}
	assert.Equal(t, Contacts{}, Relax(bodies, nil, Arena{Width: 100, Height: 100}, 0))
	assert.Equal(t, vmath.V2(0, 0), bodies[0].Position)
}
