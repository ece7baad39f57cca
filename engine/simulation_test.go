package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ballpit/core"
	"github.com/lixenwraith/ballpit/physics"
	"github.com/lixenwraith/ballpit/vmath"
)

func newTestSimulation(w, h float64, bodies, obstacles int) *Simulation {
	opts := DefaultOptions()
	opts.Arena = physics.Arena{Width: w, Height: h}
	opts.TargetBodies = bodies
	opts.TargetObstacles = obstacles
	opts.Seed = 42
	return NewSimulation(opts, nil)
}

func TestSimulation_FallingBodyScenario(t *testing.T) {
	sim := newTestSimulation(400, 600, 1, 0)
	sim.SetGravity(0, 10)
	require.True(t, sim.Spawn())

	b := &sim.Store().Bodies()[0]
	startY := b.Position.Y
	r := b.Radius

	for i := 0; i < 100; i++ {
		sim.Step(0.016)
	}

	b = &sim.Store().Bodies()[0]
	assert.Greater(t, b.Position.Y, startY)
	assert.LessOrEqual(t, b.Position.Y, 600-r)
	assert.GreaterOrEqual(t, b.Position.X, r)
	assert.LessOrEqual(t, b.Position.X, 400-r)
}

func TestSimulation_StepClampsDelta(t *testing.T) {
	sim := newTestSimulation(400, 600, 0, 0)

	assert.InDelta(t, 0.1, sim.Step(5).Delta, 1e-12)
	assert.InDelta(t, 0.05, sim.Step(0.05).Delta, 1e-12)
	assert.Equal(t, 0.0, sim.Step(-1).Delta)
}

func TestSimulation_LongStallEqualsMaxDelta(t *testing.T) {
	a := newTestSimulation(400, 600, 1, 0)
	b := newTestSimulation(400, 600, 1, 0)
	require.True(t, a.Spawn())
	require.True(t, b.Spawn())

	a.Step(30)
	b.Step(0.1)

	assert.Equal(t, b.Store().Bodies()[0].Position, a.Store().Bodies()[0].Position)
}

func TestSimulation_CountAdjustment(t *testing.T) {
	sim := newTestSimulation(400, 600, 10, 0)
	for sim.Spawn() {
	}
	require.Equal(t, 10, sim.Store().BodyCount())
	first := make([]physics.Body, 3)
	copy(first, sim.Store().Bodies()[:3])

	sim.SetTargetBodyCount(3)
	assert.Equal(t, first, sim.Store().Bodies())

	sim.SetTargetObstacleCount(2)
	require.Equal(t, 2, sim.Store().ObstacleCount())
	for _, o := range sim.Store().Obstacles() {
		assert.Equal(t, vmath.V2(200, 300), o.Position)
	}
}

func TestSimulation_PaletteAffectsNewBodiesOnly(t *testing.T) {
	sim := newTestSimulation(400, 600, 2, 0)
	sim.SetPalette(core.PaletteGray)
	require.True(t, sim.Spawn())
	firstColor := sim.Store().Bodies()[0].Color

	sim.SetPalette(core.PaletteWhite)
	require.True(t, sim.Spawn())

	assert.Equal(t, firstColor, sim.Store().Bodies()[0].Color)
	assert.Equal(t, core.RGBWhite, sim.Store().Bodies()[1].Color)
}

func TestSimulation_DragObstacleClampsToArena(t *testing.T) {
	sim := newTestSimulation(400, 600, 0, 1)

	tests := []struct {
		name     string
		target   vmath.Vec2
		expected vmath.Vec2
	}{
		{"inside", vmath.V2(50, 60), vmath.V2(50, 60)},
		{"negative", vmath.V2(-10, -20), vmath.V2(0, 0)},
		{"beyond", vmath.V2(900, 900), vmath.V2(400, 600)},
		{"mixed", vmath.V2(-5, 700), vmath.V2(0, 600)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, sim.DragObstacle(0, tt.target))
			assert.Equal(t, tt.expected, sim.Store().Obstacles()[0].Position)
		})
	}

	assert.False(t, sim.DragObstacle(3, vmath.V2(1, 1)))
	assert.False(t, sim.DragObstacleBy(-1, vmath.V2(1, 1)))
}

func TestSimulation_DragObstacleBy(t *testing.T) {
	sim := newTestSimulation(400, 600, 0, 1)

	require.True(t, sim.DragObstacleBy(0, vmath.V2(15, -20)))
	assert.Equal(t, vmath.V2(215, 280), sim.Store().Obstacles()[0].Position)

	require.True(t, sim.DragObstacleBy(0, vmath.V2(1000, 0)))
	assert.Equal(t, vmath.V2(400, 280), sim.Store().Obstacles()[0].Position)
}

func TestSimulation_ObstaclesStayPutDuringSteps(t *testing.T) {
	sim := newTestSimulation(400, 600, 20, 2)
	sim.DragObstacle(1, vmath.V2(60, 200))
	before := make([]physics.Body, 2)
	copy(before, sim.Store().Obstacles())

	for i := 0; i < 300; i++ {
		if i%12 == 0 {
			sim.Spawn()
		}
		sim.Step(0.016)
	}

	assert.Equal(t, before, sim.Store().Obstacles())
}

func TestSimulation_DegenerateStatesDoNotPanic(t *testing.T) {
	sim := newTestSimulation(0, 0, 5, 2)
	assert.NotPanics(t, func() {
		for i := 0; i < 50; i++ {
			sim.Spawn()
			sim.Step(0.016)
		}
		sim.Restart()
		sim.Step(0.016)
	})
}

func TestSimulation_ZeroAreaArenaHoldsBodies(t *testing.T) {
	sim := newTestSimulation(0, 0, 2, 0)
	require.True(t, sim.Spawn())
	before := sim.Store().Bodies()[0]

	stats := sim.Step(0.016)

	assert.False(t, stats.Stepped)
	assert.Equal(t, 1, stats.Bodies)
	assert.Equal(t, before, sim.Store().Bodies()[0])
	assert.Equal(t, uint64(1), sim.Frame())

	sim.SetArenaSize(400, 600)
	stats = sim.Step(0.016)
	assert.True(t, stats.Stepped)
	assert.NotEqual(t, before.Position, sim.Store().Bodies()[0].Position)
	assert.Equal(t, uint64(2), sim.Frame())
}

func TestSimulation_PausedStepIsNoop(t *testing.T) {
	sim := newTestSimulation(400, 600, 1, 0)
	require.True(t, sim.Spawn())
	before := sim.Store().Bodies()[0]

	sim.SetPaused(true)
	stats := sim.Step(0.016)

	assert.False(t, stats.Stepped)
	assert.Equal(t, before, sim.Store().Bodies()[0])
}

func TestSimulation_SnapshotIsCopy(t *testing.T) {
	sim := newTestSimulation(400, 600, 2, 1)
	sim.Spawn()
	sim.SetGravity(3, 4)

	snap := sim.Snapshot()
	require.Len(t, snap.Bodies, 1)
	require.Len(t, snap.Obstacles, 1)
	assert.Equal(t, vmath.V2(3, 4), snap.Gravity)
	assert.Equal(t, 2, snap.TargetBodies)
	assert.Equal(t, physics.Arena{Width: 400, Height: 600}, snap.Arena)

	snap.Bodies[0].Position = vmath.V2(-1, -1)
	assert.NotEqual(t, vmath.V2(-1, -1), sim.Store().Bodies()[0].Position)

	// Reuse keeps backing arrays
	sim.Spawn()
	sim.SnapshotInto(snap)
	assert.Len(t, snap.Bodies, 2)
}

func TestSimulation_SetArenaSizeRejectsNegative(t *testing.T) {
	sim := newTestSimulation(400, 600, 0, 0)
	sim.SetArenaSize(-5, 100)
	assert.Equal(t, physics.Arena{Width: 0, Height: 100}, sim.Arena())
}
