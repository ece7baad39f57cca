package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ballpit/core"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/physics"
	"github.com/lixenwraith/ballpit/vmath"
)

func fillStore(t *testing.T, s *Store, n int) {
	t.Helper()
	rng := vmath.NewFastRand(7)
	s.SetTargetBodyCount(n)
	for i := 0; i < n; i++ {
		require.True(t, s.Spawn(core.PaletteRGB, rng))
	}
	require.Equal(t, n, s.BodyCount())
}

func TestStore_SpawnPlacement(t *testing.T) {
	s := NewStore()
	s.SetTargetBodyCount(4)
	rng := vmath.NewFastRand(99)

	for i := 0; i < 4; i++ {
		require.True(t, s.Spawn(core.PaletteGray, rng))
	}
	assert.False(t, s.Spawn(core.PaletteGray, rng), "spawn beyond target must be refused")

	for i, b := range s.Bodies() {
		assert.Equal(t, vmath.V2(parameter.SpawnX, parameter.SpawnY), b.Position)
		assert.Equal(t, vmath.V2(parameter.SpawnPrevX, parameter.SpawnPrevY), b.PrevPosition)
		assert.GreaterOrEqual(t, b.Radius, parameter.MinBodyRadius)
		assert.Less(t, b.Radius, parameter.MaxBodyRadius)
		assert.Equal(t, core.ColorOf(core.PaletteGray, float64(i)/4), b.Color)
	}
}

func TestStore_SpawnWithZeroTarget(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Spawn(core.PaletteRGB, vmath.NewFastRand(1)))
	assert.Equal(t, 0, s.BodyCount())
}

func TestStore_TruncatePreservesOrder(t *testing.T) {
	s := NewStore()
	fillStore(t, s, 10)

	before := make([]physics.Body, 3)
	copy(before, s.Bodies()[:3])

	s.SetTargetBodyCount(3)

	require.Equal(t, 3, s.BodyCount())
	assert.Equal(t, before, s.Bodies())
	assert.Equal(t, 3, s.TargetBodyCount())
}

func TestStore_RaiseTargetDoesNotGrow(t *testing.T) {
	s := NewStore()
	fillStore(t, s, 2)
	s.SetTargetBodyCount(20)
	assert.Equal(t, 2, s.BodyCount())
}

func TestStore_NegativeTarget(t *testing.T) {
	s := NewStore()
	fillStore(t, s, 2)
	s.SetTargetBodyCount(-5)
	assert.Equal(t, 0, s.BodyCount())
	assert.Equal(t, 0, s.TargetBodyCount())
}

func TestStore_ObstaclesGrowAtCenterAndShrink(t *testing.T) {
	s := NewStore()
	center := vmath.V2(200, 300)

	s.SetTargetObstacleCount(2, center)
	require.Equal(t, 2, s.ObstacleCount())
	for _, o := range s.Obstacles() {
		assert.Equal(t, center, o.Position)
		assert.Equal(t, center, o.PrevPosition)
		assert.Equal(t, parameter.ObstacleRadius, o.Radius)
		assert.Equal(t, core.RGBObstacle, o.Color)
	}

	require.True(t, s.MoveObstacle(0, vmath.V2(10, 10)))
	s.SetTargetObstacleCount(1, vmath.V2(0, 0))
	require.Equal(t, 1, s.ObstacleCount())
	assert.Equal(t, vmath.V2(10, 10), s.Obstacles()[0].Position)
}

func TestStore_RestartKeepsObstacles(t *testing.T) {
	s := NewStore()
	fillStore(t, s, 5)
	s.SetTargetObstacleCount(3, vmath.V2(1, 1))

	s.Restart()

	assert.Equal(t, 0, s.BodyCount())
	assert.Equal(t, 5, s.TargetBodyCount())
	assert.Equal(t, 3, s.ObstacleCount())
}

func TestStore_EmptyOperations(t *testing.T) {
	s := NewStore()
	assert.NotPanics(t, func() {
		s.Restart()
		s.SetTargetBodyCount(0)
		s.SetTargetObstacleCount(0, vmath.Zero)
		assert.False(t, s.MoveObstacle(0, vmath.Zero))
		_, ok := s.ObstacleAt(vmath.Zero)
		assert.False(t, ok)
	})
}

func TestStore_ObstacleAtPrefersTopmost(t *testing.T) {
	s := NewStore()
	s.SetTargetObstacleCount(2, vmath.V2(100, 100))
	s.MoveObstacle(1, vmath.V2(110, 100))

	id, ok := s.ObstacleAt(vmath.V2(105, 100))
	require.True(t, ok)
	assert.Equal(t, 1, id)

	id, ok = s.ObstacleAt(vmath.V2(80, 100))
	require.True(t, ok)
	assert.Equal(t, 0, id)

	_, ok = s.ObstacleAt(vmath.V2(300, 300))
	assert.False(t, ok)
}
