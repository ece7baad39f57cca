package engine

import (
	"github.com/lixenwraith/ballpit/core"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/physics"
	"github.com/lixenwraith/ballpit/vmath"
)

// Store owns the body and obstacle collections and their target counts
// Not safe for concurrent use; owned by the simulation loop
type Store struct {
	bodies    []physics.Body
	obstacles []physics.Body

	targetBodies    int
	targetObstacles int
}

// NewStore creates an empty store with capacity for the policy maximums
func NewStore() *Store {
	return &Store{
		bodies:    make([]physics.Body, 0, parameter.MaxBodyCount),
		obstacles: make([]physics.Body, 0, parameter.MaxObstacleCount),
	}
}

// Bodies returns the live body slice; callers may mutate elements, not length
func (s *Store) Bodies() []physics.Body { return s.bodies }

// Obstacles returns the live obstacle slice
func (s *Store) Obstacles() []physics.Body { return s.obstacles }

func (s *Store) BodyCount() int           { return len(s.bodies) }
func (s *Store) ObstacleCount() int       { return len(s.obstacles) }
func (s *Store) TargetBodyCount() int     { return s.targetBodies }
func (s *Store) TargetObstacleCount() int { return s.targetObstacles }

// SetTargetBodyCount truncates the tail immediately; growth is left to Spawn
func (s *Store) SetTargetBodyCount(n int) {
	n = max(n, 0)
	s.targetBodies = n
	if len(s.bodies) > n {
		clear(s.bodies[n:])
		s.bodies = s.bodies[:n]
	}
}

// SetTargetObstacleCount truncates or grows immediately; new obstacles start at rest on center
func (s *Store) SetTargetObstacleCount(n int, center vmath.Vec2) {
	n = max(n, 0)
	s.targetObstacles = n
	if len(s.obstacles) > n {
		clear(s.obstacles[n:])
		s.obstacles = s.obstacles[:n]
	}
	for len(s.obstacles) < n {
		s.obstacles = append(s.obstacles, physics.NewStaticBody(center, parameter.ObstacleRadius, core.RGBObstacle))
	}
}

// Restart discards all bodies; obstacles and targets are kept
func (s *Store) Restart() {
	clear(s.bodies)
	s.bodies = s.bodies[:0]
}

// Spawn appends one body at the spawn point if below target, returns true if added
// Color is sampled at the body's normalized index so a full set sweeps the palette once
func (s *Store) Spawn(palette core.Palette, rng *vmath.FastRand) bool {
	if s.targetBodies <= 0 || len(s.bodies) >= s.targetBodies {
		return false
	}

	scale := float64(len(s.bodies)) / float64(s.targetBodies)
	radius := parameter.MinBodyRadius + rng.Float64()*(parameter.MaxBodyRadius-parameter.MinBodyRadius)

	s.bodies = append(s.bodies, physics.Body{
		Position:     vmath.V2(parameter.SpawnX, parameter.SpawnY),
		PrevPosition: vmath.V2(parameter.SpawnPrevX, parameter.SpawnPrevY),
		Radius:       radius,
		Color:        core.ColorOf(palette, scale),
	})
	return true
}

// MoveObstacle sets an obstacle position without touching its previous position
func (s *Store) MoveObstacle(id int, pos vmath.Vec2) bool {
	if id < 0 || id >= len(s.obstacles) {
		return false
	}
	s.obstacles[id].Position = pos
	return true
}

// ObstacleAt returns the topmost obstacle containing p
// Later obstacles draw over earlier ones, so search from the tail
func (s *Store) ObstacleAt(p vmath.Vec2) (int, bool) {
	for i := len(s.obstacles) - 1; i >= 0; i-- {
		o := &s.obstacles[i]
		if vmath.V2MagSq(vmath.V2Sub(p, o.Position)) <= o.Radius*o.Radius {
			return i, true
		}
	}
	return -1, false
}
