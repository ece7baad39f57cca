package engine

import (
	"github.com/lixenwraith/ballpit/core"
	"github.com/lixenwraith/ballpit/physics"
	"github.com/lixenwraith/ballpit/vmath"
)

// Shape is the drawable part of a body or obstacle
type Shape struct {
	Position vmath.Vec2
	Radius   float64
	Color    core.RGB
}

// Snapshot is a read-only copy of simulation state for renderers
type Snapshot struct {
	Frame           uint64
	Arena           physics.Arena
	Bodies          []Shape
	Obstacles       []Shape
	Gravity         vmath.Vec2
	Palette         core.Palette
	TargetBodies    int
	TargetObstacles int
	Paused          bool
	Stats           FrameStats
}

// Snapshot returns a freshly allocated copy
func (s *Simulation) Snapshot() *Snapshot {
	snap := &Snapshot{}
	s.SnapshotInto(snap)
	return snap
}

// SnapshotInto copies state into dst reusing its slices
func (s *Simulation) SnapshotInto(dst *Snapshot) {
	dst.Frame = s.frame
	dst.Arena = s.arena
	dst.Gravity = s.gravity.Vector()
	dst.Palette = s.palette
	dst.TargetBodies = s.store.TargetBodyCount()
	dst.TargetObstacles = s.store.TargetObstacleCount()
	dst.Paused = s.paused
	dst.Bodies = copyShapes(dst.Bodies[:0], s.store.Bodies())
	dst.Obstacles = copyShapes(dst.Obstacles[:0], s.store.Obstacles())
}

func copyShapes(dst []Shape, src []physics.Body) []Shape {
	for i := range src {
		dst = append(dst, Shape{
			Position: src[i].Position,
			Radius:   src[i].Radius,
			Color:    src[i].Color,
		})
	}
	return dst
}
