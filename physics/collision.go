package physics

import (
	"math"

	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/vmath"
)

// fallbackAxis separates exactly coincident centers
var fallbackAxis = vmath.Vec2{X: 1, Y: 0}

// Contacts tallies collision work done by a relaxation run
type Contacts struct {
	Bodies    int // body-body overlaps resolved
	Obstacles int // body-obstacle overlaps resolved
	Bounces   int // wall velocity reversals (clamps excluded)
}

// Add accumulates another tally
func (c *Contacts) Add(o Contacts) {
	c.Bodies += o.Bodies
	c.Obstacles += o.Obstacles
	c.Bounces += o.Bounces
}

// separation returns the overlap depth and unit push direction from b toward a
// ok is false when the pair is out of broad-phase range or not overlapping
func separation(a, b vmath.Vec2, radii float64) (delta float64, dir vmath.Vec2, ok bool) {
	diff := vmath.V2Sub(a, b)

	// Broad phase: axis-aligned reject before the square root
	if math.Abs(diff.X) >= parameter.MaxBodyDiameter || math.Abs(diff.Y) >= parameter.MaxBodyDiameter {
		return 0, vmath.Zero, false
	}

	dist := vmath.V2Mag(diff)
	delta = radii - dist
	if delta <= 0 {
		return 0, vmath.Zero, false
	}

	if dist == 0 {
		return delta, fallbackAxis, true
	}
	return delta, vmath.V2Scale(diff, 1/dist), true
}

// SolveBodies pushes every overlapping pair apart by half the overlap each
// Mass-agnostic: all bodies move equally
func SolveBodies(bodies []Body) int {
	contacts := 0
	for i := 0; i < len(bodies); i++ {
		a := &bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			b := &bodies[j]

			delta, dir, ok := separation(a.Position, b.Position, a.Radius+b.Radius)
			if !ok {
				continue
			}

			push := vmath.V2Scale(dir, 0.5*delta)
			a.Position = vmath.V2Add(a.Position, push)
			b.Position = vmath.V2Sub(b.Position, push)
			contacts++
		}
	}
	return contacts
}

// SolveObstacles pushes bodies fully out of obstacles; obstacles are never written
func SolveObstacles(bodies []Body, obstacles []Body) int {
	contacts := 0
	for i := range bodies {
		b := &bodies[i]
		for j := range obstacles {
			o := &obstacles[j]

			delta, dir, ok := separation(b.Position, o.Position, b.Radius+o.Radius)
			if !ok {
				continue
			}

			b.Position = vmath.V2Add(b.Position, vmath.V2Scale(dir, delta))
			contacts++
		}
	}
	return contacts
}
