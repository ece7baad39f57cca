package physics

// SolveWalls contains bodies inside the arena, returns number of bounces
//
// Per axis, a body past [r, size-r] is either clamped (its previous position was
// already past the boundary, so it was pushed there by a collision) or bounced by
// swapping position and previous position on that axis, which reverses the implicit velocity
func SolveWalls(bodies []Body, arena Arena) int {
	bounces := 0
	for i := range bodies {
		b := &bodies[i]
		if containAxis(&b.Position.X, &b.PrevPosition.X, b.Radius, arena.Width) {
			bounces++
		}
		if containAxis(&b.Position.Y, &b.PrevPosition.Y, b.Radius, arena.Height) {
			bounces++
		}
	}
	return bounces
}

// containAxis applies wall resolution to one axis, returns true on bounce
func containAxis(pos, prev *float64, radius, size float64) bool {
	lo, hi := radius, size-radius

	switch {
	case *pos < lo:
		if *prev <= lo {
			*pos = lo
			return false
		}
	case *pos > hi:
		if *prev >= hi {
			*pos = hi
			return false
		}
	default:
		return false
	}

	*pos, *prev = *prev, *pos
	return true
}
