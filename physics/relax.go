package physics

// Relax runs body-body, body-obstacle and wall resolution in that order, passes times
// Passes below 1 run nothing
func Relax(bodies, obstacles []Body, arena Arena, passes int) Contacts {
	var c Contacts
	for p := 0; p < passes; p++ {
		c.Bodies += SolveBodies(bodies)
		c.Obstacles += SolveObstacles(bodies, obstacles)
		c.Bounces += SolveWalls(bodies, arena)
	}
	return c
}
