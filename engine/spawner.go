package engine

import "go.uber.org/zap"

// Spawner adds one body per fire until the target count is reached
// Fired by the loop's spawn ticker; runs on the simulation goroutine
type Spawner struct {
	sim     *Simulation
	spawned uint64
	log     *zap.Logger
}

// NewSpawner binds a spawner to a simulation
func NewSpawner(sim *Simulation, log *zap.Logger) *Spawner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Spawner{sim: sim, log: log}
}

// Fire spawns at most one body, returns true if one was added
// Paused simulations do not grow
func (sp *Spawner) Fire() bool {
	if sp.sim.Paused() {
		return false
	}
	if !sp.sim.Spawn() {
		return false
	}
	sp.spawned++
	if sp.sim.Store().BodyCount() == sp.sim.Store().TargetBodyCount() {
		sp.log.Debug("target body count reached", zap.Int("count", sp.sim.Store().BodyCount()))
	}
	return true
}

// Spawned returns the total number of bodies added since creation
func (sp *Spawner) Spawned() uint64 {
	return sp.spawned
}
