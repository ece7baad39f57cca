package input

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/ballpit/engine"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/render"
	"github.com/lixenwraith/ballpit/sensor"
	"github.com/lixenwraith/ballpit/vmath"
)

// Poster queues commands onto the simulation goroutine
type Poster interface {
	Post(cmd engine.Command) bool
	TogglePause() bool
}

// MenuToggler shows or hides the help overlay
type MenuToggler interface {
	ToggleMenu() bool
}

// Muter toggles sound output
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// dragState is only read and written inside posted commands, so it lives on the loop goroutine
type dragState struct {
	id      int
	active  bool
	lastCol int
	lastRow int
}

// Controller applies intents to the simulation through a Poster
// Apply must be called from a single goroutine
type Controller struct {
	loop  Poster
	menu  MenuToggler
	sound Muter
	tilt  *sensor.Tilt
	drag  *dragState
	log   *zap.Logger
}

// NewController wires intents to the loop; menu and sound may be nil
func NewController(loop Poster, menu MenuToggler, sound Muter, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		loop:  loop,
		menu:  menu,
		sound: sound,
		tilt:  sensor.NewTilt(),
		drag:  &dragState{id: -1},
		log:   log,
	}
}

// Tilt exposes the keyboard gravity source
func (c *Controller) Tilt() *sensor.Tilt {
	return c.tilt
}

// Apply executes one intent; returns false when the user asked to quit
func (c *Controller) Apply(in *Intent) bool {
	if in == nil {
		return true
	}

	switch in.Type {
	case IntentQuit:
		c.log.Info("quit requested")
		return false

	case IntentResize:
		w, h := render.ArenaSize(in.X, in.Y)
		c.loop.Post(func(s *engine.Simulation) { s.SetArenaSize(w, h) })

	case IntentToggleMute:
		if c.sound != nil {
			c.sound.SetMuted(!c.sound.Muted())
		}
	case IntentToggleMenu:
		if c.menu != nil {
			c.menu.ToggleMenu()
		}
	case IntentPause:
		c.loop.TogglePause()

	case IntentTiltLeft:
		c.setGravity(c.tilt.Left())
	case IntentTiltRight:
		c.setGravity(c.tilt.Right())
	case IntentGravityUp:
		c.setGravity(c.tilt.Up())
	case IntentGravityDown:
		c.setGravity(c.tilt.Down())
	case IntentGravityReset:
		c.setGravity(c.tilt.Reset())

	case IntentBodiesMore:
		c.adjustBodies(1)
	case IntentBodiesFewer:
		c.adjustBodies(-1)
	case IntentBlocksMore:
		c.adjustBlocks(1)
	case IntentBlocksFewer:
		c.adjustBlocks(-1)
	case IntentPaletteNext:
		c.loop.Post(func(s *engine.Simulation) { s.SetPalette(s.Palette().Next()) })
	case IntentRestart:
		c.loop.Post(func(s *engine.Simulation) { s.Restart() })

	case IntentMouseDown:
		col, row := in.X, in.Y
		d := c.drag
		c.loop.Post(func(s *engine.Simulation) {
			d.id, d.active = s.ObstacleAt(render.CellToArena(col, row))
			d.lastCol, d.lastRow = col, row
		})
	case IntentMouseDrag:
		col, row := in.X, in.Y
		d := c.drag
		c.loop.Post(func(s *engine.Simulation) {
			if !d.active {
				return
			}
			s.DragObstacleBy(d.id, render.CellDelta(col-d.lastCol, row-d.lastRow))
			d.lastCol, d.lastRow = col, row
		})
	case IntentMouseUp:
		d := c.drag
		c.loop.Post(func(*engine.Simulation) { d.active = false })
	}
	return true
}

func (c *Controller) setGravity(g vmath.Vec2) {
	c.loop.Post(func(s *engine.Simulation) { s.SetGravity(g.X, g.Y) })
}

func (c *Controller) adjustBodies(delta int) {
	c.loop.Post(func(s *engine.Simulation) {
		n := s.Store().TargetBodyCount() + delta
		s.SetTargetBodyCount(min(max(n, parameter.MinBodyCount), parameter.MaxBodyCount))
	})
}

func (c *Controller) adjustBlocks(delta int) {
	c.loop.Post(func(s *engine.Simulation) {
		n := s.Store().TargetObstacleCount() + delta
		s.SetTargetObstacleCount(min(max(n, parameter.MinObstacleCount), parameter.MaxObstacleCount))
	})
}
