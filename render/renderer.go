package render

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ballpit/core"
	"github.com/lixenwraith/ballpit/engine"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/status"
)

const halfBlock = '▀'

// rimWidth is the obstacle outline thickness in arena units
const rimWidth = PixelSize

var (
	statusFg = core.RGB{R: 192, G: 202, B: 245}
	statusBg = core.RGB{R: 36, G: 40, B: 59}
	pausedFg = core.RGB{R: 255, G: 158, B: 100}
)

// Renderer draws snapshots onto a tcell screen
// Draw runs on the simulation loop; ToggleMenu may be called from the input goroutine
type Renderer struct {
	screen  tcell.Screen
	raster  *Raster
	metrics *status.Registry

	menu atomic.Bool
}

// NewRenderer binds a renderer to an initialized screen; metrics may be nil
func NewRenderer(screen tcell.Screen, metrics *status.Registry) *Renderer {
	return &Renderer{
		screen:  screen,
		raster:  NewRaster(0, 0),
		metrics: metrics,
	}
}

// ToggleMenu flips the help overlay and returns the new visibility
func (r *Renderer) ToggleMenu() bool {
	for {
		v := r.menu.Load()
		if r.menu.CompareAndSwap(v, !v) {
			return !v
		}
	}
}

// MenuVisible reports whether the help overlay is shown
func (r *Renderer) MenuVisible() bool {
	return r.menu.Load()
}

// Draw rasterizes bodies and obstacles, then the status line and optional menu
func (r *Renderer) Draw(snap *engine.Snapshot) {
	cols, rows := r.screen.Size()
	arenaRows := max(rows-parameter.StatusRows, 0)

	r.raster.Resize(cols, arenaRows)
	r.raster.Clear(Background)

	for i := range snap.Bodies {
		b := &snap.Bodies[i]
		r.raster.FillCircle(b.Position, b.Radius, b.Color, b.Color, 0)
	}
	for i := range snap.Obstacles {
		o := &snap.Obstacles[i]
		r.raster.FillCircle(o.Position, o.Radius, o.Color, core.RGBObstacleRim, rimWidth)
	}

	r.flushRaster()
	r.drawStatus(snap, cols, rows)
	if r.menu.Load() {
		r.drawMenu(snap, cols, arenaRows)
	}
	r.screen.Show()
}

// flushRaster packs two pixel rows into each terminal row
func (r *Renderer) flushRaster() {
	cols, height := r.raster.Bounds()
	for row := 0; row < height/2; row++ {
		for col := 0; col < cols; col++ {
			top := r.raster.Get(col, row*2)
			bottom := r.raster.Get(col, row*2+1)
			if top == bottom {
				r.screen.SetContent(col, row, ' ', nil, styleOf(top, top))
				continue
			}
			r.screen.SetContent(col, row, halfBlock, nil, styleOf(top, bottom))
		}
	}
}

func (r *Renderer) drawStatus(snap *engine.Snapshot, cols, rows int) {
	if rows < parameter.StatusRows {
		return
	}
	y := rows - parameter.StatusRows
	style := styleOf(statusFg, statusBg)
	for x := 0; x < cols; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	text := fmt.Sprintf(" bodies %d/%d  blocks %d/%d  %s  g(%.1f, %.1f)",
		len(snap.Bodies), snap.TargetBodies,
		len(snap.Obstacles), snap.TargetObstacles,
		snap.Palette, snap.Gravity.X, snap.Gravity.Y)
	if r.metrics != nil {
		text += fmt.Sprintf("  step %.2fms", r.metrics.Floats.Get("sim.step_ms").Get())
	}
	x := drawText(r.screen, 0, y, cols, text, style)

	if snap.Paused {
		drawText(r.screen, x+2, y, cols, "PAUSED", styleOf(pausedFg, statusBg).Bold(true))
	}

	hint := "m: menu  q: quit "
	if hx := cols - len(hint); hx > x+10 {
		drawText(r.screen, hx, y, cols, hint, style)
	}
}

// drawText writes text left to right, clipped at maxX, and returns the column after the last rune
func drawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= maxX {
			break
		}
		if x >= 0 {
			screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
