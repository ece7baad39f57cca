package render

import (
	"math"

	"github.com/lixenwraith/ballpit/core"
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/vmath"
)

// PixelSize is the arena extent of one raster pixel on both axes
// A terminal row holds two pixels stacked with a half-block glyph
const PixelSize = parameter.CellHeightPx / 2

// Raster is a pixel buffer at half-block resolution: width columns, two pixels per row
type Raster struct {
	pixels []core.RGB
	width  int
	height int
}

// NewRaster creates a raster covering cols×rows terminal cells
func NewRaster(cols, rows int) *Raster {
	r := &Raster{}
	r.Resize(cols, rows)
	return r
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (r *Raster) Resize(cols, rows int) {
	w, h := max(cols, 0), max(rows, 0)*2
	size := w * h
	if cap(r.pixels) < size {
		r.pixels = make([]core.RGB, size)
	} else {
		r.pixels = r.pixels[:size]
	}
	r.width = w
	r.height = h
}

// Bounds returns the pixel dimensions
func (r *Raster) Bounds() (int, int) {
	return r.width, r.height
}

// Clear fills every pixel with c using exponential copy
func (r *Raster) Clear(c core.RGB) {
	if len(r.pixels) == 0 {
		return
	}
	r.pixels[0] = c
	for filled := 1; filled < len(r.pixels); filled *= 2 {
		copy(r.pixels[filled:], r.pixels[:filled])
	}
}

func (r *Raster) inBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// Set writes one pixel, ignoring out-of-bounds coordinates
func (r *Raster) Set(x, y int, c core.RGB) {
	if !r.inBounds(x, y) {
		return
	}
	r.pixels[y*r.width+x] = c
}

// Get reads one pixel; out-of-bounds returns black
func (r *Raster) Get(x, y int) core.RGB {
	if !r.inBounds(x, y) {
		return core.RGBBlack
	}
	return r.pixels[y*r.width+x]
}

// FillCircle paints every pixel whose center lies inside the arena-space circle
// Pixels within rimWidth of the edge take rim color; rimWidth 0 disables the rim
func (r *Raster) FillCircle(center vmath.Vec2, radius float64, fill, rim core.RGB, rimWidth float64) {
	if radius <= 0 || r.width == 0 || r.height == 0 {
		return
	}
	x0 := max(int(math.Floor((center.X-radius)/PixelSize)), 0)
	x1 := min(int(math.Ceil((center.X+radius)/PixelSize)), r.width-1)
	y0 := max(int(math.Floor((center.Y-radius)/PixelSize)), 0)
	y1 := min(int(math.Ceil((center.Y+radius)/PixelSize)), r.height-1)

	outer := radius * radius
	inner := max(radius-rimWidth, 0)
	inner *= inner

	for py := y0; py <= y1; py++ {
		cy := (float64(py)+0.5)*PixelSize - center.Y
		for px := x0; px <= x1; px++ {
			cx := (float64(px)+0.5)*PixelSize - center.X
			d := cx*cx + cy*cy
			if d > outer {
				continue
			}
			if rimWidth > 0 && d > inner {
				r.pixels[py*r.width+px] = rim
			} else {
				r.pixels[py*r.width+px] = fill
			}
		}
	}
}
