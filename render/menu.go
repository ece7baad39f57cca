package render

import (
	"github.com/lixenwraith/ballpit/core"
	"github.com/lixenwraith/ballpit/engine"
	"github.com/lixenwraith/ballpit/parameter"
)

var (
	menuFg     = core.RGB{R: 192, G: 202, B: 245}
	menuBg     = core.RGB{R: 22, G: 22, B: 30}
	menuAccent = core.RGB{R: 122, G: 162, B: 247}
)

var menuLines = []string{
	"ballpit",
	"",
	"←/→    tilt gravity",
	"↑/↓    weaker / stronger",
	"0      gravity straight down",
	"+/-    bodies",
	"]/[    blocks",
	"c      next palette",
	"r      restart",
	"space  pause",
	"mouse  drag blocks",
	"m/?    close menu",
	"q      quit",
	"",
}

var menuPalettes = []core.Palette{core.PaletteRGB, core.PaletteGray, core.PaletteWhite}

// drawMenu centers the help box with a gradient swatch per palette
func (r *Renderer) drawMenu(snap *engine.Snapshot, cols, rows int) {
	const width = 32
	height := len(menuLines) + len(menuPalettes) + 2

	if cols < width || rows < height {
		return
	}
	x0 := (cols - width) / 2
	y0 := (rows - height) / 2

	base := styleOf(menuFg, menuBg)
	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			r.screen.SetContent(x, y, ' ', nil, base)
		}
	}

	y := y0 + 1
	for i, line := range menuLines {
		style := base
		if i == 0 {
			style = styleOf(menuAccent, menuBg).Bold(true)
		}
		drawText(r.screen, x0+2, y, x0+width-1, line, style)
		y++
	}

	for _, p := range menuPalettes {
		marker := "  "
		style := base
		if p == snap.Palette {
			marker = "> "
			style = styleOf(menuAccent, menuBg)
		}
		x := drawText(r.screen, x0+2, y, x0+width-1, marker+p.String(), style)
		x = max(x+1, x0+10)
		for _, c := range core.Gradient(p, parameter.GradientStops) {
			r.screen.SetContent(x, y, ' ', nil, styleOf(c, c))
			x++
		}
		y++
	}
}
