package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ballpit/core"
)

// Background is the arena backdrop (Tokyo Night)
var Background = core.RGB{R: 26, G: 27, B: 38}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// styleOf builds an opaque style from explicit colors
func styleOf(fg, bg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(RGBToTcell(fg)).Background(RGBToTcell(bg))
}
