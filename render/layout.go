package render

import (
	"github.com/lixenwraith/ballpit/parameter"
	"github.com/lixenwraith/ballpit/vmath"
)

// ArenaSize converts a terminal size to arena extents, reserving the status rows
func ArenaSize(cols, rows int) (width, height float64) {
	return float64(max(cols, 0)) * parameter.CellWidthPx,
		float64(max(rows-parameter.StatusRows, 0)) * parameter.CellHeightPx
}

// CellToArena returns the arena point at the center of a terminal cell
func CellToArena(col, row int) vmath.Vec2 {
	return vmath.V2(
		(float64(col)+0.5)*parameter.CellWidthPx,
		(float64(row)+0.5)*parameter.CellHeightPx,
	)
}

// CellDelta converts a pointer move in cells to an arena displacement
func CellDelta(dCol, dRow int) vmath.Vec2 {
	return vmath.V2(float64(dCol)*parameter.CellWidthPx, float64(dRow)*parameter.CellHeightPx)
}
