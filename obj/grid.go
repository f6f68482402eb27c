package obj

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gridpets/common"
)

// Grid is the logical cell grid the pets live on. Cells are square and
// addressed by (row, col); the continuous position of a cell is its center in
// screen pixels. A Grid is a plain value so resize handlers can build a new
// one and hand it to every pet.
type Grid struct {
	Rows     int
	Cols     int
	CellSize int
}

// NewGrid builds the largest grid of cellSize squares that fits the given
// screen dimensions. Always at least 1x1.
func NewGrid(width, height, cellSize int) Grid {
	rows := height / cellSize
	cols := width / cellSize
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return Grid{Rows: rows, Cols: cols, CellSize: cellSize}
}

// CellCenter returns the continuous position of the center of a cell.
func (g Grid) CellCenter(row, col int) (x, y float64) {
	half := float64(g.CellSize) / 2
	return float64(col*g.CellSize) + half, float64(row*g.CellSize) + half
}

// CellAt returns the cell containing the continuous position. The result can
// be out of range for positions outside the grid; see Clamp.
func (g Grid) CellAt(x, y float64) (row, col int) {
	return int(math.Floor(y / float64(g.CellSize))), int(math.Floor(x / float64(g.CellSize)))
}

// Clamp bounds a cell to the grid.
func (g Grid) Clamp(row, col int) (int, int) {
	return common.Clamp(row, 0, g.Rows-1), common.Clamp(col, 0, g.Cols-1)
}

// Contains reports whether the cell is on the grid.
func (g Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Draw strokes the grid lines.
func (g Grid) Draw(screen *ebiten.Image, clr color.Color) {
	w := float32(g.Cols * g.CellSize)
	h := float32(g.Rows * g.CellSize)
	cs := float32(g.CellSize)
	for r := 0; r <= g.Rows; r++ {
		y := float32(r) * cs
		vector.StrokeLine(screen, 0, y, w, y, 1, clr, false)
	}
	for c := 0; c <= g.Cols; c++ {
		x := float32(c) * cs
		vector.StrokeLine(screen, x, 0, x, h, 1, clr, false)
	}
}
