package obj

import "testing"

func TestGridCellRoundTrip(t *testing.T) {
	g := Grid{Rows: 9, Cols: 14, CellSize: 64}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			x, y := g.CellCenter(row, col)
			gotRow, gotCol := g.CellAt(x, y)
			if gotRow != row || gotCol != col {
				t.Fatalf("CellAt(CellCenter(%d,%d)) = (%d,%d)", row, col, gotRow, gotCol)
			}
		}
	}
}

func TestGridCellCenter(t *testing.T) {
	g := Grid{Rows: 4, Cols: 4, CellSize: 50}
	cases := []struct {
		name     string
		row, col int
		x, y     float64
	}{
		{"origin", 0, 0, 25, 25},
		{"interior", 2, 1, 75, 125},
		{"corner", 3, 3, 175, 175},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := g.CellCenter(c.row, c.col)
			if x != c.x || y != c.y {
				t.Fatalf("CellCenter(%d,%d) = (%v,%v), want (%v,%v)", c.row, c.col, x, y, c.x, c.y)
			}
		})
	}
}

func TestNewGridFitsScreen(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		cell          int
		rows, cols    int
	}{
		{"exact", 640, 320, 64, 5, 10},
		{"remainder_discarded", 700, 350, 64, 5, 10},
		{"tiny_screen", 30, 30, 64, 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewGrid(c.width, c.height, c.cell)
			if g.Rows != c.rows || g.Cols != c.cols {
				t.Fatalf("NewGrid(%d,%d,%d) = %dx%d, want %dx%d",
					c.width, c.height, c.cell, g.Rows, g.Cols, c.rows, c.cols)
			}
		})
	}
}

func TestGridClamp(t *testing.T) {
	g := Grid{Rows: 5, Cols: 7, CellSize: 32}
	cases := []struct {
		name             string
		row, col         int
		wantRow, wantCol int
	}{
		{"inside", 2, 3, 2, 3},
		{"negative", -4, -1, 0, 0},
		{"past_edges", 10, 10, 4, 6},
		{"mixed", -1, 9, 0, 6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			row, col := g.Clamp(c.row, c.col)
			if row != c.wantRow || col != c.wantCol {
				t.Fatalf("Clamp(%d,%d) = (%d,%d), want (%d,%d)", c.row, c.col, row, col, c.wantRow, c.wantCol)
			}
		})
	}
}
