package block

import (
	"slices"

	"github.com/rybkr/blockslide/internal/geom"
)

// Empty marks a grid cell that no block covers.
const Empty = 0

// Grid is the occupancy table of a board: every cell holds the id of the
// block covering it, or Empty.
type Grid struct {
	rows  int
	cols  int
	cells []int
}

// NewGrid returns an all-empty rows×cols grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
	}
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// In reports whether c is a cell of the grid.
func (g *Grid) In(c geom.Coord) bool {
	return c.In(g.rows, g.cols)
}

// At returns the id covering c. Out-of-bounds cells report -1.
func (g *Grid) At(c geom.Coord) int {
	if !g.In(c) {
		return -1
	}
	return g.cells[c.Row*g.cols+c.Col]
}

// IsEmpty reports whether c is in bounds and uncovered.
func (g *Grid) IsEmpty(c geom.Coord) bool {
	return g.At(c) == Empty
}

func (g *Grid) set(c geom.Coord, id int) {
	g.cells[c.Row*g.cols+c.Col] = id
}

// EmptyCells returns the uncovered cells in row-major order.
func (g *Grid) EmptyCells() []geom.Coord {
	out := make([]geom.Coord, 0, g.EmptyCount())
	for i, id := range g.cells {
		if id == Empty {
			out = append(out, geom.C(i/g.cols, i%g.cols))
		}
	}
	return out
}

// EmptyCount returns the number of uncovered cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, id := range g.cells {
		if id == Empty {
			n++
		}
	}
	return n
}

// Clone returns a grid that shares no storage with g.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: slices.Clone(g.cells),
	}
}

// Equal reports whether both grids have the same shape and occupancy.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.rows == other.rows && g.cols == other.cols && slices.Equal(g.cells, other.cells)
}
