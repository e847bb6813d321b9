// Package geom holds the integer grid geometry shared by blocks and boards.
package geom

import "fmt"

// Coord is a row/column pair on the board. It doubles as a height/width size.
type Coord struct {
	Row int
	Col int
}

// Direction is one of the four cardinal one-step moves.
type Direction int

const (
	Up Direction = iota + 1
	Right
	Down
	Left
)

// Directions lists the cardinal directions in the order moves are tried.
var Directions = [...]Direction{Up, Right, Down, Left}

// offsets is indexed by Direction.
var offsets = [...]Coord{
	Up:    {Row: -1, Col: 0},
	Right: {Row: 0, Col: 1},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
}

// Offset returns the unit vector for d, or the zero Coord for an unknown direction.
func (d Direction) Offset() Coord {
	if d < Up || d > Left {
		return Coord{}
	}
	return offsets[d]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns the component-wise sum of c and other.
func (c Coord) Add(other Coord) Coord {
	return Coord{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// Step returns the coordinate one cell away from c in direction d.
func (c Coord) Step(d Direction) Coord {
	return c.Add(d.Offset())
}

// Valid reports whether both components are non-negative.
func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Col >= 0
}

// In reports whether c lies inside a rows×cols grid.
func (c Coord) In(rows, cols int) bool {
	return c.Valid() && c.Row < rows && c.Col < cols
}

// Manhattan returns the taxicab distance between c and other.
func (c Coord) Manhattan(other Coord) int {
	return abs(c.Row-other.Row) + abs(c.Col-other.Col)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
