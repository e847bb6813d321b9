// Package block implements the rectangular pieces of a sliding-block puzzle
// and the occupancy grid they move against.
package block

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/rybkr/blockslide/internal/geom"
)

var (
	ErrInvalidBlock = errors.New("invalid block")
	ErrOutOfBounds  = errors.New("block outside the board")
	ErrOverlap      = errors.New("block overlaps another block")
)

// Block is a rectangle of cells with a stable identity.
// The identity never changes; the position changes only through Move.
type Block struct {
	id        int
	upperLeft geom.Coord
	size      geom.Coord
}

// New creates a height×width block whose upper-left cell is (row, col).
func New(id, height, width, row, col int) (*Block, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id %d must be positive", ErrInvalidBlock, id)
	}
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: block %d has size %dx%d", ErrInvalidBlock, id, height, width)
	}
	if height > math.MaxInt/width {
		return nil, fmt.Errorf("%w: block %d area %dx%d overflows", ErrInvalidBlock, id, height, width)
	}
	if !geom.C(row, col).Valid() {
		return nil, fmt.Errorf("%w: block %d at %v", ErrOutOfBounds, id, geom.C(row, col))
	}
	return &Block{
		id:        id,
		upperLeft: geom.C(row, col),
		size:      geom.C(height, width),
	}, nil
}

// MustNew is New for literals known to be valid. It panics on error.
func MustNew(id, height, width, row, col int) *Block {
	b, err := New(id, height, width, row, col)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Block) ID() int               { return b.id }
func (b *Block) Size() geom.Coord      { return b.size }
func (b *Block) UpperLeft() geom.Coord { return b.upperLeft }
func (b *Block) Area() int             { return b.size.Row * b.size.Col }

// BottomRight is the cell just past the footprint on both axes.
func (b *Block) BottomRight() geom.Coord {
	return b.upperLeft.Add(b.size)
}

// SameSize reports whether b and other have equal height and width.
func (b *Block) SameSize(other *Block) bool {
	return b.size == other.size
}

// Cells returns the footprint in row-major order.
func (b *Block) Cells() []geom.Coord {
	out := make([]geom.Coord, 0, b.Area())
	br := b.BottomRight()
	for r := b.upperLeft.Row; r < br.Row; r++ {
		for c := b.upperLeft.Col; c < br.Col; c++ {
			out = append(out, geom.C(r, c))
		}
	}
	return out
}

// Neighbor returns the upper-left position the block would have after one step in d.
func (b *Block) Neighbor(d geom.Direction) geom.Coord { return b.upperLeft.Step(d) }

func (b *Block) OneUp() geom.Coord    { return b.Neighbor(geom.Up) }
func (b *Block) OneRight() geom.Coord { return b.Neighbor(geom.Right) }
func (b *Block) OneDown() geom.Coord  { return b.Neighbor(geom.Down) }
func (b *Block) OneLeft() geom.Coord  { return b.Neighbor(geom.Left) }

// Place marks the footprint of b on g. Nothing is written unless every cell
// is inside g and currently empty.
func (b *Block) Place(g *Grid) error {
	cells := b.Cells()
	for _, c := range cells {
		switch g.At(c) {
		case Empty:
		case -1:
			return fmt.Errorf("%w: block %d cell %v on %dx%d board", ErrOutOfBounds, b.id, c, g.Rows(), g.Cols())
		default:
			return fmt.Errorf("%w: block %d and block %d share cell %v", ErrOverlap, b.id, g.At(c), c)
		}
	}
	for _, c := range cells {
		g.set(c, b.id)
	}
	return nil
}

// edges returns the strip of cells b would enter and the strip it would
// vacate when moving one step in d.
func (b *Block) edges(d geom.Direction) (entering, leaving []geom.Coord) {
	ul, br := b.upperLeft, b.BottomRight()
	switch d {
	case geom.Up:
		for c := ul.Col; c < br.Col; c++ {
			entering = append(entering, geom.C(ul.Row-1, c))
			leaving = append(leaving, geom.C(br.Row-1, c))
		}
	case geom.Down:
		for c := ul.Col; c < br.Col; c++ {
			entering = append(entering, geom.C(br.Row, c))
			leaving = append(leaving, geom.C(ul.Row, c))
		}
	case geom.Left:
		for r := ul.Row; r < br.Row; r++ {
			entering = append(entering, geom.C(r, ul.Col-1))
			leaving = append(leaving, geom.C(r, br.Col-1))
		}
	case geom.Right:
		for r := ul.Row; r < br.Row; r++ {
			entering = append(entering, geom.C(r, br.Col))
			leaving = append(leaving, geom.C(r, ul.Col))
		}
	}
	return entering, leaving
}

// Move shifts b one cell in direction d on g. It succeeds only if every
// entering cell is in bounds and empty; on failure neither b nor g changes.
func (b *Block) Move(d geom.Direction, g *Grid) bool {
	entering, leaving := b.edges(d)
	if len(entering) == 0 {
		return false
	}
	for _, c := range entering {
		if !g.IsEmpty(c) {
			return false
		}
	}
	for _, c := range leaving {
		if g.At(c) != b.id {
			return false
		}
	}

	for _, c := range leaving {
		g.set(c, Empty)
	}
	for _, c := range entering {
		g.set(c, b.id)
	}
	b.upperLeft = b.upperLeft.Step(d)
	return true
}

// Clone returns a copy with its own footprint storage and the same identity.
func (b *Block) Clone() *Block {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// Equal reports whether b and other have the same identity, size and position.
func (b *Block) Equal(other *Block) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.id == other.id && b.size == other.size && b.upperLeft == other.upperLeft
}

// Hash digests identity, size and position. Equal blocks hash equally.
func (b *Block) Hash() uint64 {
	var buf [40]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(b.id))
	binary.LittleEndian.PutUint64(buf[8:], uint64(b.size.Row))
	binary.LittleEndian.PutUint64(buf[16:], uint64(b.size.Col))
	binary.LittleEndian.PutUint64(buf[24:], uint64(b.upperLeft.Row))
	binary.LittleEndian.PutUint64(buf[32:], uint64(b.upperLeft.Col))
	return xxhash.Sum64(buf[:])
}

func (b *Block) String() string {
	return fmt.Sprintf("#%d %dx%d@%v", b.id, b.size.Row, b.size.Col, b.upperLeft)
}
