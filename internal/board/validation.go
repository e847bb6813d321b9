package board

import (
	"errors"
	"fmt"

	"github.com/rybkr/blockslide/internal/block"
	"github.com/rybkr/blockslide/internal/geom"
)

var (
	ErrInvalidBoard = errors.New("invalid board configuration")
	ErrNoMove       = errors.New("no move")
	ErrCorrupt      = errors.New("board invariants violated")
)

// Validate checks that the block list, the id index and the occupancy grid
// describe the same configuration. It returns an error wrapping ErrCorrupt
// on the first mismatch.
func (b *Board) Validate() error {
	if len(b.index) != len(b.blocks) {
		return fmt.Errorf("%w: %d blocks but %d indexed", ErrCorrupt, len(b.blocks), len(b.index))
	}
	if b.grid == nil || b.grid.Rows() != b.rows || b.grid.Cols() != b.cols {
		return fmt.Errorf("%w: grid does not match %dx%d", ErrCorrupt, b.rows, b.cols)
	}

	covered := 0
	for i, blk := range b.blocks {
		if i > 0 && b.blocks[i-1].ID() >= blk.ID() {
			return fmt.Errorf("%w: blocks out of id order at %d", ErrCorrupt, blk.ID())
		}
		if b.index[blk.ID()] != blk {
			return fmt.Errorf("%w: block %d not indexed", ErrCorrupt, blk.ID())
		}
		for _, c := range blk.Cells() {
			if b.grid.At(c) != blk.ID() {
				return fmt.Errorf("%w: cell %v of block %d holds %d", ErrCorrupt, c, blk.ID(), b.grid.At(c))
			}
		}
		covered += blk.Area()
	}

	if empty := b.grid.EmptyCount(); covered+empty != b.rows*b.cols {
		return fmt.Errorf("%w: %d covered and %d empty cells on a %dx%d board",
			ErrCorrupt, covered, empty, b.rows, b.cols)
	}
	return nil
}

// isValidDestination reports whether dest is a cell of the board.
func (b *Board) isValidDestination(dest geom.Coord) bool {
	return dest.In(b.rows, b.cols)
}

// directionTo returns the direction that moves blk's upper-left corner onto dest.
func directionTo(blk *block.Block, dest geom.Coord) (geom.Direction, bool) {
	for _, d := range geom.Directions {
		if blk.Neighbor(d) == dest {
			return d, true
		}
	}
	return 0, false
}
