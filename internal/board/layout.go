package board

import (
	"fmt"

	"github.com/rybkr/blockslide/internal/block"
)

// MaxCells is the largest number of cells a board may have.
const MaxCells = 1 << 20

// validateLayout checks the parts of a configuration that do not need a grid:
// dimensions, non-nil blocks that fit the board and unique positive ids.
// Footprint bounds and overlap are checked when each block is placed.
func validateLayout(rows, cols int, blocks []*block.Block) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidBoard, rows, cols)
	}
	if rows > MaxCells/cols {
		return fmt.Errorf("%w: dimensions %dx%d exceed %d cells", ErrInvalidBoard, rows, cols, MaxCells)
	}

	seen := make(map[int]struct{}, len(blocks))
	area := 0
	for i, blk := range blocks {
		if blk == nil {
			return fmt.Errorf("%w: block %d is nil", ErrInvalidBoard, i)
		}
		if blk.ID() <= 0 {
			return fmt.Errorf("%w: block id %d must be positive", ErrInvalidBoard, blk.ID())
		}
		if _, dup := seen[blk.ID()]; dup {
			return fmt.Errorf("%w: duplicate block id %d", ErrInvalidBoard, blk.ID())
		}
		if size := blk.Size(); size.Row > rows || size.Col > cols {
			return fmt.Errorf("%w: block %d is %dx%d, larger than the %dx%d board",
				ErrInvalidBoard, blk.ID(), size.Row, size.Col, rows, cols)
		}
		seen[blk.ID()] = struct{}{}
		area += blk.Area()
	}

	if area > rows*cols {
		return fmt.Errorf("%w: blocks cover %d cells but the board has %d", ErrInvalidBoard, area, rows*cols)
	}
	return nil
}
