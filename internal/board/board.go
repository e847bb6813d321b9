// Package board implements the search state of a sliding-block puzzle: a
// configuration of blocks on a fixed grid together with the provenance and
// heuristic cost a best-first search needs.
package board

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/rybkr/blockslide/internal/block"
	"github.com/rybkr/blockslide/internal/geom"
)

// Board is one configuration of blocks on a rows×cols grid.
//
// A Board is a node in the search graph. Once provenance is attached it is
// never mutated again; moves always produce a new Board.
type Board struct {
	rows int
	cols int

	// blocks is kept in ascending id order. index maps each id to the same
	// pointer stored in blocks.
	blocks []*block.Block
	index  map[int]*block.Block

	// grid records which block covers each cell. Cells holding block.Empty
	// form the empty-cell set.
	grid *block.Grid

	cost      int
	costKnown bool

	prov    Provenance
	hasProv bool

	logger *slog.Logger
}

// Option configures a Board at construction time.
type Option func(*Board)

// WithLogger sets the logger used for heuristic diagnostics.
// Clones and successors inherit it.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Board) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New builds a rows×cols board holding copies of blocks.
// It fails if the dimensions are not positive, ids repeat, or footprints
// leave the grid or overlap.
func New(rows, cols int, blocks []*block.Block, opts ...Option) (*Board, error) {
	if err := validateLayout(rows, cols, blocks); err != nil {
		return nil, err
	}

	b := &Board{
		rows:   rows,
		cols:   cols,
		blocks: make([]*block.Block, 0, len(blocks)),
		index:  make(map[int]*block.Block, len(blocks)),
		grid:   block.NewGrid(rows, cols),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	for _, blk := range sortedByID(blocks) {
		own := blk.Clone()
		if err := own.Place(b.grid); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
		}
		b.blocks = append(b.blocks, own)
		b.index[own.ID()] = own
	}
	return b, nil
}

// Clone creates an independent copy of the Board. Blocks, the grid and the
// id index are all copied; the cached cost is kept. Provenance is not copied.
// Clone fails with ErrCorrupt if the source violates its own invariants.
func (b *Board) Clone() (*Board, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil board", ErrCorrupt)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	clone := &Board{
		rows:      b.rows,
		cols:      b.cols,
		blocks:    make([]*block.Block, len(b.blocks)),
		index:     make(map[int]*block.Block, len(b.index)),
		grid:      b.grid.Clone(),
		cost:      b.cost,
		costKnown: b.costKnown,
		logger:    b.logger,
	}
	for i, blk := range b.blocks {
		own := blk.Clone()
		clone.blocks[i] = own
		clone.index[own.ID()] = own
	}
	return clone, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// Len returns the number of blocks on the board.
func (b *Board) Len() int { return len(b.blocks) }

// Blocks returns copies of the blocks in ascending id order.
func (b *Board) Blocks() []*block.Block {
	out := make([]*block.Block, len(b.blocks))
	for i, blk := range b.blocks {
		out[i] = blk.Clone()
	}
	return out
}

// Block looks up a block by id. The returned block is a copy.
func (b *Board) Block(id int) (*block.Block, bool) {
	blk, ok := b.index[id]
	if !ok {
		return nil, false
	}
	return blk.Clone(), true
}

// EmptyCells returns the uncovered cells in row-major order.
func (b *Board) EmptyCells() []geom.Coord {
	return b.grid.EmptyCells()
}

// EmptyCount returns the number of uncovered cells.
func (b *Board) EmptyCount() int {
	return b.grid.EmptyCount()
}

// IsSolved reports whether every block of goal is present, with the same
// identity, size and position, on b. Extra blocks on b are ignored.
func (b *Board) IsSolved(goal *Board) bool {
	for _, g := range goal.blocks {
		if !b.contains(g) {
			return false
		}
	}
	return true
}

// contains reports whether a block equal to blk is on the board.
func (b *Board) contains(blk *block.Block) bool {
	own, ok := b.index[blk.ID()]
	return ok && own.Equal(blk)
}

// String returns a compact single-line description of the board.
func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d[", b.rows, b.cols)
	for i, blk := range b.blocks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(blk.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Format returns the grid with each cell showing the id of its block,
// or '.' for empty cells.
func (b *Board) Format() string {
	width := 1
	if n := len(b.blocks); n > 0 {
		width = len(strconv.Itoa(b.blocks[n-1].ID()))
	}

	var sb strings.Builder
	for row := range b.rows {
		for col := range b.cols {
			if col > 0 {
				sb.WriteByte(' ')
			}
			id := b.grid.At(geom.C(row, col))
			cell := "."
			if id != block.Empty {
				cell = strconv.Itoa(id)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func sortedByID(blocks []*block.Block) []*block.Block {
	sorted := slices.Clone(blocks)
	slices.SortFunc(sorted, func(x, y *block.Block) int {
		return x.ID() - y.ID()
	})
	return sorted
}
