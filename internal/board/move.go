package board

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rybkr/blockslide/internal/block"
	"github.com/rybkr/blockslide/internal/geom"
)

// Provenance records how a Board was derived from its parent.
type Provenance struct {
	Parent      *Board
	Block       *block.Block
	Direction   geom.Direction
	Destination geom.Coord
}

// Attach sets the provenance of b. Only the first call has any effect;
// later calls return false and leave b unchanged.
func (b *Board) Attach(p Provenance) bool {
	if b.hasProv {
		return false
	}
	b.prov = p
	b.hasProv = true
	return true
}

// Provenance returns the move that produced b, if any.
// The returned Block is a copy of the moved block.
func (b *Board) Provenance() (Provenance, bool) {
	p := b.prov
	if p.Block != nil {
		p.Block = p.Block.Clone()
	}
	return p, b.hasProv
}

// Parent returns the board b was derived from, or nil for a root board.
func (b *Board) Parent() *Board {
	return b.prov.Parent
}

// Depth returns the number of moves between the root board and b.
func (b *Board) Depth() int {
	depth := 0
	for p := b.prov.Parent; p != nil; p = p.prov.Parent {
		depth++
	}
	return depth
}

// Path returns the chain of boards from the root to b, inclusive.
func (b *Board) Path() []*Board {
	var path []*Board
	for n := b; n != nil; n = n.prov.Parent {
		path = append(path, n)
	}
	slices.Reverse(path)
	return path
}

// TryMove returns the board obtained by sliding the block with ref's
// identity so that its upper-left corner lands on dest. b is not modified.
//
// Illegal moves (unknown block, destination off the board, not one step
// away, or blocked) return an error wrapping ErrNoMove. Any other error
// means b could not be cloned and is fatal to the search.
func (b *Board) TryMove(ref *block.Block, dest geom.Coord) (*Board, error) {
	if ref == nil {
		return nil, fmt.Errorf("%w: nil block", ErrNoMove)
	}
	if _, ok := b.index[ref.ID()]; !ok {
		return nil, fmt.Errorf("%w: block %d not on board", ErrNoMove, ref.ID())
	}
	if !b.isValidDestination(dest) {
		return nil, fmt.Errorf("%w: destination %v outside %dx%d board", ErrNoMove, dest, b.rows, b.cols)
	}

	next, err := b.Clone()
	if err != nil {
		return nil, err
	}

	// Resolve against the clone so only the clone's storage is mutated.
	moved := next.index[ref.ID()]
	dir, ok := directionTo(moved, dest)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not one step from block %d at %v",
			ErrNoMove, dest, moved.ID(), moved.UpperLeft())
	}
	if !moved.Move(dir, next.grid) {
		return nil, fmt.Errorf("%w: block %d cannot move %s", ErrNoMove, moved.ID(), dir)
	}

	next.ResetCost()
	next.Attach(Provenance{
		Parent:      b,
		Block:       moved,
		Direction:   dir,
		Destination: dest,
	})
	return next, nil
}

// Successors returns every board reachable from b with one single-step move,
// ordered by block id and then by direction.
func (b *Board) Successors() ([]*Board, error) {
	var out []*Board
	for _, blk := range b.blocks {
		for _, d := range geom.Directions {
			next, err := b.TryMove(blk, blk.Neighbor(d))
			if errors.Is(err, ErrNoMove) {
				continue
			}
			if err != nil {
				return nil, err
			}
			out = append(out, next)
		}
	}
	return out, nil
}
