package board

import (
	"cmp"
	"math"
	"slices"

	"github.com/rybkr/blockslide/internal/block"
)

// MaxCost is charged for a goal block that no remaining block can match.
// Cost sums saturate at MaxCost.
const MaxCost = math.MaxInt

// ComputeCost estimates the distance from b to goal and caches it.
//
// Goal blocks are visited in ascending id order. A goal block already present
// on b costs nothing and consumes its match. Otherwise it is paired with the
// nearest (Manhattan distance of upper-left corners) unconsumed block of the
// same height and width. Matching is greedy and one-to-one, so the result is
// not guaranteed to be the minimum-cost assignment.
func (b *Board) ComputeCost(goal *Board) int {
	if b.costKnown {
		b.logger.Warn("board cost recomputed without reset",
			"board", b.String(), "previous_cost", b.cost)
	}

	remaining := slices.Clone(b.blocks)
	total := 0
	for _, g := range goal.blocks {
		if b.contains(g) {
			remaining = slices.DeleteFunc(remaining, g.Equal)
			continue
		}

		i, dist := nearestSameSize(remaining, g)
		if i < 0 {
			b.logger.Warn("goal block has no same-size match",
				"goal_block", g.String(), "board", b.String())
			total = addCost(total, MaxCost)
			continue
		}
		remaining = slices.Delete(remaining, i, i+1)
		total = addCost(total, dist)
	}

	b.cost = total
	b.costKnown = true
	return total
}

// Cost returns the cached cost, computing it against goal first if needed.
func (b *Board) Cost(goal *Board) int {
	if !b.costKnown {
		return b.ComputeCost(goal)
	}
	return b.cost
}

// Priority returns the cached cost, or 0 if it has not been computed.
func (b *Board) Priority() int {
	return b.cost
}

// CostKnown reports whether the cost has been computed since the last reset.
func (b *Board) CostKnown() bool {
	return b.costKnown
}

// ResetCost clears the cached cost.
func (b *Board) ResetCost() {
	b.cost = 0
	b.costKnown = false
}

// Compare orders boards by cost against goal; lower cost sorts first.
func (b *Board) Compare(other *Board, goal *Board) int {
	return cmp.Compare(b.Cost(goal), other.Cost(goal))
}

// nearestSameSize returns the index of the block in candidates with g's size
// whose upper-left corner is closest to g's, and that distance. The first
// of several equally close blocks wins. It returns -1 if no size matches.
func nearestSameSize(candidates []*block.Block, g *block.Block) (int, int) {
	best, bestDist := -1, MaxCost
	for i, c := range candidates {
		if !c.SameSize(g) {
			continue
		}
		if d := c.UpperLeft().Manhattan(g.UpperLeft()); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

func addCost(total, n int) int {
	if n >= MaxCost-total {
		return MaxCost
	}
	return total + n
}
