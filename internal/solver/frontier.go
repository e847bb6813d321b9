package solver

import (
	"github.com/rybkr/blockslide/internal/board"
)

// node is a frontier entry. depth and seq break cost ties: shallower boards
// first, then the order boards were generated in.
type node struct {
	board *board.Board
	depth int
	seq   int
	index int
}

// frontier is a min-heap of nodes ordered by board priority.
type frontier []*node

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	pi, pj := f[i].board.Priority(), f[j].board.Priority()
	if pi != pj {
		return pi < pj
	}
	if f[i].depth != f[j].depth {
		return f[i].depth < f[j].depth
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	n := x.(*node)
	n.index = len(*f)
	*f = append(*f, n)
}

func (f *frontier) Pop() any {
	old := *f
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*f = old[:last]
	return n
}

// visitedSet deduplicates boards by hash, resolving collisions with Equal.
type visitedSet struct {
	buckets map[uint64][]*board.Board
	size    int
}

func newVisitedSet() *visitedSet {
	return &visitedSet{buckets: make(map[uint64][]*board.Board)}
}

func (v *visitedSet) contains(b *board.Board) bool {
	for _, seen := range v.buckets[b.Hash()] {
		if seen.Equal(b) {
			return true
		}
	}
	return false
}

// add records b and reports whether it was new.
func (v *visitedSet) add(b *board.Board) bool {
	if v.contains(b) {
		return false
	}
	h := b.Hash()
	v.buckets[h] = append(v.buckets[h], b)
	v.size++
	return true
}

func (v *visitedSet) Len() int { return v.size }
