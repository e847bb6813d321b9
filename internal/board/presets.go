package board

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rybkr/blockslide/internal/block"
)

var ErrUnknownPreset = errors.New("unknown preset")

// piece is a block literal: id, height, width, row, col.
type piece [5]int

type preset struct {
	rows, cols int
	start      pieces
	goal       pieces
}

// presets is the collection of hand-made puzzles. Every entry is checked by
// New at package init.
var presets = map[string]preset{
	// One unit block slides down one cell.
	//   1    .
	//   . -> 1
	"trivial": {
		rows: 2, cols: 1,
		start: []piece{{1, 1, 1, 0, 0}},
		goal:  []piece{{1, 1, 1, 1, 0}},
	},

	// Two unit blocks trade places using the free bottom row.
	//   1 2    2 1
	//   . . -> . .
	"swap": {
		rows: 2, cols: 2,
		start: []piece{{1, 1, 1, 0, 0}, {2, 1, 1, 0, 1}},
		goal:  []piece{{1, 1, 1, 0, 1}, {2, 1, 1, 0, 0}},
	},

	// A 2x2 block reaches the far corner once the unit block steps aside.
	//   1 1 .    . . .
	//   1 1 .    . 1 1
	//   . . 2 -> . 1 1
	"corner": {
		rows: 3, cols: 3,
		start: []piece{{1, 2, 2, 0, 0}, {2, 1, 1, 2, 2}},
		goal:  []piece{{1, 2, 2, 1, 1}},
	},

	// Klotski (Huarong Dao): bring the 2x2 block to the bottom exit.
	//   1 2 2 3
	//   1 2 2 3
	//   4 5 5 6
	//   4 7 8 6
	//   9 . . 10
	"klotski": {
		rows: 5, cols: 4,
		start: []piece{
			{1, 2, 1, 0, 0}, {2, 2, 2, 0, 1}, {3, 2, 1, 0, 3},
			{4, 2, 1, 2, 0}, {5, 1, 2, 2, 1}, {6, 2, 1, 2, 3},
			{7, 1, 1, 3, 1}, {8, 1, 1, 3, 2},
			{9, 1, 1, 4, 0}, {10, 1, 1, 4, 3},
		},
		goal: []piece{{2, 2, 2, 3, 1}},
	},
}

func init() {
	// Validate all presets at startup so broken literals surface immediately.
	for name := range presets {
		if _, _, err := Preset(name); err != nil {
			panic("presets: " + name + " failed validation: " + err.Error())
		}
	}
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Preset builds fresh start and goal boards for the named puzzle.
func Preset(name string, opts ...Option) (start, goal *Board, err error) {
	p, ok := presets[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	start, err = New(p.rows, p.cols, p.start.blocks(), opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("preset %s start: %w", name, err)
	}
	goal, err = New(p.rows, p.cols, p.goal.blocks(), opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("preset %s goal: %w", name, err)
	}
	return start, goal, nil
}

type pieces []piece

func (ps pieces) blocks() []*block.Block {
	out := make([]*block.Block, len(ps))
	for i, p := range ps {
		out[i] = block.MustNew(p[0], p[1], p[2], p[3], p[4])
	}
	return out
}
