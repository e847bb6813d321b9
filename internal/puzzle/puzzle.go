// Package puzzle reads and writes sliding-block puzzles as YAML documents.
package puzzle

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/rybkr/blockslide/internal/block"
	"github.com/rybkr/blockslide/internal/board"
)

var ErrInvalidFile = errors.New("invalid puzzle file")

// Block is one block entry of a puzzle file.
type Block struct {
	ID     int `yaml:"id"`
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Row    int `yaml:"row"`
	Col    int `yaml:"col"`
}

// File is a puzzle document: board size, start blocks and goal blocks.
// Goal blocks refer to start blocks by id.
type File struct {
	Name   string  `yaml:"name,omitempty"`
	Rows   int     `yaml:"rows"`
	Cols   int     `yaml:"cols"`
	Blocks []Block `yaml:"blocks"`
	Goal   []Block `yaml:"goal"`
}

// Load reads and validates a puzzle file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a puzzle document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the document-level rules that board construction does not:
// the board size is bounded, every block fits it, a goal is present and every
// goal block names a start block of the same size.
func (f *File) Validate() error {
	if f.Rows <= 0 || f.Cols <= 0 {
		return fmt.Errorf("%w: rows and cols must be positive, got %dx%d", ErrInvalidFile, f.Rows, f.Cols)
	}
	if f.Rows > board.MaxCells/f.Cols {
		return fmt.Errorf("%w: %dx%d board exceeds %d cells", ErrInvalidFile, f.Rows, f.Cols, board.MaxCells)
	}
	if len(f.Goal) == 0 {
		return fmt.Errorf("%w: goal must list at least one block", ErrInvalidFile)
	}

	for _, b := range append(slices.Clone(f.Blocks), f.Goal...) {
		if b.Height > f.Rows || b.Width > f.Cols {
			return fmt.Errorf("%w: block %d is %dx%d, larger than the %dx%d board",
				ErrInvalidFile, b.ID, b.Height, b.Width, f.Rows, f.Cols)
		}
	}

	start := make(map[int]Block, len(f.Blocks))
	for _, b := range f.Blocks {
		start[b.ID] = b
	}
	for _, g := range f.Goal {
		b, ok := start[g.ID]
		if !ok {
			return fmt.Errorf("%w: goal block %d has no start block", ErrInvalidFile, g.ID)
		}
		if b.Height != g.Height || b.Width != g.Width {
			return fmt.Errorf("%w: goal block %d is %dx%d but start block is %dx%d",
				ErrInvalidFile, g.ID, g.Height, g.Width, b.Height, b.Width)
		}
	}
	return nil
}

// Boards builds the start and goal boards described by f.
func (f *File) Boards(opts ...board.Option) (start, goal *board.Board, err error) {
	startBlocks, err := toBlocks(f.Blocks)
	if err != nil {
		return nil, nil, err
	}
	goalBlocks, err := toBlocks(f.Goal)
	if err != nil {
		return nil, nil, err
	}

	start, err = board.New(f.Rows, f.Cols, startBlocks, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: start: %w", ErrInvalidFile, err)
	}
	goal, err = board.New(f.Rows, f.Cols, goalBlocks, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: goal: %w", ErrInvalidFile, err)
	}
	return start, goal, nil
}

// FromBoards describes start and goal as a puzzle document.
func FromBoards(name string, start, goal *board.Board) *File {
	return &File{
		Name:   name,
		Rows:   start.Rows(),
		Cols:   start.Cols(),
		Blocks: fromBlocks(start.Blocks()),
		Goal:   fromBlocks(goal.Blocks()),
	}
}

// Marshal encodes f as YAML.
func (f *File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

// Save writes f to path as YAML.
func (f *File) Save(path string) error {
	data, err := f.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode puzzle: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write puzzle file: %w", err)
	}
	return nil
}

func toBlocks(entries []Block) ([]*block.Block, error) {
	out := make([]*block.Block, 0, len(entries))
	for _, e := range entries {
		b, err := block.New(e.ID, e.Height, e.Width, e.Row, e.Col)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func fromBlocks(blocks []*block.Block) []Block {
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		out[i] = Block{
			ID:     b.ID(),
			Height: b.Size().Row,
			Width:  b.Size().Col,
			Row:    b.UpperLeft().Row,
			Col:    b.UpperLeft().Col,
		}
	}
	return out
}
