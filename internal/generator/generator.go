// Package generator creates sliding-block puzzles by random walks over legal moves.
package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/rybkr/blockslide/internal/board"
)

const (
	MinSteps     = 0
	MaxSteps     = 100000
	DefaultSteps = 30
)

var (
	ErrInvalidSteps     = errors.New("steps must be between 0 and 100000")
	ErrStuck            = errors.New("board has no legal moves")
	ErrGenerationFailed = errors.New("failed to generate an unsolved puzzle")
)

// Generator scrambles boards.
type Generator struct {
	options *Options
	rng     *rand.Rand
	logger  *slog.Logger
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions(DefaultSteps)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
		logger:  logger,
	}
}

// Scramble applies Steps uniformly chosen legal moves to b and returns the
// resulting board as a new root: no provenance and no cached cost.
// Every move is reversible, so the result can always be walked back to b.
func (g *Generator) Scramble(b *board.Board) (*board.Board, error) {
	if g.options.Steps < MinSteps || g.options.Steps > MaxSteps {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, g.options.Steps)
	}

	cur := b
	for step := range g.options.Steps {
		next, err := cur.Successors()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", step, err)
		}
		if len(next) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrStuck, cur)
		}
		cur = next[g.rng.Intn(len(next))]
	}

	root, err := cur.Clone()
	if err != nil {
		return nil, err
	}
	root.ResetCost()
	return root, nil
}

// Generate scrambles start until the result does not already satisfy goal.
// A zero-step walk returns start unchanged even if it is solved.
func (g *Generator) Generate(start, goal *board.Board) (*board.Board, error) {
	attempts := max(g.options.Attempts, 1)
	for attempt := range attempts {
		puzzle, err := g.Scramble(start)
		if err != nil {
			return nil, err
		}
		if g.options.Steps == 0 || !puzzle.IsSolved(goal) {
			return puzzle, nil
		}
		g.logger.Debug("scrambled board already solved, retrying", "attempt", attempt+1)
	}
	return nil, ErrGenerationFailed
}

// GenerateWithSteps is a convenience function to scramble a puzzle with a specific walk length.
func GenerateWithSteps(start, goal *board.Board, steps int) (*board.Board, error) {
	gen := New(DefaultOptions(steps))
	return gen.Generate(start, goal)
}
