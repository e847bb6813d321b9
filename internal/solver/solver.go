// Package solver implements a best-first search over sliding-block boards.
package solver

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rybkr/blockslide/internal/board"
	"github.com/rybkr/blockslide/internal/geom"
)

var (
	ErrNoSolution    = errors.New("puzzle has no solution")
	ErrInvalidPuzzle = errors.New("start and goal boards do not match")
	ErrTimeout       = errors.New("solver timeout exceeded")
	ErrExpandLimit   = errors.New("solver expansion limit exceeded")
)

// progressEvery is how many expansions pass between debug progress logs.
const progressEvery = 10000

// Move is one step of a solution.
type Move struct {
	BlockID   int
	From      geom.Coord
	To        geom.Coord
	Direction geom.Direction
}

func (m Move) String() string {
	return fmt.Sprintf("block %d %s %v -> %v", m.BlockID, m.Direction, m.From, m.To)
}

// Result describes a successful search.
type Result struct {
	RunID     string
	Moves     []Move
	Path      []*board.Board // root to solved board, len(Moves)+1 entries
	Expanded  int
	Generated int
	Duration  time.Duration
}

// Solver searches for a sequence of moves from a start board to a goal.
type Solver struct {
	start   *board.Board
	goal    *board.Board
	options *Options
	logger  *slog.Logger
}

// New creates a solver. The goal is fixed for the lifetime of the solver
// and is only read, so several solvers may share one goal board.
func New(start, goal *board.Board, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Solver{
		start:   start,
		goal:    goal,
		options: options,
		logger:  logger,
	}
}

// Solve runs the search. Boards are expanded in order of heuristic cost
// against the goal; each distinct configuration is expanded at most once.
func (s *Solver) Solve(ctx context.Context) (*Result, error) {
	if s.start == nil || s.goal == nil ||
		s.start.Rows() != s.goal.Rows() || s.start.Cols() != s.goal.Cols() {
		return nil, ErrInvalidPuzzle
	}

	runID := uuid.NewString()
	logger := s.logger.With("run_id", runID)

	ctx, cancel := s.makeContext(ctx)
	defer cancel()

	began := time.Now()
	expanded, generated := 0, 0

	root, err := s.start.Clone()
	if err != nil {
		s.options.Metrics.record(outcomeError, 0, 0, 0)
		return nil, fmt.Errorf("clone start board: %w", err)
	}
	root.ResetCost()
	root.ComputeCost(s.goal)
	logger.Info("solve started", "board", root.String(), "cost", root.Priority())

	open := &frontier{}
	heap.Push(open, &node{board: root})
	visited := newVisitedSet()
	visited.add(root)

	for open.Len() > 0 {
		select {
		case <-ctx.Done():
			s.options.Metrics.record(outcomeTimeout, expanded, generated, 0)
			logger.Warn("solve interrupted", "expanded", expanded, "err", ctx.Err())
			return nil, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
		default:
		}

		current := heap.Pop(open).(*node)
		if current.board.IsSolved(s.goal) {
			path := current.board.Path()
			res := &Result{
				RunID:     runID,
				Moves:     movesAlong(path),
				Path:      path,
				Expanded:  expanded,
				Generated: generated,
				Duration:  time.Since(began),
			}
			s.options.Metrics.record(outcomeSolved, expanded, generated, len(res.Moves))
			logger.Info("solve finished",
				"moves", len(res.Moves), "expanded", expanded, "generated", generated,
				"duration", res.Duration)
			return res, nil
		}

		expanded++
		if s.options.MaxExpand > 0 && expanded > s.options.MaxExpand {
			s.options.Metrics.record(outcomeLimit, expanded, generated, 0)
			return nil, fmt.Errorf("%w: %d boards", ErrExpandLimit, s.options.MaxExpand)
		}
		if expanded%progressEvery == 0 {
			logger.Debug("solve progress",
				"expanded", expanded, "frontier", open.Len(), "visited", visited.Len(),
				"best_cost", current.board.Priority())
		}

		children, err := current.board.Successors()
		if err != nil {
			s.options.Metrics.record(outcomeError, expanded, generated, 0)
			return nil, fmt.Errorf("expand %s: %w", current.board, err)
		}
		for _, child := range children {
			child.ComputeCost(s.goal)
			if !visited.add(child) {
				continue
			}
			generated++
			heap.Push(open, &node{board: child, depth: current.depth + 1, seq: generated})
		}
	}

	s.options.Metrics.record(outcomeNoSolution, expanded, generated, 0)
	logger.Info("solve exhausted", "expanded", expanded, "generated", generated)
	return nil, ErrNoSolution
}

// makeContext applies the configured timeout, if any, to ctx.
func (s *Solver) makeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.options.Timeout > 0 {
		return context.WithTimeout(ctx, s.options.Timeout)
	}
	return context.WithCancel(ctx)
}

// movesAlong reads the provenance of each board after the root.
func movesAlong(path []*board.Board) []Move {
	moves := make([]Move, 0, max(len(path)-1, 0))
	for _, b := range path[1:] {
		prov, ok := b.Provenance()
		if !ok {
			continue
		}
		id := prov.Block.ID()
		from := prov.Destination
		if before, ok := prov.Parent.Block(id); ok {
			from = before.UpperLeft()
		}
		moves = append(moves, Move{
			BlockID:   id,
			From:      from,
			To:        prov.Destination,
			Direction: prov.Direction,
		})
	}
	return moves
}
