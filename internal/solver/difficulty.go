package solver

import (
	"context"

	"github.com/rybkr/blockslide/internal/board"
)

// Difficulty returns an integer measure of a puzzle's difficulty: the number
// of boards a default search expands before reaching the goal.
func Difficulty(ctx context.Context, start, goal *board.Board) (int, error) {
	res, err := New(start, goal, nil).Solve(ctx)
	if err != nil {
		return 0, err
	}
	return res.Expanded, nil
}
