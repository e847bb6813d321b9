package generator

import (
	"log/slog"
)

// Options configures puzzle generation behavior.
type Options struct {
	Steps    int          // Number of random moves applied to the start board
	Attempts int          // Walks tried before giving up on an unsolved result
	Seed     int64        // Seed for reproducible puzzles (0 = random)
	Logger   *slog.Logger // nil means slog.Default()
}

// DefaultOptions returns standard generator options.
func DefaultOptions(steps int) *Options {
	steps = min(max(steps, MinSteps), MaxSteps)
	return &Options{
		Steps:    steps,
		Attempts: 10,
		Seed:     0,
	}
}
