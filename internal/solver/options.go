package solver

import (
	"log/slog"
	"time"
)

// Options configures a search run.
type Options struct {
	MaxExpand int           // Stop after expanding this many boards (0 = no limit)
	Timeout   time.Duration // Timeout limits search time (0 = only the caller's context)
	Logger    *slog.Logger  // Logger for run progress; nil means slog.Default()
	Metrics   *Metrics      // Metrics receives per-run counters; nil disables them
}

// DefaultOptions returns standard solver options.
func DefaultOptions() *Options {
	return &Options{
		MaxExpand: 0,
		Timeout:   30 * time.Second,
	}
}
