package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "blockslide",
	Short: "Solve and generate sliding-block puzzles",
	Long: `blockslide works with sliding-block puzzles: rectangular blocks on a grid
that move one cell at a time into empty space.

Puzzles are YAML files listing the board size, the start blocks and the goal
blocks, or one of the built-in presets.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// ExecuteContext runs the root command.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// newLogger returns the logger for a command. Only warnings are shown unless
// --verbose is set.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
