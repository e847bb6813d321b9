package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rybkr/blockslide/internal/board"
	"github.com/rybkr/blockslide/internal/generator"
	"github.com/rybkr/blockslide/internal/puzzle"
)

var (
	numPuzzles int
	genPreset  string
	genFrom    string
	genSteps   int
	genSeed    int64
	outputFile string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate sliding-block puzzles",
		Long: `Generate puzzles by scrambling a start board with random legal moves.
Every generated puzzle is solvable because every move can be undone.

Examples:
  blockslide gen --preset klotski --steps 40
  blockslide gen -n 5 --steps 100 -o puzzles.yaml
  blockslide gen --from puzzle.yaml --seed 7`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&genPreset, "preset", "p", "klotski", "Preset to scramble")
	genCmd.Flags().StringVar(&genFrom, "from", "", "Puzzle file to scramble instead of a preset")
	genCmd.Flags().IntVarP(&genSteps, "steps", "s", generator.DefaultSteps, fmt.Sprintf("Random moves per puzzle (%d-%d)", generator.MinSteps, generator.MaxSteps))
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for reproducible puzzles (0 = random)")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (e.g., puzzle.yaml); stdout if empty")

	rootCmd.AddCommand(genCmd)
}

// outputName returns the file for the i-th of n puzzles.
// With several puzzles an index is inserted before the extension.
func outputName(base string, i, n int) string {
	if filepath.Ext(base) == "" {
		base += ".yaml"
	}
	if n == 1 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(base, ext), i+1, ext)
}

func runGen(cmd *cobra.Command, args []string) error {
	if numPuzzles < 1 {
		return fmt.Errorf("number of puzzles must be at least 1, got %d", numPuzzles)
	}
	if genSteps < generator.MinSteps || genSteps > generator.MaxSteps {
		return fmt.Errorf("%w: got %d", generator.ErrInvalidSteps, genSteps)
	}

	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr())
	opts := []board.Option{board.WithLogger(logger)}

	name := genPreset
	var start, goal *board.Board
	var err error
	if genFrom != "" {
		f, loadErr := puzzle.Load(genFrom)
		if loadErr != nil {
			return loadErr
		}
		start, goal, err = f.Boards(opts...)
		name = strings.TrimSuffix(filepath.Base(genFrom), filepath.Ext(genFrom))
	} else {
		start, goal, err = board.Preset(genPreset, opts...)
	}
	if err != nil {
		return err
	}

	genOpts := generator.DefaultOptions(genSteps)
	genOpts.Seed = genSeed
	genOpts.Logger = logger
	gen := generator.New(genOpts)

	for i := range numPuzzles {
		scrambled, err := gen.Generate(start, goal)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		docName := fmt.Sprintf("%s-%d", name, i+1)
		if scrambled.IsSolved(goal) {
			warning(cmd.ErrOrStderr(), "%s is already solved; raise --steps to scramble it", docName)
		}
		doc := puzzle.FromBoards(docName, scrambled, goal)

		if outputFile == "" {
			data, err := doc.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "---\n%s", data)
			continue
		}

		path := outputName(outputFile, i, numPuzzles)
		if err := doc.Save(path); err != nil {
			return err
		}
		success(out, "wrote %s (%d steps from %s)", path, genSteps, name)
	}
	return nil
}
