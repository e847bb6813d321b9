package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rybkr/blockslide/internal/board"
	"github.com/rybkr/blockslide/internal/puzzle"
	"github.com/rybkr/blockslide/internal/solver"
)

var (
	solvePreset    string
	solveTimeout   time.Duration
	solveMaxExpand int
	solveJobs      int
	solveMetrics   bool
	solveShowPath  bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [FILE...]",
		Short: "Solve sliding-block puzzles",
		Long: `Solve one or more sliding-block puzzles with a best-first search.

Each file is solved independently and concurrently against its own goal.

Examples:
  blockslide solve puzzle.yaml
  blockslide solve --preset corner
  blockslide solve -j 4 --timeout 1m puzzles/*.yaml`,
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solvePreset, "preset", "p", "", "Solve a built-in preset instead of files")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 30*time.Second, "Search timeout per puzzle")
	solveCmd.Flags().IntVar(&solveMaxExpand, "max-expand", 0, "Maximum boards expanded per puzzle (0 = no limit)")
	solveCmd.Flags().IntVarP(&solveJobs, "jobs", "j", runtime.NumCPU(), "Puzzles solved in parallel")
	solveCmd.Flags().BoolVar(&solveMetrics, "metrics", false, "Print solver metrics after solving")
	solveCmd.Flags().BoolVar(&solveShowPath, "show", false, "Print the board after every move")

	rootCmd.AddCommand(solveCmd)
}

// solveJob is one puzzle to solve together with its outcome.
type solveJob struct {
	name   string
	start  *board.Board
	goal   *board.Board
	result *solver.Result
	err    error
}

// loadJobs builds the puzzles named on the command line.
func loadJobs(args []string, logger *slog.Logger) ([]*solveJob, error) {
	opts := []board.Option{board.WithLogger(logger)}

	if solvePreset != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("--preset cannot be combined with puzzle files")
		}
		start, goal, err := board.Preset(solvePreset, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(board.PresetNames(), ", "))
		}
		return []*solveJob{{name: solvePreset, start: start, goal: goal}}, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("no puzzles given: pass puzzle files or --preset")
	}
	jobs := make([]*solveJob, 0, len(args))
	for _, path := range args {
		f, err := puzzle.Load(path)
		if err != nil {
			return nil, err
		}
		start, goal, err := f.Boards(opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		jobs = append(jobs, &solveJob{name: path, start: start, goal: goal})
	}
	return jobs, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr())

	jobs, err := loadJobs(args, logger)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics := solver.NewMetrics(reg)

	// Failures are recorded per job so one unsolvable puzzle does not stop the batch.
	var g errgroup.Group
	g.SetLimit(max(solveJobs, 1))
	for _, job := range jobs {
		g.Go(func() error {
			s := solver.New(job.start, job.goal, &solver.Options{
				MaxExpand: solveMaxExpand,
				Timeout:   solveTimeout,
				Logger:    logger.With("puzzle", job.name),
				Metrics:   metrics,
			})
			job.result, job.err = s.Solve(cmd.Context())
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, job := range jobs {
		if job.err != nil {
			failed++
			failure(out, job.name+": not solved", job.err.Error())
			continue
		}
		printSolution(out, job)
	}

	if solveMetrics {
		if err := printMetrics(out, reg); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d puzzles not solved", failed, len(jobs))
	}
	return nil
}

func printSolution(w io.Writer, job *solveJob) {
	res := job.result
	success(w, "%s: solved in %d moves (%d boards expanded, %s)",
		job.name, len(res.Moves), res.Expanded, res.Duration.Round(time.Millisecond))

	if solveShowPath {
		fmt.Fprint(w, indent(res.Path[0].Format(), "    "))
	}
	for i, m := range res.Moves {
		fmt.Fprintf(w, "  %3d. %s\n", i+1, m)
		if solveShowPath {
			fmt.Fprint(w, indent(res.Path[i+1].Format(), "    "))
		}
	}
	if !solveShowPath {
		heading(w, "  final board:")
		fmt.Fprint(w, indent(res.Path[len(res.Path)-1].Format(), "    "))
	}
}

// printMetrics writes every gathered sample as "name{labels} value".
func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	heading(w, "metrics:")
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}

			switch {
			case m.GetCounter() != nil:
				lines = append(lines, fmt.Sprintf("  %s %g", name, m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				lines = append(lines, fmt.Sprintf("  %s count=%d sum=%g", name, h.GetSampleCount(), h.GetSampleSum()))
			}
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
