package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run outcomes used as the "outcome" label.
const (
	outcomeSolved     = "solved"
	outcomeNoSolution = "no_solution"
	outcomeTimeout    = "timeout"
	outcomeLimit      = "expand_limit"
	outcomeError      = "error"
)

// Metrics holds the prometheus collectors updated by every run.
type Metrics struct {
	runs           *prometheus.CounterVec
	expanded       prometheus.Counter
	generated      prometheus.Counter
	solutionLength prometheus.Histogram
}

// NewMetrics creates the solver collectors and registers them with reg.
// A nil reg creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "blockslide_solver_runs_total",
			Help: "Total solver runs by outcome",
		}, []string{"outcome"}),
		expanded: factory.NewCounter(prometheus.CounterOpts{
			Name: "blockslide_solver_boards_expanded_total",
			Help: "Boards popped from the frontier and expanded",
		}),
		generated: factory.NewCounter(prometheus.CounterOpts{
			Name: "blockslide_solver_boards_generated_total",
			Help: "New boards pushed onto the frontier",
		}),
		solutionLength: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "blockslide_solver_solution_moves",
			Help:    "Number of moves in found solutions",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10), // 1 to 512 moves
		}),
	}
}

func (m *Metrics) record(outcome string, expanded, generated, moves int) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(outcome).Inc()
	m.expanded.Add(float64(expanded))
	m.generated.Add(float64(generated))
	if outcome == outcomeSolved {
		m.solutionLength.Observe(float64(moves))
	}
}
