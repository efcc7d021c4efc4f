// Package metrics records solve outcomes as Prometheus series.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridpath/solver"
)

// Solver holds the collectors for solve calls.
type Solver struct {
	// solveTotal counts solves by result ("ok" or a solver.Failure label)
	solveTotal *prometheus.CounterVec
	// solveDuration tracks solve latency
	solveDuration prometheus.Histogram
	// pathLength tracks cells per successful path
	pathLength prometheus.Histogram
	// expanded tracks cells dequeued per successful search
	expanded prometheus.Histogram
}

// NewSolver creates the collectors and registers them on reg.
func NewSolver(reg prometheus.Registerer) (*Solver, error) {
	m := &Solver{
		solveTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_solve_total",
			Help: "Total solves by result",
		}, []string{"result"}),
		solveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_solve_duration_seconds",
			Help:    "Solve duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
		}),
		pathLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_path_length",
			Help:    "Cells per returned path",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_expanded_cells",
			Help:    "Cells dequeued per successful search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),
	}
	for _, c := range []prometheus.Collector{m.solveTotal, m.solveDuration, m.pathLength, m.expanded} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records one solve that started at begin.
func (m *Solver) Observe(begin time.Time, res *solver.Result, err error) {
	m.solveDuration.Observe(time.Since(begin).Seconds())
	if err != nil {
		m.solveTotal.WithLabelValues(solver.Reason(err).String()).Inc()
		return
	}
	m.solveTotal.WithLabelValues("ok").Inc()
	m.pathLength.Observe(float64(res.Len()))
	m.expanded.Observe(float64(res.Expanded))
}
