package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/metrics"
	"github.com/katalvlaran/gridpath/solver"
)

func TestSolver_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewSolver(reg)
	require.NoError(t, err)

	res, err := solver.Find(2, solver.Cell{}, solver.Cell{Row: 1, Col: 1}, make([]int, 4), 0)
	require.NoError(t, err)
	m.Observe(time.Now(), res, nil)

	_, err = solver.Find(2, solver.Cell{}, solver.Cell{Row: 1, Col: 1}, []int{0, 1, 1, 0}, 0)
	m.Observe(time.Now(), nil, err)
	m.Observe(time.Now(), nil, err)

	count, err := testutil.GatherAndCount(reg, "gridpath_solve_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per result label")

	count, err = testutil.GatherAndCount(reg, "gridpath_path_length")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewSolver_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewSolver(reg)
	require.NoError(t, err)
	_, err = metrics.NewSolver(reg)
	assert.Error(t, err)
}

func TestSolver_ObserveFailureSkipsPathHistograms(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewSolver(reg)
	require.NoError(t, err)

	_, err = solver.Find(2, solver.Cell{}, solver.Cell{Row: 1, Col: 1}, []int{0, 1, 1, 0}, 0)
	require.ErrorIs(t, err, solver.ErrUnreachable)
	m.Observe(time.Now(), nil, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	samples := map[string]uint64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			if h := metric.GetHistogram(); h != nil {
				samples[mf.GetName()] += h.GetSampleCount()
			}
		}
	}
	assert.Equal(t, uint64(1), samples["gridpath_solve_duration_seconds"])
	assert.Zero(t, samples["gridpath_expanded_cells"])
	assert.Zero(t, samples["gridpath_path_length"])
}
