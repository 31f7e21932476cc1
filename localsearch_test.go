package mclp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mclp"
)

// Non-degradation: for every initial K0 and every seed, Local Search returns
// K with objective(K) >= objective(K0).
func TestLocalSearch_NonDegradation(t *testing.T) {
	inst := microInstance(t)
	opts := mclp.DefaultOptions()

	cases := [][]int{nil, {0}, {1}, {2, 3}}
	for _, initK := range cases {
		s0 := mclp.NewSolutionState(inst, true)
		require.NoError(t, s0.LoadK(initK))
		initialObj := s0.Objective()

		result, err := mclp.LocalSearch(inst, initK, opts, 11)
		require.NoError(t, err)
		require.GreaterOrEqual(t, result.Objective, initialObj)
		require.LessOrEqual(t, result.BudgetUsed, inst.Budget())
	}
}

func TestLocalSearch_Deterministic(t *testing.T) {
	inst := microInstance(t)
	opts := mclp.DefaultOptions()

	r1, err := mclp.LocalSearch(inst, []int{0}, opts, 99)
	require.NoError(t, err)
	r2, err := mclp.LocalSearch(inst, []int{0}, opts, 99)
	require.NoError(t, err)

	require.Equal(t, r1.Facilities, r2.Facilities)
	require.Equal(t, r1.Objective, r2.Objective)
	require.Equal(t, r1.NumMoves, r2.NumMoves)
}

// From the empty open-set, Local Search on the micro-instance must reach the
// global-optimal coverage: {0,3} covering all eight customers.
func TestLocalSearch_ReachesFullCoverageFromEmpty(t *testing.T) {
	inst := microInstance(t)
	result, err := mclp.LocalSearch(inst, nil, mclp.DefaultOptions(), 3)
	require.NoError(t, err)
	require.InDelta(t, inst.TotalDemand(), result.Objective, 1e-9)
}

func TestLocalSearch_RespectsMaxMoves(t *testing.T) {
	inst := microInstance(t)
	opts := mclp.NewOptions(mclp.WithLSMaxMoves(1))
	result, err := mclp.LocalSearch(inst, nil, opts, 3)
	require.NoError(t, err)
	require.LessOrEqual(t, result.NumMoves, 1)
}
