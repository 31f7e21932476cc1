package mclp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mclp"
)

// Greedy on the micro-instance with seed 42 returns a budget-feasible K
// whose recomputed objective equals the returned objective.
func TestGreedy_MicroInstance_FeasibleAndConsistent(t *testing.T) {
	inst := microInstance(t)
	opts := mclp.DefaultOptions()

	result, err := mclp.Greedy(inst, opts, 42)
	require.NoError(t, err)
	require.LessOrEqual(t, result.BudgetUsed, inst.Budget())

	s := mclp.NewSolutionState(inst, true)
	positions, perr := inst.IDsToPositions(result.Facilities)
	require.NoError(t, perr)
	require.NoError(t, s.LoadK(positions))
	require.InDelta(t, result.Objective, s.Objective(), 1e-4)
}

func TestGreedy_Deterministic(t *testing.T) {
	inst := microInstance(t)
	opts := mclp.DefaultOptions()

	r1, err := mclp.Greedy(inst, opts, 42)
	require.NoError(t, err)
	r2, err := mclp.Greedy(inst, opts, 42)
	require.NoError(t, err)

	require.Equal(t, r1.Facilities, r2.Facilities)
	require.Equal(t, r1.Objective, r2.Objective)
}

func TestGreedy_PopulatesAlgorithmTag(t *testing.T) {
	inst := microInstance(t)
	result, err := mclp.Greedy(inst, mclp.DefaultOptions(), 1)
	require.NoError(t, err)
	require.Equal(t, mclp.AlgoGreedy, result.Algorithm)
	require.Equal(t, 0, result.NumIterations)
}
