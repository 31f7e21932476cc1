package mclp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mclp"
)

// Tabu Search (tenure 10, maxIter 100, seed 42) returns a budget-feasible K;
// the recomputed objective equals the returned objective; the run is
// bit-identical across two invocations.
func TestTabuSearch_MicroInstance_FeasibleConsistentDeterministic(t *testing.T) {
	inst := microInstance(t)
	opts := mclp.NewOptions(mclp.WithTenure(10), mclp.WithMaxIterations(100))

	r1, _, err := mclp.TabuSearch(inst, opts, 42)
	require.NoError(t, err)
	require.LessOrEqual(t, r1.BudgetUsed, inst.Budget())

	s := mclp.NewSolutionState(inst, true)
	positions, perr := inst.IDsToPositions(r1.Facilities)
	require.NoError(t, perr)
	require.NoError(t, s.LoadK(positions))
	require.InDelta(t, r1.Objective, s.Objective(), 1e-4)

	r2, _, err := mclp.TabuSearch(inst, opts, 42)
	require.NoError(t, err)
	require.Equal(t, r1.Facilities, r2.Facilities)
	require.Equal(t, r1.Objective, r2.Objective)
	require.Equal(t, r1.NumIterations, r2.NumIterations)
}

// Tabu-search dominance over multi-start (weak): on identical parameters and
// initial seed, Tabu Search returns objective >= Multi-Start's objective - epsilon.
func TestTabuSearch_DominatesMultiStart_Weak(t *testing.T) {
	inst := microInstance(t)
	opts := mclp.NewOptions(mclp.WithMaxIterations(100))

	multi, _, err := mclp.MultiStartLocalSearch(inst, opts, 42)
	require.NoError(t, err)

	tabu, _, err := mclp.TabuSearch(inst, opts, 42)
	require.NoError(t, err)

	require.GreaterOrEqual(t, tabu.Objective, multi.Objective-1e-6)
}

// Tabu-list activity: over a run of at least 50 iterations with tenure >= 5,
// the average tabu-list size is strictly positive.
func TestTabuSearch_TabuListActivity(t *testing.T) {
	inst := microInstance(t)
	opts := mclp.NewOptions(
		mclp.WithTenure(5),
		mclp.WithMaxIterations(60),
		mclp.WithStagnationLimit(1000),
		mclp.WithIntensificationFreq(1000),
	)

	_, records, err := mclp.TabuSearch(inst, opts, 3)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(records), 50)

	total := 0
	for _, r := range records {
		total += r.TabuListSize
	}
	avg := float64(total) / float64(len(records))
	require.Greater(t, avg, 0.0)
}

func TestTabuSearch_RespectsMaxRestarts(t *testing.T) {
	inst := microInstance(t)
	opts := mclp.NewOptions(
		mclp.WithMaxIterations(500),
		mclp.WithStagnationLimit(2),
		mclp.WithMaxRestarts(1),
	)
	result, records, err := mclp.TabuSearch(inst, opts, 9)
	require.NoError(t, err)
	require.NotNil(t, records)
	require.LessOrEqual(t, result.BudgetUsed, inst.Budget())

	// The run stops on the shake that pushes the restart count past MaxRestarts.
	shakes := 0
	for _, r := range records {
		if r.Move == "shake" {
			shakes++
		}
	}
	require.LessOrEqual(t, shakes, opts.MaxRestarts+1)
}
