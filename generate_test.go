package mclp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mclp"
)

func TestGenerateRandomInstance_ProducesValidInstance(t *testing.T) {
	inst, err := mclp.GenerateRandomInstance(15, 40, 0.2, mclp.WithGenSeed(1))
	require.NoError(t, err)
	require.Equal(t, 15, inst.NumFacilities())
	require.Equal(t, 40, inst.NumCustomers())
	require.Greater(t, inst.Budget(), 0.0)
}

func TestGenerateRandomInstance_Deterministic(t *testing.T) {
	inst1, err := mclp.GenerateRandomInstance(8, 20, 0.3, mclp.WithGenSeed(9))
	require.NoError(t, err)
	inst2, err := mclp.GenerateRandomInstance(8, 20, 0.3, mclp.WithGenSeed(9))
	require.NoError(t, err)

	require.Equal(t, inst1.Budget(), inst2.Budget())
	require.Equal(t, inst1.TotalDemand(), inst2.TotalDemand())
	for i := 0; i < inst1.NumFacilities(); i++ {
		require.Equal(t, inst1.Cost(i), inst2.Cost(i))
	}
}

func TestGenerateRandomInstance_RejectsBadParameters(t *testing.T) {
	_, err := mclp.GenerateRandomInstance(0, 10, 0.3)
	require.ErrorIs(t, err, mclp.ErrBadParameter)

	_, err = mclp.GenerateRandomInstance(10, 10, 1.5)
	require.ErrorIs(t, err, mclp.ErrBadParameter)
}

func TestGenerateRandomInstance_CostAndDemandRangesApplied(t *testing.T) {
	inst, err := mclp.GenerateRandomInstance(10, 15, 0.4,
		mclp.WithGenSeed(2),
		mclp.WithCostRange(5, 6),
		mclp.WithDemandRange(100, 101),
	)
	require.NoError(t, err)
	for i := 0; i < inst.NumFacilities(); i++ {
		require.GreaterOrEqual(t, inst.Cost(i), 5.0)
		require.LessOrEqual(t, inst.Cost(i), 6.0)
	}
	for j := 0; j < inst.NumCustomers(); j++ {
		require.GreaterOrEqual(t, inst.Demand(j), 100.0)
		require.LessOrEqual(t, inst.Demand(j), 101.0)
	}
}
