package mclp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mclp"
)

// Loading the micro-instance yields 4 facilities, 8 customers, budget 5.0.
func TestInstance_MicroInstanceShape(t *testing.T) {
	inst := microInstance(t)
	require.Equal(t, 4, inst.NumFacilities())
	require.Equal(t, 8, inst.NumCustomers())
	require.Equal(t, 5.0, inst.Budget())
}

// Budget feasibility of a given open-set is checked purely via summed costs.
func TestInstance_BudgetFeasibility(t *testing.T) {
	inst := microInstance(t)

	feasible := inst.Cost(0) + inst.Cost(3)
	require.LessOrEqual(t, feasible, inst.Budget())

	infeasible := inst.Cost(0) + inst.Cost(1) + inst.Cost(2)
	require.Greater(t, infeasible, inst.Budget())
}

func TestNewInstance_RejectsEmptyFacilities(t *testing.T) {
	_, err := mclp.NewInstance(nil, nil, []int{0}, []float64{1}, []mclp.CoverageEdge{{FacilityID: 0, CustomerID: 0}}, 1)
	require.ErrorIs(t, err, mclp.ErrNoFacilities)
}

func TestNewInstance_RejectsEmptyCustomers(t *testing.T) {
	_, err := mclp.NewInstance([]int{0}, []float64{1}, nil, nil, nil, 1)
	require.ErrorIs(t, err, mclp.ErrNoCustomers)
}

func TestNewInstance_RejectsDuplicateFacilityID(t *testing.T) {
	_, err := mclp.NewInstance(
		[]int{0, 0}, []float64{1, 1},
		[]int{0}, []float64{1},
		[]mclp.CoverageEdge{{FacilityID: 0, CustomerID: 0}},
		5,
	)
	require.ErrorIs(t, err, mclp.ErrDuplicateFacilityID)
}

func TestNewInstance_RejectsUncoveredCustomer(t *testing.T) {
	_, err := mclp.NewInstance(
		[]int{0}, []float64{1},
		[]int{0, 1}, []float64{1, 1},
		[]mclp.CoverageEdge{{FacilityID: 0, CustomerID: 0}},
		5,
	)
	require.ErrorIs(t, err, mclp.ErrUncoveredCustomer)
}

func TestNewInstance_RejectsUnknownFacilityInCoverage(t *testing.T) {
	_, err := mclp.NewInstance(
		[]int{0}, []float64{1},
		[]int{0}, []float64{1},
		[]mclp.CoverageEdge{{FacilityID: 99, CustomerID: 0}},
		5,
	)
	require.True(t, errors.Is(err, mclp.ErrUnknownFacilityID))
}

func TestNewInstance_RejectsBudgetTooSmall(t *testing.T) {
	_, err := mclp.NewInstance(
		[]int{0}, []float64{10},
		[]int{0}, []float64{1},
		[]mclp.CoverageEdge{{FacilityID: 0, CustomerID: 0}},
		1,
	)
	require.ErrorIs(t, err, mclp.ErrBudgetTooSmall)
}

func TestNewInstance_RejectsNegativeCost(t *testing.T) {
	_, err := mclp.NewInstance(
		[]int{0}, []float64{-1},
		[]int{0}, []float64{1},
		[]mclp.CoverageEdge{{FacilityID: 0, CustomerID: 0}},
		5,
	)
	require.ErrorIs(t, err, mclp.ErrNegativeCost)
}

func TestInstance_IDPositionRoundTrip(t *testing.T) {
	inst := microInstance(t)
	pos, err := inst.FacilityPosition(3)
	require.NoError(t, err)
	require.Equal(t, 3, inst.FacilityID(pos))

	_, err = inst.FacilityPosition(42)
	require.ErrorIs(t, err, mclp.ErrUnknownFacilityID)
}
