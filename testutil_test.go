package mclp_test

import "github.com/katalvlaran/mclp"

// microInstance builds the four-facility, eight-customer reference instance
// used across the test suite: I={0,1,2,3}, J={0..7}, costs (2.0,3.0,2.5,1.5),
// B=5.0, with coverage sets chosen so that opening {1,3} covers exactly
// {0,1,3,4,5,7}.
func microInstance(t testingT) *mclp.Instance {
	t.Helper()

	facilityIDs := []int{0, 1, 2, 3}
	costs := []float64{2.0, 3.0, 2.5, 1.5}
	customerIDs := []int{0, 1, 2, 3, 4, 5, 6, 7}
	demands := []float64{10, 20, 15, 25, 30, 12, 18, 22}

	coverage := []mclp.CoverageEdge{
		{FacilityID: 0, CustomerID: 0},
		{FacilityID: 0, CustomerID: 2},
		{FacilityID: 0, CustomerID: 6},
		{FacilityID: 1, CustomerID: 0},
		{FacilityID: 1, CustomerID: 1},
		{FacilityID: 1, CustomerID: 4},
		{FacilityID: 1, CustomerID: 5},
		{FacilityID: 2, CustomerID: 2},
		{FacilityID: 2, CustomerID: 3},
		{FacilityID: 2, CustomerID: 6},
		{FacilityID: 3, CustomerID: 1},
		{FacilityID: 3, CustomerID: 3},
		{FacilityID: 3, CustomerID: 4},
		{FacilityID: 3, CustomerID: 5},
		{FacilityID: 3, CustomerID: 7},
	}

	inst, err := mclp.NewInstance(facilityIDs, costs, customerIDs, demands, coverage, 5.0)
	if err != nil {
		t.Fatalf("microInstance: unexpected error: %v", err)
	}
	return inst
}

// microInstanceDemandSum returns the summed demand of customers
// {0,1,3,4,5,7}, the reference objective for K={1,3}.
func microInstanceDemandSum() float64 {
	return 10 + 20 + 25 + 30 + 12 + 22
}

// testingT is the subset of *testing.T this helper needs, so it can be
// called from both *testing.T and *testing.B contexts.
type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}
