package mclp

import "sort"

// Instance is the immutable MCLP-B problem data plus its two derived
// coverage indices. All slices are dense and position-indexed: a facility's
// "position" is its index into facilityID/cost/coveredBy, a customer's
// position is its index into customerID/demand/coversOf. Positions are
// assigned in the order NewInstance receives them and never change.
type Instance struct {
	facilityID []int
	customerID []int

	cost   []float64
	demand []float64

	// coveredBy[i] lists the positions of customers facility i can cover.
	coveredBy [][]int
	// coversOf[j] lists the positions of facilities that can cover customer j.
	coversOf [][]int

	budget      float64
	totalDemand float64

	facilityPos map[int]int
	customerPos map[int]int

	// idOrder lists facility positions sorted by ascending original
	// identifier, precomputed once so neighborhood enumeration and the
	// Greedy builder can iterate facilities in identifier order without resorting
	// on every call (the package's bit-identical-reruns guarantee).
	idOrder []int
}

// CoverageEdge is one (facility id, customer id) pair of the coverage
// relation, the input shape NewInstance expects for its coverage argument.
type CoverageEdge struct {
	FacilityID int
	CustomerID int
}

// NewInstance validates and builds an Instance from plain data. facilityIDs
// and customerIDs must each be unique; costs/demands are parallel to them by
// index. coverage lists every (facility, customer) pair the relation
// contains; it need not be sorted. NewInstance returns the first invariant
// violation it finds, per the load-time contract: this is the only hard
// failure boundary in the package.
func NewInstance(facilityIDs []int, costs []float64, customerIDs []int, demands []float64, coverage []CoverageEdge, budget float64) (*Instance, error) {
	if len(facilityIDs) == 0 {
		return nil, ErrNoFacilities
	}
	if len(customerIDs) == 0 {
		return nil, ErrNoCustomers
	}
	if len(facilityIDs) != len(costs) {
		return nil, ErrBadParameter
	}
	if len(customerIDs) != len(demands) {
		return nil, ErrBadParameter
	}
	if budget < 0 {
		return nil, ErrNegativeBudget
	}

	facilityPos := make(map[int]int, len(facilityIDs))
	for pos, id := range facilityIDs {
		if _, dup := facilityPos[id]; dup {
			return nil, ErrDuplicateFacilityID
		}
		facilityPos[id] = pos
	}
	customerPos := make(map[int]int, len(customerIDs))
	for pos, id := range customerIDs {
		if _, dup := customerPos[id]; dup {
			return nil, ErrDuplicateCustomerID
		}
		customerPos[id] = pos
	}

	for _, c := range costs {
		if c < 0 {
			return nil, ErrNegativeCost
		}
	}
	for _, d := range demands {
		if d < 0 {
			return nil, ErrNegativeDemand
		}
	}

	coveredBy := make([][]int, len(facilityIDs))
	coversOf := make([][]int, len(customerIDs))
	edgeCount := 0
	for _, e := range coverage {
		fPos, okF := facilityPos[e.FacilityID]
		if !okF {
			return nil, ErrUnknownFacilityID
		}
		cPos, okC := customerPos[e.CustomerID]
		if !okC {
			return nil, ErrUnknownCustomerID
		}
		coveredBy[fPos] = append(coveredBy[fPos], cPos)
		coversOf[cPos] = append(coversOf[cPos], fPos)
		edgeCount++
	}
	// Σ|coversOf[j]| and Σ|coveredBy[i]| are built from the same edge list by
	// construction, so this check only catches a future refactor that lets
	// them diverge; it is cheap and keeps the invariant explicit.
	coveredByTotal, coversOfTotal := 0, 0
	for _, s := range coveredBy {
		coveredByTotal += len(s)
	}
	for _, s := range coversOf {
		coversOfTotal += len(s)
	}
	if coveredByTotal != edgeCount || coversOfTotal != edgeCount {
		return nil, ErrCoverageAsymmetry
	}

	for cPos, facs := range coversOf {
		if len(facs) == 0 {
			_ = cPos
			return nil, ErrUncoveredCustomer
		}
	}

	minCost := costs[0]
	for _, c := range costs[1:] {
		if c < minCost {
			minCost = c
		}
	}
	if minCost > budget {
		return nil, ErrBudgetTooSmall
	}

	for _, s := range coveredBy {
		sort.Ints(s)
	}
	for _, s := range coversOf {
		sort.Ints(s)
	}

	total := 0.0
	for _, d := range demands {
		total += d
	}

	idOrder := make([]int, len(facilityIDs))
	for pos := range idOrder {
		idOrder[pos] = pos
	}
	sort.Slice(idOrder, func(a, b int) bool { return facilityIDs[idOrder[a]] < facilityIDs[idOrder[b]] })

	inst := &Instance{
		facilityID:  append([]int(nil), facilityIDs...),
		customerID:  append([]int(nil), customerIDs...),
		cost:        append([]float64(nil), costs...),
		demand:      append([]float64(nil), demands...),
		coveredBy:   coveredBy,
		coversOf:    coversOf,
		budget:      budget,
		totalDemand: total,
		facilityPos: facilityPos,
		customerPos: customerPos,
		idOrder:     idOrder,
	}
	return inst, nil
}

// IDOrder returns facility positions sorted by ascending original
// identifier. The caller must not mutate the returned slice.
func (inst *Instance) IDOrder() []int { return inst.idOrder }

// NumFacilities returns |I|.
func (inst *Instance) NumFacilities() int { return len(inst.facilityID) }

// NumCustomers returns |J|.
func (inst *Instance) NumCustomers() int { return len(inst.customerID) }

// Budget returns B.
func (inst *Instance) Budget() float64 { return inst.budget }

// TotalDemand returns the cached Σ demand[j].
func (inst *Instance) TotalDemand() float64 { return inst.totalDemand }

// FacilityID returns the original identifier of the facility at position pos.
func (inst *Instance) FacilityID(pos int) int { return inst.facilityID[pos] }

// CustomerID returns the original identifier of the customer at position pos.
func (inst *Instance) CustomerID(pos int) int { return inst.customerID[pos] }

// Cost returns the opening cost of the facility at position pos.
func (inst *Instance) Cost(pos int) float64 { return inst.cost[pos] }

// Demand returns the demand of the customer at position pos.
func (inst *Instance) Demand(pos int) float64 { return inst.demand[pos] }

// CoveredBy returns the (sorted) customer positions facility pos can cover.
// The caller must not mutate the returned slice.
func (inst *Instance) CoveredBy(pos int) []int { return inst.coveredBy[pos] }

// CoversOf returns the (sorted) facility positions that can cover customer pos.
// The caller must not mutate the returned slice.
func (inst *Instance) CoversOf(pos int) []int { return inst.coversOf[pos] }

// FacilityPosition translates an original facility identifier to its
// position, returning ErrUnknownFacilityID if id is not in the instance.
func (inst *Instance) FacilityPosition(id int) (int, error) {
	pos, ok := inst.facilityPos[id]
	if !ok {
		return 0, ErrUnknownFacilityID
	}
	return pos, nil
}

// CustomerPosition translates an original customer identifier to its
// position, returning ErrUnknownCustomerID if id is not in the instance.
func (inst *Instance) CustomerPosition(id int) (int, error) {
	pos, ok := inst.customerPos[id]
	if !ok {
		return 0, ErrUnknownCustomerID
	}
	return pos, nil
}

// PositionsToIDs translates a slice of facility positions to original
// identifiers, sorted ascending by identifier (Result.Facilities' shape).
func (inst *Instance) PositionsToIDs(positions []int) []int {
	ids := make([]int, len(positions))
	for i, pos := range positions {
		ids[i] = inst.facilityID[pos]
	}
	sort.Ints(ids)
	return ids
}

// IDsToPositions translates a slice of original facility identifiers to
// positions, returning ErrUnknownFacilityID on the first unknown id.
func (inst *Instance) IDsToPositions(ids []int) ([]int, error) {
	positions := make([]int, len(ids))
	for i, id := range ids {
		pos, ok := inst.facilityPos[id]
		if !ok {
			return nil, ErrUnknownFacilityID
		}
		positions[i] = pos
	}
	return positions, nil
}
