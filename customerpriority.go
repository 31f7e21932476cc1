package mclp

import "sort"

// CustomerPriority processes customers in decreasing order of demand (ties
// by ascending identifier); for each customer still uncovered, the cheapest
// budget-feasible unopened facility covering it is opened (ties by ascending
// identifier). Serves as a customer-centric seed structurally distinct from
// Greedy's facility-centric one.
func CustomerPriority(inst *Instance, opts Options, seed int64) (Result, error) {
	start := now()
	s := NewSolutionState(inst, opts.StrictMode)
	movesApplied, err := runCustomerPriority(inst, s)
	if err != nil {
		return Result{}, err
	}
	return buildResult(inst, s, AlgoCustomerPriority, seed, movesApplied, 0, start, opts.InstanceName), nil
}

// runCustomerPriority applies the Customer-Priority construction rule
// directly to s, returning the number of opens applied.
func runCustomerPriority(inst *Instance, s *SolutionState) (int, error) {
	order := customerPriorityOrder(inst)
	movesApplied := 0

	for _, cPos := range order {
		if s.CoveredCount(cPos) > 0 {
			continue
		}
		bestPos := -1
		var bestCost float64
		for _, fPos := range inst.CoversOf(cPos) {
			if s.Open(fPos) {
				continue
			}
			cost := inst.Cost(fPos)
			if s.BudgetUsed()+cost > inst.Budget()+driftEpsilon {
				continue
			}
			if bestPos == -1 || cost < bestCost ||
				(cost == bestCost && inst.FacilityID(fPos) < inst.FacilityID(bestPos)) {
				bestPos, bestCost = fPos, cost
			}
		}
		if bestPos == -1 {
			// No budget-feasible facility remains to cover this customer;
			// it stays uncovered rather than raising an error.
			continue
		}
		if err := ApplyOpen(inst, s, bestPos); err != nil {
			return movesApplied, err
		}
		movesApplied++
	}
	return movesApplied, nil
}

// customerPriorityOrder returns customer positions sorted by descending
// demand, ties broken by ascending original identifier.
func customerPriorityOrder(inst *Instance) []int {
	order := make([]int, inst.NumCustomers())
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := order[a], order[b]
		da, db := inst.Demand(pa), inst.Demand(pb)
		if da != db {
			return da > db
		}
		return inst.CustomerID(pa) < inst.CustomerID(pb)
	})
	return order
}
