package mclp

import "math"

// Greedy repeatedly opens the currently-unopened, budget-feasible facility
// with the maximum ratio (incremental covered demand)/cost, breaking ties
// toward the lower facility identifier. Stops when every remaining
// candidate is either infeasible or contributes zero new demand.
func Greedy(inst *Instance, opts Options, seed int64) (Result, error) {
	start := now()
	s := NewSolutionState(inst, opts.StrictMode)
	movesApplied, err := runGreedy(inst, s)
	if err != nil {
		return Result{}, err
	}
	return buildResult(inst, s, AlgoGreedy, seed, movesApplied, 0, start, opts.InstanceName), nil
}

// runGreedy applies the Greedy construction rule directly to s, returning
// the number of opens applied. Shared by Greedy and every multi-start seed
// that begins from a Greedy solution.
func runGreedy(inst *Instance, s *SolutionState) (int, error) {
	movesApplied := 0
	for {
		bestPos := -1
		var bestRatio float64

		for _, pos := range inst.IDOrder() {
			if s.Open(pos) {
				continue
			}
			gain, ok := DeltaOpen(inst, s, pos)
			if !ok || gain <= 0 {
				continue
			}
			cost := inst.Cost(pos)
			var ratio float64
			if cost == 0 {
				ratio = math.Inf(1)
			} else {
				ratio = gain / cost
			}
			if bestPos == -1 || ratio > bestRatio {
				bestPos, bestRatio = pos, ratio
			}
		}
		if bestPos == -1 {
			break
		}
		if err := ApplyOpen(inst, s, bestPos); err != nil {
			return movesApplied, err
		}
		movesApplied++
	}
	return movesApplied, nil
}
