package mclp

import "math/rand"

// LocalSearch operates on the supplied initial K; each iteration enumerates
// the full neighborhood and applies the best-improving move, terminating
// when no improving move exists or opts.LSMaxMoves is reached.
// Non-degradation is structural: only strictly-improving moves
// (Delta > lsAcceptEpsilon) are ever applied, so the returned objective is
// always >= the initial one.
func LocalSearch(inst *Instance, initK []int, opts Options, seed int64) (Result, error) {
	start := now()
	s := NewSolutionState(inst, opts.StrictMode)
	if err := s.LoadK(initK); err != nil {
		return Result{}, err
	}
	moves := runLocalSearch(inst, s, opts.LSMaxMoves)
	return buildResult(inst, s, AlgoLocalSearch, seed, moves, 0, start, opts.InstanceName), nil
}

// runLocalSearch runs best-improvement local search directly on s, up to
// maxMoves applied moves, returning the number of moves applied. Shared by
// the standalone LocalSearch entry point, Multi-Start's per-start passes,
// and Tabu Search's embedded intensification call.
func runLocalSearch(inst *Instance, s *SolutionState, maxMoves int) int {
	movesApplied := 0
	for movesApplied < maxMoves {
		candidates := enumerateMoves(inst, s, nil, 0)
		bestIdx := -1
		for i, m := range candidates {
			if m.Delta <= lsAcceptEpsilon {
				continue
			}
			if bestIdx == -1 || m.Delta > candidates[bestIdx].Delta {
				bestIdx = i
			}
		}
		if bestIdx == -1 {
			break
		}
		// A local-search move is always built feasible by enumerateMoves and
		// applied against the same state it was scored on, so Apply cannot fail here.
		_ = Apply(inst, s, candidates[bestIdx])
		movesApplied++
	}
	return movesApplied
}

// MultiStartLocalSearch runs a deterministic initialization schedule: start
// 0 Greedy, start 1 Customer-Priority, the next floor((N-2)/2) starts
// perturbed-Greedy, the remainder pure-random-feasible. Each start draws its
// own RNG stream via deriveRNG(seed, streamIndex) so co-existing starts
// never correlate. Returns the best Result seen across all starts plus one
// StartRecord per start.
func MultiStartLocalSearch(inst *Instance, opts Options, seed int64) (Result, []StartRecord, error) {
	start := now()
	n := opts.MultistartCount
	if n < 2 {
		n = 2
	}
	perturbedCount := (n - 2) / 2

	records := make([]StartRecord, 0, n)
	var best *SolutionState

	for i := 0; i < n; i++ {
		rng := deriveRNG(seed, uint64(i))
		s := NewSolutionState(inst, opts.StrictMode)

		var method string
		switch {
		case i == 0:
			method = "greedy"
			if _, err := runGreedy(inst, s); err != nil {
				return Result{}, nil, err
			}
		case i == 1:
			method = "customer_priority"
			if _, err := runCustomerPriority(inst, s); err != nil {
				return Result{}, nil, err
			}
		case i < 2+perturbedCount:
			method = "perturbed_greedy"
			if err := seedPerturbedGreedy(inst, s, opts, rng); err != nil {
				return Result{}, nil, err
			}
		default:
			method = "random_feasible"
			seedRandomFeasible(inst, s, rng)
		}

		initialObjective := s.Objective()
		moves := runLocalSearch(inst, s, opts.LSMaxMoves)
		record := StartRecord{
			Method:           method,
			InitialObjective: initialObjective,
			FinalObjective:   s.Objective(),
			Moves:            moves,
		}
		records = append(records, record)

		if best == nil || s.Objective() > best.Objective() {
			best = s
		}
	}

	result := buildResult(inst, best, AlgoMultiStart, seed, totalMoves(records), n, start, opts.InstanceName)
	return result, records, nil
}

// totalMoves sums the per-start move counts into the Result's NumMoves field.
func totalMoves(records []StartRecord) int {
	total := 0
	for _, r := range records {
		total += r.Moves
	}
	return total
}

// seedPerturbedGreedy builds a Greedy solution, removes a random
// opts.PerturbationRate fraction of its open facilities (at least one, so a
// small open-set still gets perturbed instead of silently matching the
// plain Greedy start), then fills the freed budget by visiting the
// remaining closed facilities in random order and opening the first ones
// that still fit.
func seedPerturbedGreedy(inst *Instance, s *SolutionState, opts Options, rng *rand.Rand) error {
	if _, err := runGreedy(inst, s); err != nil {
		return err
	}
	open := s.K()
	shuffleIntsInPlace(open, rng)
	toRemove := int(float64(len(open)) * opts.PerturbationRate)
	if toRemove < 1 && len(open) > 0 {
		toRemove = 1
	}
	for i := 0; i < toRemove && i < len(open); i++ {
		if err := ApplyClose(inst, s, open[i]); err != nil {
			return err
		}
	}

	closed := make([]int, 0, inst.NumFacilities())
	for pos := 0; pos < inst.NumFacilities(); pos++ {
		if !s.Open(pos) {
			closed = append(closed, pos)
		}
	}
	shuffleIntsInPlace(closed, rng)
	for _, pos := range closed {
		if s.BudgetUsed()+inst.Cost(pos) > inst.Budget()+driftEpsilon {
			continue
		}
		if err := ApplyOpen(inst, s, pos); err != nil {
			return err
		}
	}
	return nil
}

// seedRandomFeasible shuffles the full facility set and greedily (by random
// order, not by ratio) adds each facility that still fits the budget.
func seedRandomFeasible(inst *Instance, s *SolutionState, rng *rand.Rand) {
	order := shuffledRange(inst.NumFacilities(), rng)
	for _, pos := range order {
		if s.BudgetUsed()+inst.Cost(pos) > inst.Budget()+driftEpsilon {
			continue
		}
		_ = ApplyOpen(inst, s, pos)
	}
}
