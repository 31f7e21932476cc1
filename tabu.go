package mclp

import (
	"math/rand"
	"sort"
)

// TabuSearch builds a Greedy solution, applies a 1-3-facility perturbation,
// and records the result as the initial global best. Each normal iteration
// enumerates the shared neighborhood, annotates every candidate with its
// tabu status against a dense expiry-iteration vector indexed by facility
// position, restricts to the top opts.CandidateListSize by descending
// Delta, and applies the first non-tabu candidate, else the first
// aspirating tabu candidate (predicted objective strictly beats the global
// best), else the top candidate regardless. Every intensificationFreq-th
// iteration instead runs a bounded embedded Local Search and bulk-reloads
// the tabu state from its result, so the cached objective never crosses the
// intensification boundary stale. Once the stagnation counter reaches
// stagnationLimit, a shake closes 2-3 random open facilities and refills up
// to that many still-feasible closed candidates, never updating the global
// best from shake moves themselves.
func TabuSearch(inst *Instance, opts Options, seed int64) (Result, []IterationRecord, error) {
	start := now()
	s := NewSolutionState(inst, opts.StrictMode)
	rng := deriveRNG(seed, 0)

	if _, err := runGreedy(inst, s); err != nil {
		return Result{}, nil, err
	}
	if err := perturbOpenSet(inst, s, rng, 1, 3); err != nil {
		return Result{}, nil, err
	}

	tabuList := make([]int, inst.NumFacilities())
	best := s.TakeSnapshot()
	stagnation := 0
	restarts := 0
	movesApplied := 0
	records := make([]IterationRecord, 0, opts.MaxIterations)

	iteration := 0
	for iteration < opts.MaxIterations {
		iteration++

		if stagnation >= opts.StagnationLimit {
			n, err := shake(inst, s, rng, 2, 3)
			if err != nil {
				return Result{}, nil, err
			}
			movesApplied += n
			s.resync()
			restarts++
			stagnation = 0
			records = append(records, IterationRecord{
				Iteration: iteration, CurrentObj: s.Objective(), BestObj: best.Objective,
				Move: "shake", TabuListSize: tabuActiveCount(tabuList, iteration),
				Stagnation: stagnation, State: "shaking",
			})
			if restarts > opts.MaxRestarts {
				break
			}
			continue
		}

		if opts.IntensificationFreq > 0 && iteration%opts.IntensificationFreq == 0 {
			movesApplied += runLocalSearch(inst, s, opts.IntensificationMaxMoves)
			if err := s.LoadK(s.K()); err != nil {
				return Result{}, nil, err
			}
			if s.Objective() > best.Objective {
				best = s.TakeSnapshot()
				stagnation = 0
			}
			records = append(records, IterationRecord{
				Iteration: iteration, CurrentObj: s.Objective(), BestObj: best.Objective,
				Move: "intensify", TabuListSize: tabuActiveCount(tabuList, iteration),
				Stagnation: stagnation, State: "intensifying",
			})
			continue
		}

		candidates := enumerateMoves(inst, s, tabuList, iteration)
		if len(candidates) == 0 {
			break
		}
		sort.SliceStable(candidates, func(a, b int) bool { return candidates[a].Delta > candidates[b].Delta })
		if len(candidates) > opts.CandidateListSize {
			candidates = candidates[:opts.CandidateListSize]
		}

		chosen := selectCandidate(candidates, s.Objective(), best.Objective)
		if err := Apply(inst, s, chosen); err != nil {
			return Result{}, nil, err
		}
		movesApplied++
		markTabu(tabuList, chosen, iteration, opts.Tenure)

		if s.Objective() > best.Objective {
			best = s.TakeSnapshot()
			stagnation = 0
		} else {
			stagnation++
		}

		records = append(records, IterationRecord{
			Iteration: iteration, CurrentObj: s.Objective(), BestObj: best.Objective,
			Delta: chosen.Delta, Move: chosen.Kind.String(),
			TabuListSize: tabuActiveCount(tabuList, iteration),
			Stagnation:   stagnation, State: "normal",
		})
	}

	if err := s.LoadK(best.K); err != nil {
		return Result{}, nil, err
	}
	result := buildResult(inst, s, AlgoTabuSearch, seed, movesApplied, iteration, start, opts.InstanceName)
	return result, records, nil
}

// selectCandidate applies the three-tier rule over a sorted, truncated
// candidate list: first non-tabu, else first aspirating tabu (predicted
// objective strictly beats the global best), else the top candidate
// regardless (guarantees progress).
func selectCandidate(candidates []Move, currentObj, bestObj float64) Move {
	for _, m := range candidates {
		if !m.Tabu {
			return m
		}
	}
	for _, m := range candidates {
		if m.Tabu && currentObj+m.Delta > bestObj {
			return m
		}
	}
	return candidates[0]
}

// markTabu sets the expiry iteration (iteration + tenure) for every
// facility the applied move touched.
func markTabu(tabuList []int, m Move, iteration, tenure int) {
	switch m.Kind {
	case MoveClose:
		tabuList[m.Out] = iteration + tenure
	case MoveOpen:
		tabuList[m.In] = iteration + tenure
	case MoveSwap:
		tabuList[m.Out] = iteration + tenure
		tabuList[m.In] = iteration + tenure
	}
}

// tabuActiveCount reports how many facilities are currently tabu, for the
// per-iteration history record and the "tabu-list activity" testable property.
func tabuActiveCount(tabuList []int, iteration int) int {
	n := 0
	for _, expiry := range tabuList {
		if expiry > iteration {
			n++
		}
	}
	return n
}

// perturbOpenSet closes a random count in [lo, hi] of the currently-open
// facilities, then fills the freed budget with random feasible candidates;
// used by Tabu Search's initialization.
func perturbOpenSet(inst *Instance, s *SolutionState, rng *rand.Rand, lo, hi int) error {
	open := s.K()
	if len(open) == 0 {
		return nil
	}
	count := lo + rng.Intn(hi-lo+1)
	if count > len(open) {
		count = len(open)
	}
	shuffleIntsInPlace(open, rng)
	for i := 0; i < count; i++ {
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

// shake is the diversification step: close a random count in [lo, hi] of
// the open facilities, then open up to that many still-closed,
// still-budget-feasible candidates, in shuffled order. Shake moves are
// never scored by Delta and never update the global best; the caller runs
// the drift guard explicitly right after shake returns, since a shake's
// handful of moves is usually too few to trip the periodic counter on its own.
func shake(inst *Instance, s *SolutionState, rng *rand.Rand, lo, hi int) (int, error) {
	open := s.K()
	if len(open) == 0 {
		return 0, nil
	}
	numFlips := lo + rng.Intn(hi-lo+1)
	if numFlips > len(open) {
		numFlips = len(open)
	}
	applied := 0
	shuffleIntsInPlace(open, rng)
	for i := 0; i < numFlips; i++ {
		if err := ApplyClose(inst, s, open[i]); err != nil {
			return applied, err
		}
		applied++
	}

	closed := make([]int, 0, inst.NumFacilities())
	for pos := 0; pos < inst.NumFacilities(); pos++ {
		if !s.Open(pos) {
			closed = append(closed, pos)
		}
	}
	shuffleIntsInPlace(closed, rng)
	opened := 0
	for _, pos := range closed {
		if opened >= numFlips {
			break
		}
		if s.BudgetUsed()+inst.Cost(pos) > inst.Budget()+driftEpsilon {
			continue
		}
		if err := ApplyOpen(inst, s, pos); err != nil {
			return applied, err
		}
		opened++
		applied++
	}
	return applied, nil
}
