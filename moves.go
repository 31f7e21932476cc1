package mclp

// Move is the tagged variant {Close(id) | Open(id) | Swap(out, in)}: one
// shape for every move kind, carrying its own predicted objective delta and
// feasibility/tabu annotations. Out and In are facility positions, not
// original identifiers.
type Move struct {
	Kind     MoveKind
	Out      int // meaningful for MoveClose, MoveSwap
	In       int // meaningful for MoveOpen, MoveSwap
	Delta    float64
	Feasible bool
	Tabu     bool
}

// DeltaClose predicts the objective change of closing the open facility at
// position out: the negated demand of every customer uniquely covered by
// it. Closing is always budget-feasible.
func DeltaClose(inst *Instance, s *SolutionState, out int) float64 {
	loss := 0.0
	for _, cPos := range inst.CoveredBy(out) {
		if s.CoveredCount(cPos) == 1 {
			loss += inst.Demand(cPos)
		}
	}
	return -loss
}

// DeltaOpen predicts the objective change of opening the closed facility at
// position in: the demand of every newly-reached customer. ok is false iff
// opening would exceed the budget.
func DeltaOpen(inst *Instance, s *SolutionState, in int) (delta float64, ok bool) {
	if s.BudgetUsed()+inst.Cost(in) > inst.Budget()+driftEpsilon {
		return 0, false
	}
	gain := 0.0
	for _, cPos := range inst.CoveredBy(in) {
		if s.CoveredCount(cPos) == 0 {
			gain += inst.Demand(cPos)
		}
	}
	return gain, true
}

// DeltaSwap predicts the objective change of closing out and opening in as
// one composite move, evaluated in a single pass (never additively composed
// from DeltaClose + DeltaOpen): a customer covered only by out that in also
// covers must count toward the gain, not the loss. ok is false iff the
// post-swap budget would exceed B.
func DeltaSwap(inst *Instance, s *SolutionState, out, in int) (delta float64, ok bool) {
	if s.BudgetUsed()+inst.Cost(in)-inst.Cost(out) > inst.Budget()+driftEpsilon {
		return 0, false
	}
	loss := 0.0
	for _, cPos := range inst.CoveredBy(out) {
		if s.CoveredCount(cPos) == 1 {
			loss += inst.Demand(cPos)
		}
	}
	gain := 0.0
	for _, cPos := range inst.CoveredBy(in) {
		count := s.CoveredCount(cPos)
		if count == 0 {
			gain += inst.Demand(cPos)
			continue
		}
		if count == 1 && facilityCoversCustomer(inst, out, cPos) {
			gain += inst.Demand(cPos)
		}
	}
	return gain - loss, true
}

// facilityCoversCustomer reports whether facility position fPos covers
// customer position cPos, via a binary search of the sorted CoversOf list
// (kept short by construction, so linear would do, but CoversOf is already
// sorted and this keeps swap evaluation close to O(degree) rather than
// O(degree^2) on dense instances).
func facilityCoversCustomer(inst *Instance, fPos, cPos int) bool {
	facs := inst.CoversOf(cPos)
	lo, hi := 0, len(facs)
	for lo < hi {
		mid := (lo + hi) / 2
		if facs[mid] < fPos {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(facs) && facs[lo] == fPos
}

// ApplyClose closes the open facility at position out, mutating s in
// lockstep with DeltaClose's prediction. Returns ErrFacilityNotOpen if out
// is not currently open.
func ApplyClose(inst *Instance, s *SolutionState, out int) error {
	if !s.open[out] {
		return ErrFacilityNotOpen
	}
	delta := DeltaClose(inst, s, out)
	for _, cPos := range inst.CoveredBy(out) {
		s.coveredCount[cPos]--
		if s.coveredCount[cPos] == 0 && s.coveredMask[cPos] {
			s.coveredMask[cPos] = false
			s.numCovered--
		}
	}
	s.open[out] = false
	s.budgetUsed -= inst.Cost(out)
	s.objective += delta
	s.noteMove()
	return nil
}

// ApplyOpen opens the closed facility at position in. Returns
// ErrFacilityAlreadyOpen if already open, ErrBudgetExceeded if infeasible.
func ApplyOpen(inst *Instance, s *SolutionState, in int) error {
	if s.open[in] {
		return ErrFacilityAlreadyOpen
	}
	delta, ok := DeltaOpen(inst, s, in)
	if !ok {
		return ErrBudgetExceeded
	}
	for _, cPos := range inst.CoveredBy(in) {
		if s.coveredCount[cPos] == 0 {
			s.coveredMask[cPos] = true
			s.numCovered++
		}
		s.coveredCount[cPos]++
	}
	s.open[in] = true
	s.budgetUsed += inst.Cost(in)
	s.objective += delta
	s.noteMove()
	return nil
}

// ApplySwap closes out and opens in as one composite move: close-then-open
// sharing the same state. Returns ErrFacilityNotOpen / ErrSwapInAlreadyOpen /
// ErrBudgetExceeded as appropriate; the swap's feasibility is checked
// against the single-pass DeltaSwap prediction before either half is
// applied, so a rejected swap leaves s untouched.
func ApplySwap(inst *Instance, s *SolutionState, out, in int) error {
	if !s.open[out] {
		return ErrFacilityNotOpen
	}
	if s.open[in] {
		return ErrSwapInAlreadyOpen
	}
	delta, ok := DeltaSwap(inst, s, out, in)
	if !ok {
		return ErrBudgetExceeded
	}
	for _, cPos := range inst.CoveredBy(out) {
		s.coveredCount[cPos]--
		if s.coveredCount[cPos] == 0 && s.coveredMask[cPos] {
			s.coveredMask[cPos] = false
			s.numCovered--
		}
	}
	s.open[out] = false
	s.budgetUsed -= inst.Cost(out)

	for _, cPos := range inst.CoveredBy(in) {
		if s.coveredCount[cPos] == 0 {
			s.coveredMask[cPos] = true
			s.numCovered++
		}
		s.coveredCount[cPos]++
	}
	s.open[in] = true
	s.budgetUsed += inst.Cost(in)

	s.objective += delta
	s.noteMove()
	return nil
}

// Apply dispatches to ApplyClose / ApplyOpen / ApplySwap by m.Kind.
func Apply(inst *Instance, s *SolutionState, m Move) error {
	switch m.Kind {
	case MoveClose:
		return ApplyClose(inst, s, m.Out)
	case MoveOpen:
		return ApplyOpen(inst, s, m.In)
	case MoveSwap:
		return ApplySwap(inst, s, m.Out, m.In)
	default:
		return ErrBadParameter
	}
}

// enumerateMoves produces the full neighborhood of s as a []Move in
// deterministic identifier-sorted order: every close, every feasible open,
// every feasible swap. Infeasible opens/swaps are filtered out entirely
// rather than returned as errors; this is the single shared neighborhood
// generator used by both Local Search and Tabu Search. tabuList may be nil,
// in which case every move's Tabu field is false.
func enumerateMoves(inst *Instance, s *SolutionState, tabuList []int, iteration int) []Move {
	order := inst.IDOrder()
	var moves []Move

	isTabu := func(pos int) bool {
		return tabuList != nil && tabuList[pos] > iteration
	}

	for _, out := range order {
		if !s.open[out] {
			continue
		}
		delta := DeltaClose(inst, s, out)
		moves = append(moves, Move{
			Kind: MoveClose, Out: out, Delta: delta, Feasible: true,
			Tabu: isTabu(out),
		})
	}

	for _, in := range order {
		if s.open[in] {
			continue
		}
		delta, ok := DeltaOpen(inst, s, in)
		if !ok {
			continue
		}
		moves = append(moves, Move{
			Kind: MoveOpen, In: in, Delta: delta, Feasible: true,
			Tabu: isTabu(in),
		})
	}

	for _, out := range order {
		if !s.open[out] {
			continue
		}
		for _, in := range order {
			if s.open[in] {
				continue
			}
			delta, ok := DeltaSwap(inst, s, out, in)
			if !ok {
				continue
			}
			moves = append(moves, Move{
				Kind: MoveSwap, Out: out, In: in, Delta: delta, Feasible: true,
				Tabu: isTabu(out) || isTabu(in),
			})
		}
	}

	return moves
}
