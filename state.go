package mclp

import "log"

// SolutionState is the mutable quintuple: the open-set K, budget used, the
// coverage-count vector, the covered-customer mask (kept redundantly with
// coveredCount for O(1) size), and the cached objective. All containers are
// dense and position-indexed, never map/set-based.
//
// A SolutionState is owned exclusively by the search that created it; a
// Snapshot is the only safe way to hand a copy to a caller.
type SolutionState struct {
	inst *Instance

	open         []bool
	budgetUsed   float64
	coveredCount []int32
	coveredMask  []bool
	numCovered   int
	objective    float64

	strict         bool
	movesSinceSync int
}

// Snapshot is an immutable copy of a solution's open-set and objective, the
// shape returned to callers and used as the tabu search global-best record.
type Snapshot struct {
	K         []int // facility positions, ascending
	Objective float64
}

// NewSolutionState returns an empty solution state (no facility open) for
// inst. strict selects drift-guard behavior: true panics with
// ErrInvariantViolation on detected drift, false self-heals with a soft log line.
func NewSolutionState(inst *Instance, strict bool) *SolutionState {
	s := &SolutionState{
		inst:         inst,
		open:         make([]bool, inst.NumFacilities()),
		coveredCount: make([]int32, inst.NumCustomers()),
		coveredMask:  make([]bool, inst.NumCustomers()),
		strict:       strict,
	}
	return s
}

// LoadK bulk-reinitializes the state from a set of open facility positions,
// recomputing budgetUsed, coveredCount, coveredMask, numCovered, and
// objective from scratch. This is the only supported way to seed a state
// from an arbitrary K (constructive builders open facilities one at a time
// instead; Tabu Search intensification uses LoadK to absorb Local Search's
// returned K, per the package's "never read a stale cache across
// intensification" rule).
func (s *SolutionState) LoadK(positions []int) error {
	for i := range s.open {
		s.open[i] = false
	}
	for i := range s.coveredCount {
		s.coveredCount[i] = 0
		s.coveredMask[i] = false
	}
	s.budgetUsed = 0
	s.numCovered = 0
	s.movesSinceSync = 0

	seen := make(map[int]struct{}, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos >= len(s.open) {
			return ErrUnknownID
		}
		if _, dup := seen[pos]; dup {
			continue
		}
		seen[pos] = struct{}{}
		s.open[pos] = true
		s.budgetUsed += s.inst.Cost(pos)
		for _, cPos := range s.inst.CoveredBy(pos) {
			s.coveredCount[cPos]++
			if !s.coveredMask[cPos] {
				s.coveredMask[cPos] = true
				s.numCovered++
			}
		}
	}
	if s.budgetUsed > s.inst.Budget()+driftEpsilon {
		return ErrBudgetExceeded
	}

	s.objective = s.recomputeObjective()
	return nil
}

// recomputeObjective sums demand over the covered mask in customer-position
// order, the deterministic summation order the package's ordering
// guarantee requires for bit-identical reruns.
func (s *SolutionState) recomputeObjective() float64 {
	total := 0.0
	for cPos, covered := range s.coveredMask {
		if covered {
			total += s.inst.Demand(cPos)
		}
	}
	return total
}

// noteMove increments the drift-guard move counter and resyncs every
// driftGuardInterval applied moves.
func (s *SolutionState) noteMove() {
	s.movesSinceSync++
	if s.movesSinceSync >= driftGuardInterval {
		s.resync()
		s.movesSinceSync = 0
	}
}

// resync recomputes the objective from the covered mask and compares it to
// the cached value. A discrepancy beyond driftEpsilon is always corrected;
// in strict mode it additionally panics carrying ErrInvariantViolation, in
// release mode it is a soft log line.
func (s *SolutionState) resync() {
	recomputed := s.recomputeObjective()
	drift := recomputed - s.objective
	if drift < 0 {
		drift = -drift
	}
	if drift <= driftEpsilon {
		return
	}
	if s.strict {
		s.objective = recomputed
		panic(ErrInvariantViolation)
	}
	log.Printf("mclp: drift guard corrected objective %.6f -> %.6f (drift %.6g)", s.objective, recomputed, drift)
	s.objective = recomputed
}

// Open reports whether the facility at pos is currently open.
func (s *SolutionState) Open(pos int) bool { return s.open[pos] }

// BudgetUsed returns the current Σ cost[i] for i ∈ K.
func (s *SolutionState) BudgetUsed() float64 { return s.budgetUsed }

// Objective returns the current cached objective.
func (s *SolutionState) Objective() float64 { return s.objective }

// NumCovered returns |covered|.
func (s *SolutionState) NumCovered() int { return s.numCovered }

// CoveredCount returns the current coverage count for customer position cPos.
func (s *SolutionState) CoveredCount(cPos int) int32 { return s.coveredCount[cPos] }

// K returns the open-facility positions in ascending order. The slice is
// freshly allocated and safe for the caller to keep or mutate.
func (s *SolutionState) K() []int {
	k := make([]int, 0, len(s.open))
	for pos, open := range s.open {
		if open {
			k = append(k, pos)
		}
	}
	return k
}

// TakeSnapshot returns an immutable Snapshot of the current state.
func (s *SolutionState) TakeSnapshot() Snapshot {
	return Snapshot{K: s.K(), Objective: s.objective}
}

// Clone returns an independent deep copy of s, so a state can be forked
// without disturbing the original. No search in this package calls it;
// Tabu Search's intensification mutates its state in place.
func (s *SolutionState) Clone() *SolutionState {
	clone := &SolutionState{
		inst:           s.inst,
		open:           append([]bool(nil), s.open...),
		budgetUsed:     s.budgetUsed,
		coveredCount:   append([]int32(nil), s.coveredCount...),
		coveredMask:    append([]bool(nil), s.coveredMask...),
		numCovered:     s.numCovered,
		objective:      s.objective,
		strict:         s.strict,
		movesSinceSync: s.movesSinceSync,
	}
	return clone
}
