package mclp

import "time"

// Result is the one data record every algorithm entry point returns,
// populating every field the external (out-of-scope) CSV writer consumes.
// Instance carries opts.InstanceName verbatim (empty unless the caller set
// it via WithInstanceName) so a batch runner comparing many instances can
// label each row without threading a separate out-of-band map. Facilities
// is sorted ascending by original facility identifier.
type Result struct {
	Instance      string
	Seed          int64
	Algorithm     Algorithm
	Objective     float64
	CoveragePct   float64
	RuntimeSec    float64
	NumFacilities int
	BudgetUsed    float64
	NumMoves      int
	NumIterations int
	Facilities    []int
}

// StartRecord is Multi-Start Local Search's per-start history entry.
type StartRecord struct {
	Method           string
	InitialObjective float64
	FinalObjective   float64
	Moves            int
}

// IterationRecord is Tabu Search's per-iteration history entry: current
// objective, best objective, delta, move kind, tabu list size, and
// stagnation counter as of that iteration.
type IterationRecord struct {
	Iteration    int
	CurrentObj   float64
	BestObj      float64
	Delta        float64
	Move         string // "close" | "open" | "swap" | "shake" | "intensify"
	TabuListSize int
	Stagnation   int
	State        string // "normal" | "intensifying" | "shaking"
}

// now returns the wall-clock start time for a RuntimeSec measurement.
func now() time.Time { return time.Now() }

// buildResult assembles a Result from a terminal solution state. start is
// the time.Time captured at the beginning of the call; instanceName
// populates Result.Instance (may be empty).
func buildResult(inst *Instance, s *SolutionState, algo Algorithm, seed int64, numMoves, numIterations int, start time.Time, instanceName string) Result {
	k := s.K()
	coveragePct := 0.0
	if inst.TotalDemand() > 0 {
		coveragePct = 100 * s.Objective() / inst.TotalDemand()
	}
	return Result{
		Instance:      instanceName,
		Seed:          seed,
		Algorithm:     algo,
		Objective:     s.Objective(),
		CoveragePct:   coveragePct,
		RuntimeSec:    time.Since(start).Seconds(),
		NumFacilities: len(k),
		BudgetUsed:    s.BudgetUsed(),
		NumMoves:      numMoves,
		NumIterations: numIterations,
		Facilities:    inst.PositionsToIDs(k),
	}
}
