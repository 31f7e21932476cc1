// Package mclp: sentinel errors, enums, and the Options configuration
// surface shared by every algorithm in this package.
//
// Error policy: only sentinel values are exposed; callers branch with
// errors.Is, never string matching. Option
// constructors (WithX) may panic on a nonsensical literal (negative tenure,
// out-of-range probability) at configuration time. The only other panic is
// the drift guard in StrictMode, which panics with ErrInvariantViolation
// mid-search when the cached objective has drifted.
package mclp

import "errors"

// Load-time / instance-shape errors.
var (
	// ErrNoFacilities indicates the instance declares zero candidate sites.
	ErrNoFacilities = errors.New("mclp: instance has no facilities")

	// ErrNoCustomers indicates the instance declares zero demand points.
	ErrNoCustomers = errors.New("mclp: instance has no customers")

	// ErrDuplicateFacilityID indicates a facility identifier repeats in I.
	ErrDuplicateFacilityID = errors.New("mclp: duplicate facility id")

	// ErrDuplicateCustomerID indicates a customer identifier repeats in J.
	ErrDuplicateCustomerID = errors.New("mclp: duplicate customer id")

	// ErrUncoveredCustomer indicates some customer has no covering facility.
	ErrUncoveredCustomer = errors.New("mclp: customer has no covering facility")

	// ErrUnknownFacilityID indicates a coverage set references a facility not in I.
	ErrUnknownFacilityID = errors.New("mclp: coverage set references unknown facility id")

	// ErrUnknownCustomerID indicates a coverage set references a customer not in J.
	ErrUnknownCustomerID = errors.New("mclp: coverage set references unknown customer id")

	// ErrCoverageAsymmetry indicates coversOf and coveredBy disagree in total size.
	ErrCoverageAsymmetry = errors.New("mclp: coverage indices are mutually inconsistent")

	// ErrBudgetTooSmall indicates no single facility fits within the budget.
	ErrBudgetTooSmall = errors.New("mclp: budget smaller than every facility cost")

	// ErrNegativeCost indicates a facility cost is negative.
	ErrNegativeCost = errors.New("mclp: negative facility cost")

	// ErrNegativeDemand indicates a customer demand is negative.
	ErrNegativeDemand = errors.New("mclp: negative customer demand")

	// ErrNegativeBudget indicates the total budget is negative.
	ErrNegativeBudget = errors.New("mclp: negative budget")
)

// Solution-state / move errors.
var (
	// ErrFacilityAlreadyOpen indicates an open was attempted on an open facility.
	ErrFacilityAlreadyOpen = errors.New("mclp: facility already open")

	// ErrFacilityNotOpen indicates a close or swap-out targeted a closed facility.
	ErrFacilityNotOpen = errors.New("mclp: facility is not open")

	// ErrSwapInAlreadyOpen indicates a swap-in targeted an already-open facility.
	ErrSwapInAlreadyOpen = errors.New("mclp: swap-in facility is already open")

	// ErrBudgetExceeded indicates a proposed move would exceed the instance budget.
	ErrBudgetExceeded = errors.New("mclp: move would exceed budget")

	// ErrUnknownID indicates a move referenced an identifier absent from the instance.
	ErrUnknownID = errors.New("mclp: unknown facility id")

	// ErrInvariantViolation indicates the drift guard found drift beyond epsilon
	// while running in StrictMode (test mode); see state.go resync.
	ErrInvariantViolation = errors.New("mclp: invariant violation detected by drift guard")
)

// Parameter / configuration errors.
var (
	// ErrBadParameter indicates an out-of-range or inconsistent argument:
	// mismatched id/cost or id/demand lengths in NewInstance, bad sizes or
	// density in GenerateRandomInstance, or an unknown MoveKind in Apply.
	// WithX constructors panic with its message instead of returning it.
	ErrBadParameter = errors.New("mclp: parameter out of range")
)

// Algorithm tags the solver that produced a Result, using the short
// identifiers (greedy / cn / ls / ts) an external CSV writer expects verbatim.
type Algorithm string

const (
	// AlgoGreedy tags Result.Algorithm for the Greedy builder.
	AlgoGreedy Algorithm = "greedy"

	// AlgoCustomerPriority tags Result.Algorithm for the Customer-Priority builder.
	AlgoCustomerPriority Algorithm = "cn"

	// AlgoLocalSearch tags Result.Algorithm for a single Local Search run.
	AlgoLocalSearch Algorithm = "ls"

	// AlgoMultiStart tags Result.Algorithm for Multi-Start Local Search.
	AlgoMultiStart Algorithm = "ls"

	// AlgoTabuSearch tags Result.Algorithm for Tabu Search.
	AlgoTabuSearch Algorithm = "ts"
)

// MoveKind enumerates the three move shapes of the shared neighborhood,
// replacing ad-hoc tuples in move scoring with one tagged variant.
type MoveKind int

const (
	// MoveClose closes a currently-open facility.
	MoveClose MoveKind = iota

	// MoveOpen opens a currently-closed facility.
	MoveOpen

	// MoveSwap closes one facility and opens another in a single transition.
	MoveSwap
)

// String renders a MoveKind for logging and test failure messages.
func (k MoveKind) String() string {
	switch k {
	case MoveClose:
		return "close"
	case MoveOpen:
		return "open"
	case MoveSwap:
		return "swap"
	default:
		return "unknown"
	}
}

// Default knobs for Options.
const (
	// DefaultTenure is the default tabu tenure in iterations.
	DefaultTenure = 10

	// DefaultCandidateListSize bounds the restricted, sorted candidate list.
	DefaultCandidateListSize = 20

	// DefaultMaxIterations bounds a Tabu Search run.
	DefaultMaxIterations = 500

	// DefaultStagnationLimit triggers a shake after this many non-improving iterations.
	DefaultStagnationLimit = 100

	// DefaultIntensificationFreq runs embedded Local Search every this many iterations.
	DefaultIntensificationFreq = 50

	// DefaultMaxRestarts bounds the number of shakes before terminating.
	DefaultMaxRestarts = 100

	// DefaultLSMaxMoves bounds a standalone or multi-start Local Search run.
	DefaultLSMaxMoves = 200

	// DefaultIntensificationMaxMoves bounds the embedded Local Search call inside Tabu Search.
	DefaultIntensificationMaxMoves = 50

	// DefaultMultistartCount is the number of diverse starts Multi-Start runs.
	DefaultMultistartCount = 10

	// DefaultPerturbationRate is the fraction of a Greedy solution's open
	// facilities removed when seeding a perturbed-Greedy start.
	DefaultPerturbationRate = 0.3

	// lsAcceptEpsilon is the minimal strictly-positive improvement Local
	// Search requires before accepting a move.
	lsAcceptEpsilon = 1e-6

	// driftEpsilon is the maximal tolerated drift between the cached
	// objective and a from-scratch recomputation.
	driftEpsilon = 1e-4

	// driftGuardInterval is how often (in applied moves) the drift guard
	// resynchronizes the cached objective.
	driftGuardInterval = 50
)

// Options configures every algorithm entry point in this package. Zero value
// is not meaningful; use DefaultOptions() and override via WithX functions.
type Options struct {
	// Tenure is the number of future iterations a touched facility stays tabu.
	Tenure int

	// CandidateListSize restricts the sorted neighborhood Tabu Search considers per iteration.
	CandidateListSize int

	// MaxIterations bounds a Tabu Search run's outer loop.
	MaxIterations int

	// StagnationLimit triggers a shake once this many iterations pass without a new global best.
	StagnationLimit int

	// IntensificationFreq runs embedded Local Search every this many Tabu Search iterations.
	IntensificationFreq int

	// MaxRestarts bounds the number of shakes Tabu Search will perform.
	MaxRestarts int

	// LSMaxMoves bounds a Local Search run (standalone or per multi-start start);
	// Tabu Search's intensification pass uses IntensificationMaxMoves instead.
	LSMaxMoves int

	// IntensificationMaxMoves bounds the embedded Local Search call inside Tabu Search;
	// distinct from LSMaxMoves so a short intensification pass does not need a
	// caller to also shrink the standalone Local Search budget.
	IntensificationMaxMoves int

	// MultistartCount is the number of diverse starts Multi-Start Local Search runs.
	MultistartCount int

	// PerturbationRate is the fraction (0,1) of a Greedy solution removed
	// before refilling by perturbed-Greedy multi-start starts. Tabu Search's
	// initialization perturbation does not use it; it removes 1-3 facilities.
	PerturbationRate float64

	// StrictMode makes the drift guard treat any detected drift as a fatal
	// ErrInvariantViolation instead of self-healing with a soft log line.
	// Test code should run with StrictMode enabled.
	StrictMode bool

	// InstanceName labels Result.Instance for callers that run the same
	// algorithm over many named instances (e.g. a batch benchmark). Empty
	// by default; the solver never reads it for anything but this label.
	InstanceName string
}

// Option mutates an Options value; applied in order by DefaultOptions callers.
type Option func(*Options)

// DefaultOptions returns Options populated with this package's default knobs.
func DefaultOptions() Options {
	return Options{
		Tenure:                  DefaultTenure,
		CandidateListSize:       DefaultCandidateListSize,
		MaxIterations:           DefaultMaxIterations,
		StagnationLimit:         DefaultStagnationLimit,
		IntensificationFreq:     DefaultIntensificationFreq,
		MaxRestarts:             DefaultMaxRestarts,
		LSMaxMoves:              DefaultLSMaxMoves,
		IntensificationMaxMoves: DefaultIntensificationMaxMoves,
		MultistartCount:         DefaultMultistartCount,
		PerturbationRate:        DefaultPerturbationRate,
		StrictMode:              false,
	}
}

// NewOptions returns DefaultOptions() with the given Option overrides applied in order.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTenure overrides Tenure. Panics if tenure <= 0.
func WithTenure(tenure int) Option {
	if tenure <= 0 {
		panic(ErrBadParameter.Error())
	}
	return func(o *Options) { o.Tenure = tenure }
}

// WithCandidateListSize overrides CandidateListSize. Panics if size <= 0.
func WithCandidateListSize(size int) Option {
	if size <= 0 {
		panic(ErrBadParameter.Error())
	}
	return func(o *Options) { o.CandidateListSize = size }
}

// WithMaxIterations overrides MaxIterations. Panics if n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(ErrBadParameter.Error())
	}
	return func(o *Options) { o.MaxIterations = n }
}

// WithStagnationLimit overrides StagnationLimit. Panics if n <= 0.
func WithStagnationLimit(n int) Option {
	if n <= 0 {
		panic(ErrBadParameter.Error())
	}
	return func(o *Options) { o.StagnationLimit = n }
}

// WithIntensificationFreq overrides IntensificationFreq. Panics if n <= 0.
func WithIntensificationFreq(n int) Option {
	if n <= 0 {
		panic(ErrBadParameter.Error())
	}
	return func(o *Options) { o.IntensificationFreq = n }
}

// WithMaxRestarts overrides MaxRestarts. Panics if n < 0.
func WithMaxRestarts(n int) Option {
	if n < 0 {
		panic(ErrBadParameter.Error())
	}
	return func(o *Options) { o.MaxRestarts = n }
}

// WithLSMaxMoves overrides LSMaxMoves. Panics if n <= 0.
func WithLSMaxMoves(n int) Option {
	if n <= 0 {
		panic(ErrBadParameter.Error())
	}
	return func(o *Options) { o.LSMaxMoves = n }
}

// WithIntensificationMaxMoves overrides IntensificationMaxMoves. Panics if n <= 0.
func WithIntensificationMaxMoves(n int) Option {
	if n <= 0 {
		panic(ErrBadParameter.Error())
	}
	return func(o *Options) { o.IntensificationMaxMoves = n }
}

// WithMultistartCount overrides MultistartCount. Panics if n < 2 (the
// start schedule always seeds from Greedy and Customer-Priority first).
func WithMultistartCount(n int) Option {
	if n < 2 {
		panic(ErrBadParameter.Error())
	}
	return func(o *Options) { o.MultistartCount = n }
}

// WithPerturbationRate overrides PerturbationRate. Panics if rate is not in (0,1).
func WithPerturbationRate(rate float64) Option {
	if rate <= 0 || rate >= 1 {
		panic(ErrBadParameter.Error())
	}
	return func(o *Options) { o.PerturbationRate = rate }
}

// WithStrictMode enables or disables strict drift-guard behavior.
func WithStrictMode(strict bool) Option {
	return func(o *Options) { o.StrictMode = strict }
}

// WithInstanceName sets the label copied into Result.Instance.
func WithInstanceName(name string) Option {
	return func(o *Options) { o.InstanceName = name }
}
