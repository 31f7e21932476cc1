package mclp

import "math/rand"

// genConfig holds GenerateRandomInstance's tunable ranges: a plain struct
// populated by GenOptions.
type genConfig struct {
	seed        int64
	minCost     float64
	maxCost     float64
	minDemand   float64
	maxDemand   float64
	budgetRatio float64
}

// GenOption mutates a synthetic instance generator's configuration.
type GenOption func(*genConfig)

func defaultGenConfig() genConfig {
	return genConfig{
		minCost:     1.0,
		maxCost:     10.0,
		minDemand:   1.0,
		maxDemand:   20.0,
		budgetRatio: 0.4,
	}
}

// WithGenSeed fixes the RNG seed used by GenerateRandomInstance.
func WithGenSeed(seed int64) GenOption {
	return func(c *genConfig) { c.seed = seed }
}

// WithCostRange overrides the [min, max] facility opening-cost range.
func WithCostRange(min, max float64) GenOption {
	return func(c *genConfig) { c.minCost, c.maxCost = min, max }
}

// WithDemandRange overrides the [min, max] customer demand range.
func WithDemandRange(min, max float64) GenOption {
	return func(c *genConfig) { c.minDemand, c.maxDemand = min, max }
}

// WithBudgetRatio sets the budget as this fraction of the total cost of
// every generated facility. ratio is expected in (0,1] but is not clamped
// here; an out-of-range value is the caller's responsibility.
func WithBudgetRatio(ratio float64) GenOption {
	return func(c *genConfig) { c.budgetRatio = ratio }
}

// GenerateRandomInstance samples a structurally-random MCLP-B instance for
// tests and benchmarks: numFacilities candidate sites, numCustomers demand
// points, each (facility, customer) coverage link an independent Bernoulli
// trial with probability coverageDensity (the same Erdos-Renyi-style
// independent-edge-probability technique used for random sparse graphs),
// re-rolling any customer left fully uncovered so the load-time invariant
// never fails out of the gate. Costs and demands are drawn uniformly from
// configurable ranges, and the budget is set to budgetRatio times the total
// facility cost.
func GenerateRandomInstance(numFacilities, numCustomers int, coverageDensity float64, opts ...GenOption) (*Instance, error) {
	if numFacilities <= 0 || numCustomers <= 0 {
		return nil, ErrBadParameter
	}
	if coverageDensity <= 0 || coverageDensity > 1 {
		return nil, ErrBadParameter
	}

	cfg := defaultGenConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := rngFromSeed(cfg.seed)

	facilityIDs := make([]int, numFacilities)
	costs := make([]float64, numFacilities)
	totalCost := 0.0
	for i := range facilityIDs {
		facilityIDs[i] = i
		costs[i] = cfg.minCost + rng.Float64()*(cfg.maxCost-cfg.minCost)
		totalCost += costs[i]
	}

	customerIDs := make([]int, numCustomers)
	demands := make([]float64, numCustomers)
	for j := range customerIDs {
		customerIDs[j] = j
		demands[j] = cfg.minDemand + rng.Float64()*(cfg.maxDemand-cfg.minDemand)
	}

	var coverage []CoverageEdge
	for j := 0; j < numCustomers; j++ {
		links := sampleCoverageRow(numFacilities, coverageDensity, rng)
		for len(links) == 0 {
			// Re-roll: an uncovered customer would fail the load-time
			// invariant, so retry until at least one facility covers it.
			links = sampleCoverageRow(numFacilities, coverageDensity, rng)
		}
		for _, i := range links {
			coverage = append(coverage, CoverageEdge{FacilityID: facilityIDs[i], CustomerID: customerIDs[j]})
		}
	}

	budget := cfg.budgetRatio * totalCost
	return NewInstance(facilityIDs, costs, customerIDs, demands, coverage, budget)
}

// sampleCoverageRow returns the facility positions covering one customer,
// each included as an independent Bernoulli(density) trial.
func sampleCoverageRow(numFacilities int, density float64, rng *rand.Rand) []int {
	var links []int
	for i := 0; i < numFacilities; i++ {
		if rng.Float64() < density {
			links = append(links, i)
		}
	}
	return links
}
