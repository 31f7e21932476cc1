// Package mclp is an in-memory solver core for the Maximum Coverage Location
// Problem with Budget (MCLP-B).
//
// 🚀 What is mclp?
//
//	Given candidate facility sites, customer demand points, a per-site opening
//	cost, a per-customer demand, a coverage relation (which sites can serve
//	which customers), and a total budget, mclp selects a budget-feasible subset
//	of sites maximizing the demand of customers covered by at least one open
//	site.
//
// ✨ Why choose mclp?
//
//   - Beginner-friendly — load an Instance, call one of five entry points.
//   - Deterministic      — every stochastic step is driven by an explicit seed.
//   - Delta-evaluated    — every move (close/open/swap) is scored and applied
//     in O(coverage degree), never by recomputing the objective from scratch.
//
// Five entry points share one delta-maintained solution state:
//
//	Greedy(...)                 — facility-centric constructive builder
//	CustomerPriority(...)       — customer-centric constructive builder
//	LocalSearch(...)            — best-improvement 1-flip + swap neighborhood
//	MultiStartLocalSearch(...)  — diverse restarts feeding LocalSearch
//	TabuSearch(...)             — tenure-based tabu list, aspiration,
//	                               intensification, shake-restart
//
// Quick ASCII example — facilities {0,1,2,3}, budget 5.0:
//
//	cost:   2.0   3.0   2.5   1.5
//	        [0]   [1]   [2]   [3]
//	         \     |     |     /
//	          \    |     |    /
//	       customers 0..7 (demand-weighted coverage)
//
// Opening {1,3} costs 4.5 ≤ 5.0 and covers customers {0,1,3,4,5,7}.
//
//	go get github.com/katalvlaran/mclp
package mclp
