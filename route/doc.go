// Package route assembles cheapest-flight itineraries: it is the path
// reconstructor and the query facade sitting on top of the traversal
// engines (dijkstra, bellmanford).
//
// The one semantic operation exposed to collaborators:
//
//	it, err := route.CheapestFlight(g, "ABE", "PIE")
//	it, err := route.CheapestFlight(g, "ABE", "PIE",
//	    route.WithStrategy(route.StrategyBellmanFord),
//	    route.WithMaxFare(500),
//	)
//
// CheapestFlight validates both airports against the graph, runs the
// selected strategy to obtain a distance table, and walks the table's
// predecessor links into a forward-ordered leg sequence with an aggregate
// fare. Data loading and presentation are external collaborators: this
// package performs no I/O and knows nothing about rendering.
//
// Outcome taxonomy (all errors.Is-able, none retried):
//
//   - a complete, cost-consistent *Itinerary — including the zero-leg,
//     zero-fare itinerary for source == target; or
//   - core.ErrUnknownAirport — input error: the code is not in the graph; or
//   - ErrNoRoute — negative result: the airports are known but disconnected; or
//   - bellmanford.ErrNegativeCycle — data-integrity violation, query aborted; or
//   - ErrCorruptPath — internal-invariant violation, must never occur with
//     a correct engine (and the tests assert it does not).
//
// Determinism:
//
//   - Identical queries against an unmodified graph return identical
//     itineraries, leg for leg. Equal-fare alternatives resolve to the
//     first-recorded path; the tie-break carries no semantic meaning.
//
// Strategy equivalence:
//
//   - For graphs with non-negative fares, both strategies yield the same
//     total fare and the same reachability set for every airport pair —
//     the property tests in this package exercise it on a spread of
//     synthetic graphs.
package route
