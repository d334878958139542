// Package farepath is an in-memory engine for cheapest-flight itineraries:
// build a flight graph from point-to-point fare records, run a
// shortest-path traversal, and get back an ordered, priced itinerary.
//
// What's inside?
//
//	core/        — route Edge, immutable flight Graph, per-query distance Table
//	dijkstra/    — default engine: min-heap Dijkstra for non-negative fares
//	bellmanford/ — validating engine: Bellman-Ford with negative-cycle detection
//	route/       — path reconstruction and the CheapestFlight query facade
//	dataset/     — CSV fare-dataset loader with a city→airports lookup
//	server/      — gin-based JSON API for dashboards and map front ends
//	cmd/farepath — CLI: query, compare algorithms, serve
//
// Quick example:
//
//	g, _ := core.Build([]core.Edge{
//	    {From: "A", To: "B", Fare: 100},
//	    {From: "B", To: "C", Fare: 50},
//	    {From: "A", To: "C", Fare: 200},
//	})
//	it, _ := route.CheapestFlight(g, "A", "C")
//	// it.Airports() == [A B C], it.TotalFare == 150
//
// Guarantees:
//
//   - Deterministic: identical queries on an unmodified graph return
//     identical itineraries, with a stable tie-break on equal fares.
//   - Safe to share: the graph is immutable after Build; every query
//     allocates its own traversal state, so concurrent reads need no locks.
//   - Honest outcomes: unknown airport, no route, and negative cycle are
//     distinguishable sentinel errors — never a partial result.
//
// Dive into the per-package docs for complexity notes and the full option
// surface.
package farepath
