// Package core provides the data model shared by every farepath component:
// the route Edge, the immutable flight Graph, and the per-query distance
// Table.
//
// The Graph G = (V,E) is a directed multigraph:
//
//   - V is the set of airports, identified by uppercase IATA-style codes.
//   - E is a multiset of route offers; parallel edges between one
//     (origin, destination) pair coexist, one per carrier/fare.
//   - Outgoing edges are indexed per origin for O(1) adjacency lookup.
//
// Why an immutable value instead of a process-wide singleton?
//
//   - Build once per dataset, pass the *Graph into every query call.
//   - No lifecycle ambiguity, no locking: after Build returns, nothing
//     mutates the index, so concurrent read-only queries are safe.
//   - Trivially testable with synthetic graphs.
//
// Construction and queries:
//
//	g, err := core.Build(records)        // O(E + V log V)
//	g.Contains("JFK")                    // O(log V)
//	g.Neighbors("JFK")                   // O(deg), empty slice if no outbound
//	g.Airports()                         // sorted node set
//	g.Edges()                            // deterministic full edge list
//
// The Table is transient engine state: cheapest known fare plus predecessor
// per airport, allocated per query by NewTable and handed to the route
// package for path reconstruction. Unreachable airports keep cost = +Inf
// (core.Unreachable) and an empty predecessor — a valid terminal state
// meaning "no itinerary exists", never an error.
//
// Errors:
//
//	ErrUnknownAirport – query referenced a code outside the node set
//	ErrEmptyAirport   – record or query carried an empty code
package core
