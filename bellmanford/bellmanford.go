// Package bellmanford implements the validating shortest-path strategy of
// farepath: the Bellman-Ford algorithm over the flight graph.
//
// Unlike the default dijkstra strategy, Bellman-Ford tolerates negative
// fares (validation runs, fare adjustments) and is therefore the
// cross-check implementation: on any graph with all-non-negative fares it
// must report exactly the same costs and reachability set as dijkstra.
//
// Complexity:
//
//   - Time:  O(V · E) — |V|−1 relaxation passes over the full edge list
//     plus one detection pass.
//   - Space: O(V) for the distance table.
package bellmanford

import (
	"fmt"

	"github.com/skylane/farepath/core"
)

// ShortestPath computes the cheapest fares from the source airport to all
// airports of g, returning the populated distance table.
//
// Preconditions and validation (in order):
//  1. source must be non-empty after normalization (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source (ErrSourceNotFound).
//
// The algorithm relaxes every edge in |V|−1 passes, then runs one extra
// pass: any edge that still relaxes proves a negative cycle reachable from
// the source, and the run fails with ErrNegativeCycle instead of returning
// a table whose costs are undefined. Negative edges that do not close a
// reachable negative cycle are handled normally.
//
// The optional fare cap participates in relaxation, exactly as in the
// dijkstra strategy: candidate fares above the cap are never recorded, so
// every predecessor chain in the table stays within the cap and within
// the table.
//
// Edge iteration follows core.Graph.Edges' deterministic order, so
// identical inputs always produce an identical table.
func ShortestPath(g *core.Graph, source string, opts ...Option) (*core.Table, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the source code.
	source = core.Normalize(source)
	if source == "" {
		return nil, ErrEmptySource
	}

	// 3) Validate the graph.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Contains(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	// 4) Allocate per-run state.
	table := core.NewTable(source, g.Airports())
	edges := g.Edges()

	// 5) Relax every edge |V|−1 times. After pass k every cheapest path
	//    using at most k legs is final; no simple path has more than
	//    |V|−1 legs. Stop early once a full pass changes nothing.
	for pass := 1; pass < g.Order(); pass++ {
		if !relaxAll(table, edges, cfg.MaxFare) {
			break
		}
	}

	// 6) Detection pass: once the passes have settled, a further
	//    improvement can only come from a negative cycle. Relaxation
	//    starts from finite costs only, and a finite cost means
	//    "reachable from source", so any hit here is a reachable
	//    negative cycle.
	for _, e := range edges {
		if !table.Reachable(e.From) {
			continue
		}
		if candidate := table.Cost[e.From] + e.Fare; candidate <= cfg.MaxFare && candidate < table.Cost[e.To] {
			return nil, fmt.Errorf("%w: via edge %s→%s fare=%v", ErrNegativeCycle, e.From, e.To, e.Fare)
		}
	}

	return table, nil
}

// relaxAll performs one pass over the edge list, reporting whether any
// tentative fare improved. Only finite origins relax: an unreachable
// origin cannot improve anything, and skipping it keeps negative fares
// from combining with +Inf. Candidates above maxFare are discarded.
func relaxAll(table *core.Table, edges []core.Edge, maxFare float64) bool {
	improved := false
	for _, e := range edges {
		if !table.Reachable(e.From) {
			continue
		}
		candidate := table.Cost[e.From] + e.Fare
		if candidate > maxFare {
			continue
		}
		if candidate < table.Cost[e.To] {
			table.Cost[e.To] = candidate
			table.Prev[e.To] = e.From
			improved = true
		}
	}

	return improved
}
