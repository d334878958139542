// Package bellmanford provides the validating shortest-path strategy over
// the farepath flight graph: the Bellman-Ford algorithm.
//
// Overview:
//
//   - Relaxes every edge of the graph in |V|−1 passes (with an early stop
//     when a pass changes nothing), then runs one detection pass.
//   - Tolerates negative fares, which the default dijkstra strategy
//     rejects outright.
//   - Detects negative fare cycles reachable from the query source and
//     fails with ErrNegativeCycle — returning minimum fares through such a
//     cycle would be meaningless, so no partial table is ever handed back.
//
// When to use:
//
//   - To cross-check the dijkstra strategy: on all-non-negative graphs the
//     two produce identical costs and reachability sets (a tested property
//     of this repository).
//   - On datasets carrying negative fare adjustments (refund modeling,
//     synthetic validation data), where Dijkstra's greedy invariant does
//     not hold.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    the source code is empty after normalization.
//   - ErrNilGraph:       a nil *core.Graph was supplied.
//   - ErrSourceNotFound: the source airport is outside the node set.
//   - ErrNegativeCycle:  a negative-total cycle is reachable from the source.
//   - ErrBadMaxFare:     (via panic) WithMaxFare received a negative or NaN cap.
//
// API reference:
//
//	func ShortestPath(
//	    g *core.Graph,
//	    source string,
//	    opts ...Option,
//	) (*core.Table, error)
//
// Complexity:
//
//   - Time:  O(V · E); Space: O(V).
//   - Roughly a factor V slower than dijkstra on the same graph — prefer
//     dijkstra whenever fares are known non-negative.
//
// Thread safety:
//
//   - The graph is never mutated and each run owns its table; concurrent
//     calls against one shared graph need no locking.
package bellmanford
