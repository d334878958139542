// Package dijkstra provides the default shortest-path strategy over the
// farepath flight graph: Dijkstra's algorithm for non-negative fares.
//
// Overview:
//
//   - Computes the minimum total fare from one source airport to every
//     reachable airport in O((V + E) log V) time.
//   - Maintains a binary min-heap frontier (extract-min plus lazy
//     decrease-key: push duplicates, skip stale entries at pop time) and a
//     settled marker set — no sorted-container sugar.
//   - Supports optional early exit on a target airport and an optional
//     total-fare cap.
//
// When to use:
//
//   - Whenever every fare in the dataset is non-negative — the normal case
//     for published route fares. This is the strategy route.CheapestFlight
//     dispatches to by default.
//   - For datasets carrying negative fare adjustments, use the bellmanford
//     package instead; this package fails fast with ErrNegativeFare.
//
// Equivalence guarantee:
//
//   - On any graph whose fares are all non-negative, ShortestPath and
//     bellmanford.ShortestPath produce identical distance tables (same
//     costs, same reachability set). The route package's tests assert this
//     property.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    the source code is empty after normalization.
//   - ErrNilGraph:       a nil *core.Graph was supplied.
//   - ErrSourceNotFound: the source airport is outside the node set.
//   - ErrNegativeFare:   a negative fare was found by the O(E) pre-scan.
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
//	  - g:      the immutable flight graph; shared read-only across queries.
//	  - source: origin airport code, normalized before lookup.
//	  - opts:   WithTarget(code), WithMaxFare(limit).
//	  - table:  cost +Inf and empty predecessor for unreachable airports —
//	            a valid terminal state, never an error.
//
// Thread safety:
//
//   - The graph is never mutated; every run allocates its own table, heap
//     and settled set, so concurrent ShortestPath calls on one shared
//     graph need no external locking.
package dijkstra
