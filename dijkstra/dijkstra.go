// Package dijkstra implements the default shortest-path strategy of
// farepath: Dijkstra's algorithm over the flight graph with non-negative
// fares.
//
// The engine maintains a min-priority frontier keyed by tentative fare,
// repeatedly extracts the unsettled airport with the smallest tentative
// fare, relaxes its outgoing edges, and never revisits a settled airport
// (the standard non-negative-weight greedy invariant).
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each airport is extracted at most once,
//     each relaxation may push one heap entry, every heap operation costs
//     O(log N) with N ≤ V + E under the lazy-decrease-key strategy.
//   - Space: O(V + E) — O(V) for the distance table, O(E) worst case in
//     the heap.
package dijkstra

import (
	"container/heap"
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
//  4. No edge of g may carry a negative fare (ErrNegativeFare, fail-fast
//     O(E) pre-scan — never a partially computed table).
//
// Determinism: ties on equal tentative fare are broken by insertion
// sequence, so the first-extracted path wins and identical inputs always
// produce an identical table. No semantic significance beyond determinism.
//
// Unreachable airports keep cost = +Inf and no predecessor in the table;
// that is a valid result, not an error.
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

	// 4) Pre-scan all edges for negative fares. Fail fast: Dijkstra's
	//    settled-set invariant breaks under negative weights.
	for _, e := range g.Edges() {
		if e.Fare < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s fare=%v", ErrNegativeFare, e.From, e.To, e.Fare)
		}
	}

	// 5) Allocate per-run state: every query owns its own table and heap,
	//    keeping a shared read-only graph safe under concurrent queries.
	r := &runner{
		g:       g,
		options: cfg,
		table:   core.NewTable(source, g.Airports()),
		settled: make(map[string]bool, g.Order()),
	}
	r.run()

	return r.table, nil
}

// runner holds the mutable state of a single ShortestPath execution.
type runner struct {
	g       *core.Graph
	options Options
	table   *core.Table     // tentative fares and predecessors
	settled map[string]bool // airports whose fare is final
	pq      fareHeap        // lazy min-heap of frontier entries
	seq     int             // insertion counter for deterministic tie-break
}

// run seeds the frontier with the source at fare 0 and drains it.
func (r *runner) run() {
	target := core.Normalize(r.options.Target)

	heap.Init(&r.pq)
	r.push(r.table.Source, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*fareItem)

		// Skip stale entries left behind by lazy decrease-key.
		if r.settled[item.code] {
			continue
		}
		r.settled[item.code] = true

		// Early exit: once the target is extracted its fare is final.
		// Correctness does not depend on this break.
		if target != "" && item.code == target {
			break
		}

		r.relax(item.code)
	}
}

// relax attempts to improve the tentative fare of every airport adjacent
// to u. Parallel edges are each examined; the cheapest one wins the
// relaxation, and equal-fare duplicates keep the first recorded path
// (strict < comparison).
func (r *runner) relax(u string) {
	base := r.table.Cost[u]
	for _, e := range r.g.Neighbors(u) {
		candidate := base + e.Fare
		if candidate > r.options.MaxFare {
			continue
		}
		if candidate >= r.table.Cost[e.To] {
			continue
		}
		r.table.Cost[e.To] = candidate
		r.table.Prev[e.To] = u
		r.push(e.To, candidate)
	}
}

// push appends a frontier entry, stamping it with the insertion sequence.
// Stale duplicates are tolerated and filtered at pop time.
func (r *runner) push(code string, fare float64) {
	heap.Push(&r.pq, &fareItem{code: code, fare: fare, seq: r.seq})
	r.seq++
}

// fareItem is one frontier entry: an airport and its tentative fare.
type fareItem struct {
	code string
	fare float64
	seq  int // FIFO tie-break for equal fares
}

// fareHeap is a binary min-heap of frontier entries ordered by fare,
// then by insertion sequence so that equal-fare extraction is stable.
type fareHeap []*fareItem

func (h fareHeap) Len() int { return len(h) }

func (h fareHeap) Less(i, j int) bool {
	if h[i].fare != h[j].fare {
		return h[i].fare < h[j].fare
	}

	return h[i].seq < h[j].seq
}

func (h fareHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds x onto the heap; called by heap.Push.
func (h *fareHeap) Push(x interface{}) { *h = append(*h, x.(*fareItem)) }

// Pop removes and returns the smallest entry; called by heap.Pop.
func (h *fareHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
