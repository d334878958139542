package core

import "math"

// Unreachable is the tentative cost of an airport no itinerary reaches:
// positive infinity. It is a valid terminal state, not an error.
var Unreachable = math.Inf(1)

// Table is the per-query distance table: for every airport, the best-known
// fare from the query source and the predecessor on that cheapest path.
//
// A Table is allocated fresh for each query and discarded once the path
// reconstructor has consumed it. Concurrent queries against one shared
// Graph must each own their own Table — this is the only shared-resource
// rule the engine imposes.
type Table struct {
	// Source is the airport the costs are measured from.
	Source string

	// Cost maps each airport to its cheapest known total fare from Source,
	// or Unreachable (+Inf) when no itinerary exists.
	Cost map[string]float64

	// Prev maps each airport to its predecessor on the recorded cheapest
	// path, or "" for the source and for unreachable airports.
	Prev map[string]string
}

// NewTable allocates a Table over the given node set with every cost set
// to Unreachable and the source pinned to zero.
// Complexity: O(V).
func NewTable(source string, airports []string) *Table {
	t := &Table{
		Source: source,
		Cost:   make(map[string]float64, len(airports)),
		Prev:   make(map[string]string, len(airports)),
	}
	for _, a := range airports {
		t.Cost[a] = Unreachable
		t.Prev[a] = ""
	}
	t.Cost[source] = 0

	return t
}

// Reachable reports whether the table records a finite fare for the airport.
func (t *Table) Reachable(code string) bool {
	c, ok := t.Cost[code]

	return ok && !math.IsInf(c, 1)
}
