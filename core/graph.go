package core

import (
	"fmt"
	"sort"
)

// Graph is the immutable flight graph: the full set of airports (node set)
// and route edges (edge multiset), indexed for O(1) lookup of outgoing
// edges per airport.
//
// Build constructs a Graph once per dataset; after construction no method
// mutates it, so a single instance is safely shareable across concurrent
// read-only queries without locking. Parallel edges between the same
// (From, To) pair are retained deliberately — they represent distinct
// carriers or fares, and minimization is the engine's job, not the graph's.
type Graph struct {
	// adjacency maps an origin code to its outgoing edges, in record order.
	adjacency map[string][]Edge

	// airports is the sorted node set, cached for deterministic iteration.
	airports []string

	edgeCount int
}

// Build constructs a Graph from a batch of route records.
//
// Every record's endpoint codes are normalized (uppercased, trimmed) before
// indexing, and destination-only airports join the node set so that a query
// targeting them resolves to "unreachable" rather than "unknown".
//
// Build deduplicates nothing: all parallel edges survive.
//
// Returns ErrEmptyAirport (wrapped with the record index) if any record
// carries an empty endpoint code after normalization.
//
// Complexity: O(E + V log V) time, O(V + E) space.
func Build(records []Edge) (*Graph, error) {
	g := &Graph{
		adjacency: make(map[string][]Edge, len(records)),
	}

	// 1) Index every edge under its normalized origin; collect the node set.
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		rec.From = Normalize(rec.From)
		rec.To = Normalize(rec.To)
		if rec.From == "" || rec.To == "" {
			return nil, fmt.Errorf("%w: record %d (%q→%q)", ErrEmptyAirport, i, rec.From, rec.To)
		}
		g.adjacency[rec.From] = append(g.adjacency[rec.From], rec)
		seen[rec.From] = struct{}{}
		seen[rec.To] = struct{}{}
		g.edgeCount++
	}

	// 2) Cache the sorted node set for deterministic Airports() iteration.
	g.airports = make([]string, 0, len(seen))
	for a := range seen {
		g.airports = append(g.airports, a)
	}
	sort.Strings(g.airports)

	return g, nil
}

// Contains reports whether the airport code (after normalization) is part
// of the graph's node set.
// Complexity: O(log V).
func (g *Graph) Contains(code string) bool {
	code = Normalize(code)
	i := sort.SearchStrings(g.airports, code)

	return i < len(g.airports) && g.airports[i] == code
}

// Neighbors returns the outgoing edges of the given airport, in the order
// the records were supplied to Build. An airport with no outbound flights
// yields an empty slice, not an error — unreachability is a connectivity
// fact, not a defect.
//
// The returned slice is a copy; callers may not corrupt the index.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(code string) []Edge {
	out := g.adjacency[Normalize(code)]
	cp := make([]Edge, len(out))
	copy(cp, out)

	return cp
}

// Airports returns the sorted node set.
// The returned slice is a copy. Complexity: O(V).
func (g *Graph) Airports() []string {
	cp := make([]string, len(g.airports))
	copy(cp, g.airports)

	return cp
}

// Edges returns every edge of the multiset in deterministic order:
// grouped by sorted origin, record order within a group. This is the
// iteration order the Bellman-Ford passes rely on for reproducible runs.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	all := make([]Edge, 0, g.edgeCount)
	for _, a := range g.airports {
		all = append(all, g.adjacency[a]...)
	}

	return all
}

// Order returns the number of airports in the node set.
func (g *Graph) Order() int { return len(g.airports) }

// EdgeCount returns the number of edges in the multiset.
func (g *Graph) EdgeCount() int { return g.edgeCount }
