package route

import (
	"fmt"

	"github.com/skylane/farepath/core"
)

// Reconstruct walks the distance table's predecessor links backward from
// target to source and reverses the walk into a forward-ordered Itinerary.
//
// For each predecessor hop u→v the leg is the cheapest parallel edge u→v
// in the graph — the edge whose relaxation won during the traversal, so
// the itinerary's total equals the sum of its leg fares exactly.
//
// Returns:
//
//   - ErrNoRoute if the table records target as unreachable (+Inf). This
//     is the distinguishable "no path" outcome, separate from a zero-fare
//     path and from genuine failures.
//   - ErrCorruptPath if the walk exceeds |V| steps or references an edge
//     absent from the graph: defensive guards against a malformed table.
//
// A source == target query yields the zero-leg, zero-fare itinerary.
//
// Complexity: O(L · deg) for an L-leg itinerary.
func Reconstruct(g *core.Graph, table *core.Table, source, target string) (*Itinerary, error) {
	source = core.Normalize(source)
	target = core.Normalize(target)

	it := &Itinerary{Source: source, Target: target}

	// 1) Degenerate query: already there, nothing to fly.
	if source == target {
		return it, nil
	}

	// 2) Unreachable target: a terminal fact, reported as ErrNoRoute.
	if !table.Reachable(target) {
		return nil, fmt.Errorf("%w: %s→%s", ErrNoRoute, source, target)
	}

	// 3) Walk predecessors backward, bounded by |V| steps. A correct
	//    table cannot produce a longer walk (cheapest paths are simple);
	//    exceeding the bound means the table is malformed.
	maxSteps := g.Order()
	legs := make([]core.Edge, 0, 4)
	for cur := target; cur != source; {
		if len(legs) >= maxSteps {
			return nil, fmt.Errorf("%w: walk exceeded %d steps at %q", ErrCorruptPath, maxSteps, cur)
		}
		prev := table.Prev[cur]
		if prev == "" {
			return nil, fmt.Errorf("%w: missing predecessor for %q", ErrCorruptPath, cur)
		}
		leg, ok := cheapestLeg(g, prev, cur)
		if !ok {
			return nil, fmt.Errorf("%w: no edge %s→%s in graph", ErrCorruptPath, prev, cur)
		}
		legs = append(legs, leg)
		cur = prev
	}

	// 4) Reverse into forward order and aggregate the fare.
	for i, j := 0, len(legs)-1; i < j; i, j = i+1, j-1 {
		legs[i], legs[j] = legs[j], legs[i]
	}
	for _, leg := range legs {
		it.TotalFare += leg.Fare
	}
	it.Legs = legs

	return it, nil
}

// cheapestLeg returns the minimum-fare edge from→to, preferring the first
// record on equal fares — the same edge whose relaxation the engines keep.
func cheapestLeg(g *core.Graph, from, to string) (core.Edge, bool) {
	var best core.Edge
	found := false
	for _, e := range g.Neighbors(from) {
		if e.To != to {
			continue
		}
		if !found || e.Fare < best.Fare {
			best = e
			found = true
		}
	}

	return best, found
}
