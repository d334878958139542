// Package bellmanford_test contains unit tests for the Bellman-Ford
// strategy: validation, the canonical fare scenarios, negative edges
// with and without reachable negative cycles, and determinism.
package bellmanford_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/skylane/farepath/bellmanford"
	"github.com/skylane/farepath/core"
)

func buildGraph(t *testing.T, records []core.Edge) *core.Graph {
	t.Helper()
	g, err := core.Build(records)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	return g
}

// TestShortestPath_Validation verifies the error order for invalid inputs.
func TestShortestPath_Validation(t *testing.T) {
	if _, err := bellmanford.ShortestPath(nil, ""); !errors.Is(err, bellmanford.ErrEmptySource) {
		t.Errorf("empty source: want ErrEmptySource, got %v", err)
	}
	if _, err := bellmanford.ShortestPath(nil, "JFK"); !errors.Is(err, bellmanford.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	g := buildGraph(t, []core.Edge{{From: "A", To: "B", Fare: 1}})
	if _, err := bellmanford.ShortestPath(g, "ZZZ"); !errors.Is(err, bellmanford.ErrSourceNotFound) {
		t.Errorf("missing source: want ErrSourceNotFound, got %v", err)
	}
}

// TestShortestPath_Triangle covers the canonical scenario shared with the
// dijkstra tests: A→B(100), B→C(50), A→C(200) settles C at 150.
func TestShortestPath_Triangle(t *testing.T) {
	g := buildGraph(t, []core.Edge{
		{From: "A", To: "B", Fare: 100},
		{From: "B", To: "C", Fare: 50},
		{From: "A", To: "C", Fare: 200},
	})

	tab, err := bellmanford.ShortestPath(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tab.Cost["C"]; got != 150 {
		t.Errorf("Cost[C] = %v; want 150", got)
	}
	if got := tab.Prev["C"]; got != "B" {
		t.Errorf("Prev[C] = %q; want B", got)
	}
}

// TestShortestPath_NegativeEdgeNoCycle verifies that a negative fare that
// closes no reachable negative cycle is handled, not rejected.
func TestShortestPath_NegativeEdgeNoCycle(t *testing.T) {
	// A→B(100), B→C(−60): the itinerary A→B→C nets 40.
	g := buildGraph(t, []core.Edge{
		{From: "A", To: "B", Fare: 100},
		{From: "B", To: "C", Fare: -60},
	})

	tab, err := bellmanford.ShortestPath(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tab.Cost["C"]; got != 40 {
		t.Errorf("Cost[C] = %v; want 40", got)
	}
}

// TestShortestPath_NegativeCycle covers the canonical scenario: adding
// B→A(−200) to A→B(100) forms a reachable negative cycle and the run must
// abort with ErrNegativeCycle.
func TestShortestPath_NegativeCycle(t *testing.T) {
	g := buildGraph(t, []core.Edge{
		{From: "A", To: "B", Fare: 100},
		{From: "B", To: "A", Fare: -200},
	})

	tab, err := bellmanford.ShortestPath(g, "A")
	if !errors.Is(err, bellmanford.ErrNegativeCycle) {
		t.Fatalf("want ErrNegativeCycle, got %v", err)
	}
	if tab != nil {
		t.Error("no partial table may be returned on a negative cycle")
	}
}

// TestShortestPath_NegativeCycleUnreachable verifies that a negative cycle
// the source cannot reach does not poison the query.
func TestShortestPath_NegativeCycleUnreachable(t *testing.T) {
	g := buildGraph(t, []core.Edge{
		{From: "A", To: "B", Fare: 10},
		// Disconnected negative cycle C⇄D.
		{From: "C", To: "D", Fare: 5},
		{From: "D", To: "C", Fare: -50},
	})

	tab, err := bellmanford.ShortestPath(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tab.Cost["B"]; got != 10 {
		t.Errorf("Cost[B] = %v; want 10", got)
	}
	if !math.IsInf(tab.Cost["C"], 1) || !math.IsInf(tab.Cost["D"], 1) {
		t.Errorf("C/D must stay unreachable, got %v / %v", tab.Cost["C"], tab.Cost["D"])
	}
}

// TestShortestPath_ParallelEdges verifies the cheaper of two carriers wins.
func TestShortestPath_ParallelEdges(t *testing.T) {
	g := buildGraph(t, []core.Edge{
		{From: "A", To: "B", Fare: 100},
		{From: "A", To: "B", Fare: 80},
	})

	tab, err := bellmanford.ShortestPath(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tab.Cost["B"]; got != 80 {
		t.Errorf("Cost[B] = %v; want 80", got)
	}
}

// TestShortestPath_MaxFare verifies the cap mirrors the dijkstra option.
func TestShortestPath_MaxFare(t *testing.T) {
	g := buildGraph(t, []core.Edge{
		{From: "A", To: "B", Fare: 60},
		{From: "B", To: "C", Fare: 60},
	})

	tab, err := bellmanford.ShortestPath(g, "A", bellmanford.WithMaxFare(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tab.Reachable("B") {
		t.Error("B at fare 60 must remain reachable under cap 100")
	}
	if tab.Reachable("C") {
		t.Errorf("C at fare 120 must be unreachable under cap 100, got %v", tab.Cost["C"])
	}
	if tab.Prev["C"] != "" {
		t.Errorf("capped airport must lose its predecessor, got %q", tab.Prev["C"])
	}
}

// TestShortestPath_Deterministic verifies repeated runs yield deeply equal tables.
func TestShortestPath_Deterministic(t *testing.T) {
	g := buildGraph(t, []core.Edge{
		{From: "A", To: "B", Fare: 100},
		{From: "A", To: "B", Fare: 80},
		{From: "B", To: "C", Fare: 50},
		{From: "A", To: "C", Fare: 200},
		{From: "C", To: "D", Fare: -25},
	})

	first, err := bellmanford.ShortestPath(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		next, err := bellmanford.ShortestPath(g, "A")
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if !reflect.DeepEqual(first, next) {
			t.Fatalf("run %d diverged:\nfirst=%+v\nnext=%+v", i, first, next)
		}
	}
}
