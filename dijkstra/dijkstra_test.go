// Package dijkstra_test contains unit tests for the Dijkstra strategy:
// input validation, the canonical fare scenarios, parallel edges, fare
// caps, early exit, and determinism of repeated runs.
package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/skylane/farepath/core"
	"github.com/skylane/farepath/dijkstra"
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
	// Empty source has priority over a nil graph.
	if _, err := dijkstra.ShortestPath(nil, "  "); !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Errorf("empty source: want ErrEmptySource, got %v", err)
	}
	// Nil graph with a source present.
	if _, err := dijkstra.ShortestPath(nil, "JFK"); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	// Source outside the node set.
	g := buildGraph(t, []core.Edge{{From: "A", To: "B", Fare: 1}})
	if _, err := dijkstra.ShortestPath(g, "ZZZ"); !errors.Is(err, dijkstra.ErrSourceNotFound) {
		t.Errorf("missing source: want ErrSourceNotFound, got %v", err)
	}
	// Negative fare anywhere in the graph fails fast.
	gNeg := buildGraph(t, []core.Edge{
		{From: "A", To: "B", Fare: 100},
		{From: "B", To: "A", Fare: -200},
	})
	if _, err := dijkstra.ShortestPath(gNeg, "A"); !errors.Is(err, dijkstra.ErrNegativeFare) {
		t.Errorf("negative fare: want ErrNegativeFare, got %v", err)
	}
}

// TestShortestPath_Triangle covers the canonical scenario:
// A→B(100), B→C(50), A→C(200) — the two-leg itinerary at 150 beats the
// direct edge at 200.
func TestShortestPath_Triangle(t *testing.T) {
	g := buildGraph(t, []core.Edge{
		{From: "A", To: "B", Fare: 100},
		{From: "B", To: "C", Fare: 50},
		{From: "A", To: "C", Fare: 200},
	})

	tab, err := dijkstra.ShortestPath(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tab.Cost["C"]; got != 150 {
		t.Errorf("Cost[C] = %v; want 150", got)
	}
	if got := tab.Prev["C"]; got != "B" {
		t.Errorf("Prev[C] = %q; want B", got)
	}
	if got := tab.Prev["B"]; got != "A" {
		t.Errorf("Prev[B] = %q; want A", got)
	}
	if tab.Cost["A"] != 0 || tab.Prev["A"] != "" {
		t.Errorf("source row = (%v, %q); want (0, \"\")", tab.Cost["A"], tab.Prev["A"])
	}
}

// TestShortestPath_ParallelEdges verifies the cheaper of two carriers wins:
// A→B(100) and A→B(80) must settle B at 80.
func TestShortestPath_ParallelEdges(t *testing.T) {
	g := buildGraph(t, []core.Edge{
		{From: "A", To: "B", Fare: 100, Carrier: "AA"},
		{From: "A", To: "B", Fare: 80, Carrier: "WN"},
	})

	tab, err := dijkstra.ShortestPath(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tab.Cost["B"]; got != 80 {
		t.Errorf("Cost[B] = %v; want 80", got)
	}
}

// TestShortestPath_Unreachable verifies +Inf cost and empty predecessor for
// a disconnected airport — a terminal state, not an error.
func TestShortestPath_Unreachable(t *testing.T) {
	g := buildGraph(t, []core.Edge{
		{From: "A", To: "B", Fare: 10},
		{From: "C", To: "D", Fare: 10},
	})

	tab, err := dijkstra.ShortestPath(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(tab.Cost["D"], 1) {
		t.Errorf("Cost[D] = %v; want +Inf", tab.Cost["D"])
	}
	if tab.Prev["D"] != "" {
		t.Errorf("Prev[D] = %q; want empty", tab.Prev["D"])
	}
	if tab.Reachable("D") {
		t.Error("D must not be reachable from A")
	}
}

// TestShortestPath_TieBreakStable verifies that among equal-cost paths the
// first-recorded predecessor is kept (strict-less relaxation).
func TestShortestPath_TieBreakStable(t *testing.T) {
	// Two routes A→C at cost 100: via the direct edge (recorded first)
	// and via B (50+50). The direct edge relaxes C first and must stick.
	g := buildGraph(t, []core.Edge{
		{From: "A", To: "C", Fare: 100},
		{From: "A", To: "B", Fare: 50},
		{From: "B", To: "C", Fare: 50},
	})

	tab, err := dijkstra.ShortestPath(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tab.Cost["C"]; got != 100 {
		t.Errorf("Cost[C] = %v; want 100", got)
	}
	if got := tab.Prev["C"]; got != "A" {
		t.Errorf("Prev[C] = %q; want A (first-recorded path wins ties)", got)
	}
}

// TestShortestPath_MaxFare verifies the optional cap: airports only
// reachable above it stay unreachable.
func TestShortestPath_MaxFare(t *testing.T) {
	g := buildGraph(t, []core.Edge{
		{From: "A", To: "B", Fare: 60},
		{From: "B", To: "C", Fare: 60},
	})

	tab, err := dijkstra.ShortestPath(g, "A", dijkstra.WithMaxFare(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tab.Reachable("B") {
		t.Error("B at fare 60 must remain reachable under cap 100")
	}
	if tab.Reachable("C") {
		t.Errorf("C at fare 120 must be unreachable under cap 100, got %v", tab.Cost["C"])
	}

	// Invalid caps panic when the option is applied.
	defer func() {
		if recover() == nil {
			t.Error("WithMaxFare(-1) must panic")
		}
	}()
	opts := dijkstra.DefaultOptions()
	dijkstra.WithMaxFare(-1)(&opts)
}

// TestShortestPath_EarlyExit verifies that WithTarget leaves the target's
// cost identical to a full run.
func TestShortestPath_EarlyExit(t *testing.T) {
	g := buildGraph(t, []core.Edge{
		{From: "A", To: "B", Fare: 1},
		{From: "B", To: "C", Fare: 1},
		{From: "C", To: "D", Fare: 1},
		{From: "A", To: "D", Fare: 10},
	})

	full, err := dijkstra.ShortestPath(g, "A")
	if err != nil {
		t.Fatalf("full run: %v", err)
	}
	early, err := dijkstra.ShortestPath(g, "A", dijkstra.WithTarget("c"))
	if err != nil {
		t.Fatalf("early run: %v", err)
	}
	if full.Cost["C"] != early.Cost["C"] {
		t.Errorf("early exit changed Cost[C]: full=%v early=%v", full.Cost["C"], early.Cost["C"])
	}
	if early.Prev["C"] != "B" {
		t.Errorf("Prev[C] = %q; want B", early.Prev["C"])
	}
}

// TestShortestPath_Deterministic verifies that repeated identical runs
// produce deeply equal tables.
func TestShortestPath_Deterministic(t *testing.T) {
	g := buildGraph(t, []core.Edge{
		{From: "A", To: "B", Fare: 100},
		{From: "A", To: "B", Fare: 80},
		{From: "B", To: "C", Fare: 50},
		{From: "A", To: "C", Fare: 200},
		{From: "C", To: "D", Fare: 25},
		{From: "B", To: "D", Fare: 90},
	})

	first, err := dijkstra.ShortestPath(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		next, err := dijkstra.ShortestPath(g, "A")
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if !reflect.DeepEqual(first, next) {
			t.Fatalf("run %d diverged:\nfirst=%+v\nnext=%+v", i, first, next)
		}
	}
}
