package route

import (
	"fmt"
	"math"

	"github.com/skylane/farepath/bellmanford"
	"github.com/skylane/farepath/core"
	"github.com/skylane/farepath/dijkstra"
)

// CheapestFlight is the single semantic entry point of the engine: the
// minimum-fare itinerary from source to target over the given graph.
//
// It validates both endpoints against the graph's node set, dispatches to
// the selected strategy, and reconstructs the itinerary from the resulting
// distance table. It is a pure function of its inputs plus the immutable
// graph: identical inputs always yield an identical Itinerary, including
// the stable tie-break on equal-fare paths.
//
// Errors (all surfaced to the immediate caller, never retried — the
// computation is deterministic, so retrying cannot change the outcome):
//
//   - core.ErrUnknownAirport     either endpoint is outside the node set,
//     wrapped with the offending code. Absence is reported even when the
//     airport would merely be unreachable: an unknown code usually means
//     an input error, which deserves a different answer.
//   - ErrNoRoute                 target unreachable from source.
//   - bellmanford.ErrNegativeCycle  under StrategyBellmanFord.
//   - dijkstra.ErrNegativeFare      under StrategyDijkstra on bad data.
//   - ErrUnknownStrategy         strategy outside the closed set.
//   - ErrCorruptPath             internal-invariant violation; must not
//     occur with a correct engine.
//
// On failure no partially computed Itinerary is returned.
func CheapestFlight(g *core.Graph, source, target string, opts ...Option) (*Itinerary, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph and both endpoints before any traversal.
	if g == nil {
		return nil, ErrNilGraph
	}
	source = core.Normalize(source)
	target = core.Normalize(target)
	for _, code := range []string{source, target} {
		if code == "" {
			return nil, core.ErrEmptyAirport
		}
		if !g.Contains(code) {
			return nil, fmt.Errorf("%w: %q", core.ErrUnknownAirport, code)
		}
	}

	// 3) Degenerate query short-circuits before any engine work.
	if source == target {
		return &Itinerary{Source: source, Target: target}, nil
	}

	// 4) Dispatch the closed strategy set to one of two pure functions.
	table, err := shortestPath(g, source, target, cfg)
	if err != nil {
		return nil, err
	}

	// 5) Assemble the itinerary from the distance table.
	return Reconstruct(g, table, source, target)
}

// shortestPath runs the selected engine and returns its distance table.
func shortestPath(g *core.Graph, source, target string, cfg Options) (*core.Table, error) {
	switch cfg.Strategy {
	case StrategyDijkstra:
		opts := []dijkstra.Option{dijkstra.WithTarget(target)}
		if !math.IsInf(cfg.MaxFare, 1) {
			opts = append(opts, dijkstra.WithMaxFare(cfg.MaxFare))
		}

		return dijkstra.ShortestPath(g, source, opts...)
	case StrategyBellmanFord:
		var opts []bellmanford.Option
		if !math.IsInf(cfg.MaxFare, 1) {
			opts = append(opts, bellmanford.WithMaxFare(cfg.MaxFare))
		}

		return bellmanford.ShortestPath(g, source, opts...)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(cfg.Strategy))
	}
}
