// Package bellmanford defines configuration options and sentinel errors
// for the Bellman-Ford shortest-path strategy of farepath.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrEmptySource    if the provided source code is empty.
//	– ErrSourceNotFound if the source airport does not exist in the graph.
//	– ErrNegativeCycle  if a negative fare cycle is reachable from the source.
//	– ErrBadMaxFare     if MaxFare is negative or NaN.
package bellmanford

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrEmptySource indicates that the source airport code is empty.
	ErrEmptySource = errors.New("bellmanford: source airport code is empty")

	// ErrSourceNotFound indicates that the source airport is not part of
	// the graph's node set.
	ErrSourceNotFound = errors.New("bellmanford: source airport not found in graph")

	// ErrNegativeCycle indicates a cycle with negative total fare reachable
	// from the query source. "Minimum fare" is undefined through such a
	// cycle, so the run aborts — no partial table is ever returned.
	ErrNegativeCycle = errors.New("bellmanford: negative fare cycle reachable from source")

	// ErrBadMaxFare indicates that MaxFare was set to a negative or NaN value.
	ErrBadMaxFare = errors.New("bellmanford: MaxFare must be a non-negative number")
)

// Options configures a single ShortestPath run.
//
// MaxFare – candidate fares above this cap are never recorded, so any
// airport only reachable above the cap is reported as unreachable. Mirrors
// the dijkstra option so the two strategies stay interchangeable behind
// route.CheapestFlight. Default is +Inf (no cap).
type Options struct {
	MaxFare float64
}

// Option is a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxFare caps the search: relaxations whose candidate fare exceeds
// the cap are skipped, so airports beyond the cap come back unreachable.
// Yields the same table as dijkstra.WithMaxFare. Negative or NaN caps
// panic with ErrBadMaxFare.
func WithMaxFare(limit float64) Option {
	return func(o *Options) {
		if limit < 0 || math.IsNaN(limit) {
			panic(ErrBadMaxFare.Error())
		}
		o.MaxFare = limit
	}
}

// DefaultOptions returns the zero configuration: no fare cap.
func DefaultOptions() Options {
	return Options{
		MaxFare: math.Inf(1),
	}
}
