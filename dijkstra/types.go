// Package dijkstra defines the configuration options and sentinel errors
// for the default (non-negative fares) shortest-path strategy of farepath.
//
// Options:
//
//	– Target:  optional destination; extraction of Target finalizes the run early.
//	– MaxFare: optional cap; itineraries costing more are treated as unreachable.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if the provided graph pointer is nil.
//	– ErrEmptySource   if the provided source code is empty.
//	– ErrSourceNotFound if the source airport does not exist in the graph.
//	– ErrNegativeFare  if any edge carries a negative fare (use bellmanford instead).
//	– ErrBadMaxFare    if MaxFare is negative or NaN.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the source airport code is empty.
	ErrEmptySource = errors.New("dijkstra: source airport code is empty")

	// ErrSourceNotFound indicates that the source airport is not part of
	// the graph's node set.
	ErrSourceNotFound = errors.New("dijkstra: source airport not found in graph")

	// ErrNegativeFare indicates that a negative edge fare was detected.
	// Dijkstra's greedy invariant requires non-negative weights; route
	// datasets with negative adjustments belong to the bellmanford strategy.
	ErrNegativeFare = errors.New("dijkstra: negative fare encountered")

	// ErrBadMaxFare indicates that MaxFare was set to a negative or NaN value.
	ErrBadMaxFare = errors.New("dijkstra: MaxFare must be a non-negative number")
)

// Options configures a single ShortestPath run.
//
// Target  – optional destination code; when set, the run stops as soon as
//
//	Target is extracted from the frontier. Early exit is purely an
//	optimization: every airport settled before the stop already
//	carries its final cost.
//
// MaxFare – itineraries whose total fare would exceed this cap are not
//
//	explored; their endpoints remain unreachable in the table.
//	Default is +Inf (no cap).
type Options struct {
	Target  string
	MaxFare float64
}

// Option is a functional option for configuring ShortestPath.
type Option func(*Options)

// WithTarget enables early termination once the given airport is settled.
// The code is matched after case normalization.
func WithTarget(code string) Option {
	return func(o *Options) {
		o.Target = code
	}
}

// WithMaxFare caps exploration at the given total fare. Airports only
// reachable above the cap stay at +Inf in the resulting table.
// Negative or NaN caps panic with ErrBadMaxFare: an invalid cap is a
// programming error, not a data condition.
func WithMaxFare(limit float64) Option {
	return func(o *Options) {
		if limit < 0 || math.IsNaN(limit) {
			panic(ErrBadMaxFare.Error())
		}
		o.MaxFare = limit
	}
}

// DefaultOptions returns the zero configuration: no target, no fare cap.
func DefaultOptions() Options {
	return Options{
		Target:  "",
		MaxFare: math.Inf(1),
	}
}
