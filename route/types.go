// Package route defines the Itinerary result type, the closed strategy
// set, and the sentinel errors of the farepath query facade.
//
// Errors (sentinel):
//
//	– ErrNoRoute         no itinerary exists between the queried airports.
//	– ErrCorruptPath     the distance table is malformed (engine bug guard).
//	– ErrUnknownStrategy the strategy value is outside the closed set.
package route

import (
	"errors"
	"fmt"
	"math"

	"github.com/skylane/farepath/core"
)

// Sentinel errors returned by Reconstruct and CheapestFlight.
var (
	// ErrNoRoute indicates that the target is unreachable from the source.
	// This is a graph-connectivity fact surfaced as a distinguishable
	// negative result, not a crash: callers must be able to tell "no path"
	// apart from "zero-fare path" and from genuine errors.
	ErrNoRoute = errors.New("route: no itinerary exists between the airports")

	// ErrCorruptPath indicates that walking predecessor links did not
	// terminate within |V| steps or stepped onto an edge the graph does
	// not contain. It guards against a malformed distance table and is a
	// programmer error: with a correct engine it never occurs, and the
	// test suite asserts as much.
	ErrCorruptPath = errors.New("route: corrupt distance table, predecessor walk did not terminate")

	// ErrUnknownStrategy indicates a Strategy value outside the closed set.
	ErrUnknownStrategy = errors.New("route: unknown strategy")

	// ErrNilGraph indicates that a nil *core.Graph was passed to the facade.
	ErrNilGraph = errors.New("route: graph is nil")
)

// Strategy selects the traversal engine behind CheapestFlight. The set is
// closed and small — a tagged enum dispatching to one of two pure
// functions, not a class hierarchy.
type Strategy int

const (
	// StrategyDijkstra is the default engine; requires non-negative fares.
	StrategyDijkstra Strategy = iota

	// StrategyBellmanFord tolerates negative fares and detects negative
	// cycles; used for validation and adjusted-fare datasets.
	StrategyBellmanFord
)

// String returns the canonical spelling used by the CLI and HTTP layers.
func (s Strategy) String() string {
	switch s {
	case StrategyDijkstra:
		return "dijkstra"
	case StrategyBellmanFord:
		return "bellman-ford"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps the canonical spellings back onto the enum.
// Accepted: "dijkstra", "bellman-ford" (and the common "bellmanford").
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "dijkstra":
		return StrategyDijkstra, nil
	case "bellman-ford", "bellmanford":
		return StrategyBellmanFord, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Options configures a CheapestFlight query.
//
// Strategy – the traversal engine (default StrategyDijkstra).
// MaxFare  – optional total-fare cap forwarded to the engine; itineraries
//
//	above the cap are reported as ErrNoRoute.
type Options struct {
	Strategy Strategy
	MaxFare  float64
}

// Option is a functional option for configuring CheapestFlight.
type Option func(*Options)

// WithStrategy selects the traversal engine. Validation of the value is
// deferred to dispatch so that unknown strategies surface as
// ErrUnknownStrategy rather than a panic.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMaxFare forwards a total-fare cap to the selected engine.
func WithMaxFare(limit float64) Option {
	return func(o *Options) {
		o.MaxFare = limit
	}
}

// DefaultOptions returns the zero configuration: Dijkstra, no fare cap.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyDijkstra,
		MaxFare:  math.Inf(1),
	}
}

// Itinerary is the result of one cheapest-flight query: the ordered leg
// sequence from Source to Target plus the aggregate fare.
//
// Invariants (asserted by the test suite):
//
//   - Legs[0].From == Source and Legs[len-1].To == Target when legs exist.
//   - Legs[i].To == Legs[i+1].From for every i (contiguity).
//   - TotalFare equals the sum of the leg fares.
//   - Source == Target yields zero legs and zero fare.
//
// An Itinerary is produced fresh per query and owned by the caller; it
// shares no mutable state with the graph or with other queries.
type Itinerary struct {
	// Source and Target are the normalized endpoint codes of the query.
	Source string
	Target string

	// Legs is the forward-ordered sequence of route edges flown.
	Legs []core.Edge

	// TotalFare is the sum of the leg fares.
	TotalFare float64
}

// Stops returns the number of intermediate stops: legs minus one, zero for
// direct flights and for the degenerate Source == Target itinerary.
func (it *Itinerary) Stops() int {
	if len(it.Legs) <= 1 {
		return 0
	}

	return len(it.Legs) - 1
}

// Airports returns the visited airport codes in order, Source first.
// A zero-leg itinerary yields just the source.
func (it *Itinerary) Airports() []string {
	codes := make([]string, 0, len(it.Legs)+1)
	codes = append(codes, it.Source)
	for _, leg := range it.Legs {
		codes = append(codes, leg.To)
	}

	return codes
}
