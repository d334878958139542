// Package core defines the central Edge and Graph types of farepath
// and the sentinel errors shared by every query entry point.
//
// An airport is identified by its IATA-style code: a short, uppercase
// string ("JFK", "LAX"). Codes are case-normalized on graph construction,
// so callers may pass "jfk" and "JFK" interchangeably at the query layer.
//
// Errors:
//
//	ErrUnknownAirport  - query referenced an airport absent from the graph.
//	ErrEmptyAirport    - a route record or query carried an empty code.
package core

import (
	"errors"
	"strings"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownAirport indicates that a query referenced an airport code
	// that is not part of the graph's node set. This is distinct from
	// genuine unreachability: an absent code usually means a data or
	// input error, and it is surfaced verbatim to the caller.
	ErrUnknownAirport = errors.New("core: unknown airport code")

	// ErrEmptyAirport indicates that a route record or a query carried
	// an empty airport code after normalization.
	ErrEmptyAirport = errors.New("core: empty airport code")
)

// Edge represents one directional flight offer between two airports.
//
// From and To are uppercase airport codes. Fare is the generalized cost of
// the leg; it must be non-negative under the Dijkstra strategy, while the
// Bellman-Ford strategy additionally tolerates negative fares (validation
// runs, fare adjustments). The remaining fields are presentation metadata
// carried through from the dataset; the engine never reads them.
type Edge struct {
	// From is the origin airport code.
	From string

	// To is the destination airport code.
	To string

	// Fare is the cost of flying this leg.
	Fare float64

	// Carrier is the airline with the largest market share on the leg,
	// when the dataset reports one.
	Carrier string

	// OriginCity and DestinationCity name the metro areas served,
	// when the dataset reports them.
	OriginCity      string
	DestinationCity string

	// Passengers is the reported passenger volume for the leg; zero when unknown.
	Passengers float64

	// Miles is the non-stop distance in miles; zero when unknown.
	Miles float64
}

// Normalize returns the canonical form of an airport code:
// surrounding whitespace removed, letters uppercased.
// Normalize does not validate length or character set; the graph
// builder rejects empty codes and the dataset loader filters the rest.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
