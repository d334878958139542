package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skylane/farepath/bellmanford"
	"github.com/skylane/farepath/core"
	"github.com/skylane/farepath/route"
)

// legJSON is one itinerary leg with the presentation metadata a map or
// table front end renders.
type legJSON struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	FromCity   string  `json:"from_city,omitempty"`
	ToCity     string  `json:"to_city,omitempty"`
	Fare       float64 `json:"fare"`
	Carrier    string  `json:"carrier,omitempty"`
	Passengers float64 `json:"passengers,omitempty"`
	Miles      float64 `json:"miles,omitempty"`
}

// itineraryJSON is the response body for a single computed itinerary.
type itineraryJSON struct {
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	Airports  []string  `json:"airports"`
	Legs      []legJSON `json:"legs"`
	TotalFare float64   `json:"total_fare"`
	Stops     int       `json:"stops"`
	Algorithm string    `json:"algorithm"`
	RuntimeMS float64   `json:"runtime_ms"`
}

func toJSON(it *route.Itinerary, strategy route.Strategy, elapsed time.Duration) itineraryJSON {
	legs := make([]legJSON, 0, len(it.Legs))
	for _, l := range it.Legs {
		legs = append(legs, legJSON{
			From:       l.From,
			To:         l.To,
			FromCity:   l.OriginCity,
			ToCity:     l.DestinationCity,
			Fare:       l.Fare,
			Carrier:    l.Carrier,
			Passengers: l.Passengers,
			Miles:      l.Miles,
		})
	}

	return itineraryJSON{
		Source:    it.Source,
		Target:    it.Target,
		Airports:  it.Airports(),
		Legs:      legs,
		TotalFare: it.TotalFare,
		Stops:     it.Stops(),
		Algorithm: strategy.String(),
		RuntimeMS: float64(elapsed.Microseconds()) / 1000.0,
	}
}

// writeQueryError maps the engine's outcome taxonomy onto HTTP statuses:
// input errors are 400/404, the negative connectivity result is 404, a
// data-integrity violation is 422, anything else is 500.
func (s *Server) writeQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrUnknownAirport), errors.Is(err, core.ErrEmptyAirport):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "kind": "unknown_airport"})
	case errors.Is(err, route.ErrNoRoute):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "kind": "no_route"})
	case errors.Is(err, bellmanford.ErrNegativeCycle):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": "negative_cycle"})
	case errors.Is(err, route.ErrUnknownStrategy):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "unknown_strategy"})
	default:
		s.log.Error("query failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "kind": "internal"})
	}
}

func (s *Server) handleAirports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"airports": s.graph.Airports()})
}

func (s *Server) handleCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": s.ds.Cities()})
}

// handleRoute computes the cheapest itinerary between two airports:
// GET /api/route?from=ABE&to=PIE&algorithm=dijkstra
func (s *Server) handleRoute(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return
	}
	strategy, err := route.ParseStrategy(c.Query("algorithm"))
	if err != nil {
		s.writeQueryError(c, err)
		return
	}

	start := time.Now()
	it, err := route.CheapestFlight(s.graph, from, to, route.WithStrategy(strategy))
	if err != nil {
		s.writeQueryError(c, err)
		return
	}
	s.log.Info("route computed",
		"from", it.Source, "to", it.Target,
		"algorithm", strategy.String(), "total_fare", it.TotalFare,
	)

	c.JSON(http.StatusOK, toJSON(it, strategy, time.Since(start)))
}

// handleCompare runs both strategies on one query so a front end can show
// them side by side with runtimes:
// GET /api/route/compare?from=ABE&to=PIE
func (s *Server) handleCompare(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return
	}

	results := make(map[string]itineraryJSON, 2)
	for _, strategy := range []route.Strategy{route.StrategyDijkstra, route.StrategyBellmanFord} {
		start := time.Now()
		it, err := route.CheapestFlight(s.graph, from, to, route.WithStrategy(strategy))
		if err != nil {
			s.writeQueryError(c, err)
			return
		}
		results[strategy.String()] = toJSON(it, strategy, time.Since(start))
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// handleCityRoute searches every origin-airport × destination-airport pair
// of two cities and returns the cheapest combination, mirroring the
// dashboard's "automatically choose the cheapest airport pair" mode:
// GET /api/route/city?from_city=Tampa,%20FL&to_city=Chicago,%20IL
func (s *Server) handleCityRoute(c *gin.Context) {
	fromCity := c.Query("from_city")
	toCity := c.Query("to_city")
	if fromCity == "" || toCity == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from_city and to_city query parameters are required"})
		return
	}
	strategy, err := route.ParseStrategy(c.Query("algorithm"))
	if err != nil {
		s.writeQueryError(c, err)
		return
	}

	origins := s.ds.AirportsForCity(fromCity)
	destinations := s.ds.AirportsForCity(toCity)
	if len(origins) == 0 || len(destinations) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "one or both cities have no airports in the dataset",
			"kind":  "unknown_city",
		})
		return
	}

	start := time.Now()
	best, err := cheapestPair(s.graph, origins, destinations, strategy)
	if err != nil {
		s.writeQueryError(c, err)
		return
	}
	s.log.Info("city route computed",
		"from_city", fromCity, "to_city", toCity,
		"pair", best.Source+"-"+best.Target, "total_fare", best.TotalFare,
	)

	c.JSON(http.StatusOK, toJSON(best, strategy, time.Since(start)))
}

// cheapestPair minimizes over the airport product. Pairs with no route are
// skipped; only when every pair is disconnected does the query surface
// ErrNoRoute. Iteration order is deterministic (both lists are sorted), so
// ties resolve to the first pair.
func cheapestPair(g *core.Graph, origins, destinations []string, strategy route.Strategy) (*route.Itinerary, error) {
	var best *route.Itinerary
	for _, o := range origins {
		for _, d := range destinations {
			if o == d {
				// Same airport on both sides of a city pair; a zero-leg
				// itinerary is not a flight.
				continue
			}
			it, err := route.CheapestFlight(g, o, d, route.WithStrategy(strategy))
			if errors.Is(err, route.ErrNoRoute) {
				continue
			}
			if err != nil {
				return nil, err
			}
			if best == nil || it.TotalFare < best.TotalFare {
				best = it
			}
		}
	}
	if best == nil {
		return nil, route.ErrNoRoute
	}

	return best, nil
}
