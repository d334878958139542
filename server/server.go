// Package server exposes the farepath query engine over HTTP: a JSON API
// backed by one loaded dataset, suitable for driving a map or dashboard
// front end.
//
// Endpoints:
//
//	GET /health                  liveness probe
//	GET /api/airports            sorted airport codes in the graph
//	GET /api/cities              sorted city names in the dataset
//	GET /api/route               cheapest itinerary between two airports
//	GET /api/route/compare       both strategies on one query, with runtimes
//	GET /api/route/city          cheapest itinerary between two cities
//
// The server holds the dataset's immutable graph and shares it across all
// requests without locking; every query allocates its own traversal state.
package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/skylane/farepath/core"
	"github.com/skylane/farepath/dataset"
)

// Default listen address when neither flag nor environment provides one.
const DefaultAddr = ":8080"

// Config carries the process-level settings of the HTTP server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// DatasetPath is the CSV file to load at startup.
	DatasetPath string

	// AllowOrigins configures CORS for browser front ends; empty means
	// allow all origins (the dashboard use case).
	AllowOrigins []string

	// Logger receives structured request and startup logs; nil selects a
	// text handler on stderr.
	Logger *slog.Logger
}

// LoadConfig assembles a Config from the environment, reading a .env file
// first when one exists (ignored otherwise). Recognized variables:
//
//	FAREPATH_ADDR     listen address  (default ":8080")
//	FAREPATH_DATASET  dataset path    (default "Aviation.csv")
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:        os.Getenv("FAREPATH_ADDR"),
		DatasetPath: os.Getenv("FAREPATH_DATASET"),
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.DatasetPath == "" {
		cfg.DatasetPath = "Aviation.csv"
	}

	return cfg
}

// Server wires one loaded dataset to the HTTP routes.
type Server struct {
	ds     *dataset.Dataset
	graph  *core.Graph
	router *gin.Engine
	log    *slog.Logger
}

// New builds a Server around an already-loaded dataset. The flight graph
// is constructed (or reused) here so that the first request never pays
// the build cost.
func New(ds *dataset.Dataset, cfg Config) (*Server, error) {
	g, err := ds.Graph()
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	s := &Server{
		ds:    ds,
		graph: g,
		log:   logger,
	}
	s.router = s.buildRouter(cfg)

	return s, nil
}

// Router returns the configured gin engine; exposed for tests and for
// embedding into a larger mux.
func (s *Server) Router() *gin.Engine { return s.router }

// Run starts serving on addr and blocks until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info("farepath server listening",
		"addr", addr,
		"airports", s.graph.Order(),
		"routes", s.graph.EdgeCount(),
	)

	return s.router.Run(addr)
}

func (s *Server) buildRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	api.GET("/airports", s.handleAirports)
	api.GET("/cities", s.handleCities)
	api.GET("/route", s.handleRoute)
	api.GET("/route/compare", s.handleCompare)
	api.GET("/route/city", s.handleCityRoute)

	return r
}
