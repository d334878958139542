package main

import (
	"errors"
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/skylane/farepath/dataset"
	"github.com/skylane/farepath/route"
	"github.com/skylane/farepath/server"
)

// loadDataset reads the --data flag and loads the CSV behind it.
func loadDataset(cmd *cobra.Command) (*dataset.Dataset, error) {
	path, err := cmd.Flags().GetString("data")
	if err != nil {
		return nil, err
	}

	return dataset.Load(path)
}

func newRouteCmd(logger *slog.Logger) *cobra.Command {
	var from, to, algorithm string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute the cheapest itinerary between two airports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd)
			if err != nil {
				return err
			}
			logger.Info("dataset loaded",
				"rows", ds.RowsRead, "skipped", ds.RowsSkipped, "routes", len(ds.Edges()),
			)
			g, err := ds.Graph()
			if err != nil {
				return err
			}

			strategies, err := selectStrategies(algorithm)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, strategy := range strategies {
				start := time.Now()
				it, err := route.CheapestFlight(g, from, to, route.WithStrategy(strategy))
				elapsed := time.Since(start)
				if errors.Is(err, route.ErrNoRoute) {
					fmt.Fprintf(out, "%s: no route from %s to %s\n", strategy, from, to)
					continue
				}
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%s: %s → %s, total $%.2f, %d leg(s), %s\n",
					strategy, it.Source, it.Target, it.TotalFare, len(it.Legs), elapsed.Round(time.Microsecond))

				tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "  FROM\tTO\tFARE\tCARRIER\tMILES")
				for _, leg := range it.Legs {
					fmt.Fprintf(tw, "  %s\t%s\t$%.2f\t%s\t%.0f\n",
						leg.From, leg.To, leg.Fare, orDash(leg.Carrier), leg.Miles)
				}
				tw.Flush()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "origin airport code")
	cmd.Flags().StringVar(&to, "to", "", "destination airport code")
	cmd.Flags().StringVar(&algorithm, "algorithm", "dijkstra", "dijkstra, bellman-ford, or both")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// selectStrategies expands the --algorithm flag, where "both" runs the two
// engines back to back for comparison.
func selectStrategies(name string) ([]route.Strategy, error) {
	if name == "both" {
		return []route.Strategy{route.StrategyDijkstra, route.StrategyBellmanFord}, nil
	}
	s, err := route.ParseStrategy(name)
	if err != nil {
		return nil, err
	}

	return []route.Strategy{s}, nil
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}

	return s
}

func newAirportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "airports",
		Short: "List the airport codes present in the dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd)
			if err != nil {
				return err
			}
			g, err := ds.Graph()
			if err != nil {
				return err
			}
			for _, code := range g.Airports() {
				fmt.Fprintln(cmd.OutOrStdout(), code)
			}

			return nil
		},
	}
}

func newServeCmd(logger *slog.Logger) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the itinerary query API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.LoadConfig()
			cfg.Logger = logger
			if addr != "" {
				cfg.Addr = addr
			}
			if flag := cmd.Flags().Lookup("data"); flag != nil && flag.Changed {
				cfg.DatasetPath = flag.Value.String()
			}

			ds, err := dataset.Load(cfg.DatasetPath)
			if err != nil {
				return err
			}
			logger.Info("dataset loaded",
				"path", cfg.DatasetPath, "rows", ds.RowsRead, "skipped", ds.RowsSkipped,
			)

			s, err := server.New(ds, cfg)
			if err != nil {
				return err
			}

			return s.Run(cfg.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides FAREPATH_ADDR)")

	return cmd
}
