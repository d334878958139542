// Command farepath is the command-line front end of the cheapest-flight
// engine: it loads a fare dataset, answers itinerary queries, compares
// the two traversal strategies, and serves the HTTP API.
//
// Usage:
//
//	farepath route --data Aviation.csv --from ABE --to PIE
//	farepath route --data Aviation.csv --from ABE --to PIE --algorithm both
//	farepath airports --data Aviation.csv
//	farepath serve --data Aviation.csv --addr :8080
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := &cobra.Command{
		Use:           "farepath",
		Short:         "Cheapest-flight itineraries over a point-to-point fare dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("data", "Aviation.csv", "path to the fare dataset CSV")

	root.AddCommand(
		newRouteCmd(logger),
		newAirportsCmd(),
		newServeCmd(logger),
	)

	if err := root.Execute(); err != nil {
		logger.Error("farepath failed", "error", err)
		os.Exit(1)
	}
}
