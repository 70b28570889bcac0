package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	transitplanner "github.com/theoremus-urban-solutions/transit-planner"
	"github.com/theoremus-urban-solutions/transit-planner/config"
	"github.com/theoremus-urban-solutions/transit-planner/internal"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "transit-planner",
	Short: "Plan trips over a static transit network",
	Long: `transit-planner loads a transit network from a route file or a GTFS feed
and answers path, shortest time, fewest transfer and waypoint queries,
either once from the command line or over HTTP with the serve command.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config.yml (defaults to ./config.yml or ./config/config.yml)")
}

// loadPlanner reads the configuration, sets up logging and builds the network
func loadPlanner() (*transitplanner.Planner, error) {
	var paths []string
	if configPath != "" {
		paths = []string{configPath}
	}
	if err := config.LoadAppConfig(paths...); err != nil {
		return nil, err
	}
	internal.InitLogging(config.Config.Logging.Level, os.Stderr)
	return transitplanner.NewPlannerFromConfig(config.Config)
}
