package network

import (
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/theoremus-urban-solutions/transit-planner/config"
	"github.com/theoremus-urban-solutions/transit-planner/graph"
	"github.com/theoremus-urban-solutions/transit-planner/gtfs"
)

// AddRoutes adds every route of rf to g in file order
func AddRoutes(g *graph.TransitGraph, rf RouteFile) error {
	for _, r := range rf.Routes {
		if err := g.AddRoute(r.Stops, r.Name, r.TravelTimes); err != nil {
			return err
		}
	}
	return nil
}

// Network is a built transit graph together with the stop details known from
// its sources. Stops that only appear in a route file have no details.
type Network struct {
	Graph *graph.TransitGraph
	Stops map[string]gtfs.Stop
}

// Build creates the transit network described by cfg. Route file routes are
// added before GTFS patterns, which matters for EdgeBetween tie-breaks.
func Build(cfg config.NetworkConfig) (*Network, error) {
	start := time.Now()
	n := &Network{Graph: graph.New(), Stops: map[string]gtfs.Stop{}}

	if cfg.RoutesFile != "" {
		rf, err := LoadRouteFile(cfg.RoutesFile)
		if err != nil {
			return nil, err
		}
		if err := AddRoutes(n.Graph, rf); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.RoutesFile, err)
		}
		slog.Info("route file added to network", "file", cfg.RoutesFile, "routes", len(rf.Routes))
	}

	if cfg.GTFS.Path != "" {
		idx, err := gtfs.NewGTFSIndexFromConfig(cfg.GTFS)
		if err != nil {
			return nil, err
		}
		if _, err := idx.AddToGraph(n.Graph); err != nil {
			return nil, fmt.Errorf("%s (agency %s): %w", cfg.GTFS.Path, idx.GetAgencyID(), err)
		}
		for _, s := range idx.GetAllStops() {
			if n.Graph.HasStop(s.ID) {
				n.Stops[s.ID] = s
			}
		}
	}

	if n.Graph.StopCount() == 0 {
		slog.Warn("network is empty")
	}
	slog.Info("network built", "stops", n.Graph.StopCount(), "edges", n.Graph.EdgeCount(), "took", time.Since(start))
	return n, nil
}
