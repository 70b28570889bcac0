package transitplanner

import (
	"errors"
	"fmt"

	"github.com/theoremus-urban-solutions/transit-planner/config"
	"github.com/theoremus-urban-solutions/transit-planner/graph"
	"github.com/theoremus-urban-solutions/transit-planner/gtfs"
	"github.com/theoremus-urban-solutions/transit-planner/network"
	"github.com/theoremus-urban-solutions/transit-planner/routing"
)

// ErrUnknownStop is returned by Planner queries naming a stop that is not in
// the network
var ErrUnknownStop = errors.New("unknown stop")

// Planner answers routing queries over a transit graph that no longer changes
type Planner struct {
	graph            *graph.TransitGraph
	stops            map[string]gtfs.Stop
	maxTransferPaths int
}

// NewPlanner wraps an already built graph that has no stop details
func NewPlanner(g *graph.TransitGraph, cfg config.PlannerConfig) *Planner {
	return NewPlannerForNetwork(&network.Network{Graph: g}, cfg)
}

// NewPlannerForNetwork wraps a built network
func NewPlannerForNetwork(n *network.Network, cfg config.PlannerConfig) *Planner {
	limit := cfg.MaxTransferPaths
	if limit <= 0 {
		limit = routing.DefaultTransferPaths
	}
	return &Planner{graph: n.Graph, stops: n.Stops, maxTransferPaths: limit}
}

// NewPlannerFromConfig builds the network described by cfg and wraps it
func NewPlannerFromConfig(cfg config.AppConfig) (*Planner, error) {
	n, err := network.Build(cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to build network: %w", err)
	}
	return NewPlannerForNetwork(n, cfg.Planner), nil
}

// Graph returns the underlying transit graph
func (p *Planner) Graph() *graph.TransitGraph { return p.graph }

// Stops returns every stop of the network ordered by id. Name and location
// are filled in for stops loaded from GTFS.
func (p *Planner) Stops() []gtfs.Stop {
	ids := p.graph.Stops()
	out := make([]gtfs.Stop, len(ids))
	for i, id := range ids {
		if s, ok := p.stops[id]; ok {
			out[i] = s
		} else {
			out[i] = gtfs.Stop{ID: id}
		}
	}
	return out
}

// ShortestResult is the answer of a shortest path query
type ShortestResult struct {
	Path      []string `json:"path"`
	Reachable bool     `json:"reachable"`
	// TotalTime is nil when the destination is unreachable
	TotalTime *float64 `json:"totalTime"`
}

func (p *Planner) checkStops(stops ...string) error {
	for _, s := range stops {
		if !p.graph.HasStop(s) {
			return fmt.Errorf("%q: %w", s, ErrUnknownStop)
		}
	}
	return nil
}

// AllSimplePaths lists every simple path between two known stops
func (p *Planner) AllSimplePaths(from, to string) ([][]string, error) {
	if err := p.checkStops(from, to); err != nil {
		return nil, err
	}
	return routing.AllSimplePaths(p.graph, from, to), nil
}

// ShortestPath finds the minimum-time path between two known stops
func (p *Planner) ShortestPath(from, to string) (ShortestResult, error) {
	if err := p.checkStops(from, to); err != nil {
		return ShortestResult{}, err
	}
	path, t, ok := routing.ShortestPathTime(p.graph, from, to)
	res := ShortestResult{Path: path, Reachable: ok}
	if ok {
		res.TotalTime = &t
	}
	return res, nil
}

// BestTransferPaths ranks the paths between two known stops by transfers,
// then time, and keeps the configured number of them
func (p *Planner) BestTransferPaths(from, to string) ([]routing.Itinerary, error) {
	if err := p.checkStops(from, to); err != nil {
		return nil, err
	}
	return routing.BestTransferPathsN(p.graph, from, to, p.maxTransferPaths)
}

// ShortestPathThrough finds the cheapest path between two known stops passing
// through one of via. Unknown waypoints are skipped like unreachable ones.
func (p *Planner) ShortestPathThrough(from, to string, via []string) (routing.Itinerary, error) {
	if err := p.checkStops(from, to); err != nil {
		return routing.Itinerary{}, err
	}
	return routing.ShortestPathThrough(p.graph, from, to, via)
}
