package graph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrTravelTimeCount is returned by AddRoute when the number of travel times
// does not match the number of segments.
var ErrTravelTimeCount = errors.New("travel time count does not match segment count")

// Edge is a directed arc between two stops on a named route
type Edge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Route  string  `json:"route"`
	Weight float64 `json:"weight"`
}

// TransitGraph maps every stop to its outgoing edges in insertion order
type TransitGraph struct {
	adjacency map[string][]Edge
	edges     int
}

// New creates an empty transit graph
func New() *TransitGraph {
	return &TransitGraph{adjacency: map[string][]Edge{}}
}

// AddRoute registers a route through stops. travelTimes[i] is the time between
// stops[i] and stops[i+1]; each segment is added in both directions.
func (g *TransitGraph) AddRoute(stops []string, route string, travelTimes []float64) error {
	if len(stops) == 0 {
		return nil
	}
	if len(travelTimes) != len(stops)-1 {
		return fmt.Errorf("route %s: %d stops, %d travel times: %w", route, len(stops), len(travelTimes), ErrTravelTimeCount)
	}
	if len(stops) == 1 {
		g.ensure(stops[0])
		return nil
	}
	for i := 0; i < len(stops)-1; i++ {
		from, to, w := stops[i], stops[i+1], travelTimes[i]
		g.ensure(from)
		g.ensure(to)
		g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Route: route, Weight: w})
		g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Route: route, Weight: w})
		g.edges += 2
	}
	return nil
}

func (g *TransitGraph) ensure(stop string) {
	if _, ok := g.adjacency[stop]; !ok {
		g.adjacency[stop] = []Edge{}
	}
}

// EdgeBetween returns the from->to edge on preferredRoute if there is one,
// otherwise the first registered from->to edge on any route.
func (g *TransitGraph) EdgeBetween(from, to, preferredRoute string) (Edge, bool) {
	edges := g.adjacency[from]
	if preferredRoute != "" {
		for _, e := range edges {
			if e.To == to && e.Route == preferredRoute {
				return e, true
			}
		}
	}
	for _, e := range edges {
		if e.To == to {
			return e, true
		}
	}
	return Edge{}, false
}

// Edges returns the outgoing edges of stop. The slice must not be modified.
func (g *TransitGraph) Edges(stop string) []Edge { return g.adjacency[stop] }

// HasStop reports whether stop appears on any route
func (g *TransitGraph) HasStop(stop string) bool {
	_, ok := g.adjacency[stop]
	return ok
}

// StopCount returns the number of stops
func (g *TransitGraph) StopCount() int { return len(g.adjacency) }

// EdgeCount returns the number of directed edges, two per route segment
func (g *TransitGraph) EdgeCount() int { return g.edges }

// Stops returns all stop identifiers in lexical order
func (g *TransitGraph) Stops() []string {
	keys := make([]string, 0, len(g.adjacency))
	for k := range g.adjacency {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Routes returns the distinct route names in lexical order
func (g *TransitGraph) Routes() []string {
	set := map[string]struct{}{}
	for _, edges := range g.adjacency {
		for _, e := range edges {
			set[e.Route] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
