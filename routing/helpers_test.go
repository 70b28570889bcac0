package routing

import (
	"testing"

	"github.com/theoremus-urban-solutions/transit-planner/graph"
)

type route struct {
	name  string
	stops []string
	times []float64
}

func buildGraph(t *testing.T, routes ...route) *graph.TransitGraph {
	t.Helper()
	g := graph.New()
	for _, r := range routes {
		if err := g.AddRoute(r.stops, r.name, r.times); err != nil {
			t.Fatalf("AddRoute %s: %v", r.name, err)
		}
	}
	return g
}

// meshGraph has four simple paths from A to D with distinct transfer counts.
func meshGraph(t *testing.T) *graph.TransitGraph {
	return buildGraph(t,
		route{"R1", []string{"A", "B", "C", "D"}, []float64{1, 1, 1}},
		route{"R2", []string{"A", "E", "D"}, []float64{1, 1}},
		route{"R3", []string{"B", "E"}, []float64{1}},
		route{"R9", []string{"Y", "Z"}, []float64{1}},
	)
}
