package routing

import "github.com/theoremus-urban-solutions/transit-planner/graph"

// Network is the read side of a transit graph used by every query
type Network interface {
	HasStop(stop string) bool
	Edges(stop string) []graph.Edge
	EdgeBetween(from, to, preferredRoute string) (graph.Edge, bool)
}
