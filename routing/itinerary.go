package routing

import (
	"errors"
	"fmt"

	"github.com/theoremus-urban-solutions/transit-planner/graph"
)

// ErrMissingEdge is returned when two consecutive stops of a path are not
// connected by any edge.
var ErrMissingEdge = errors.New("no edge between consecutive stops")

// Itinerary is a stop sequence scored by the route-aware replay
type Itinerary struct {
	Stops []string `json:"stops"`
	// Routes lists the routes in boarding order; consecutive repeats are collapsed.
	Routes []string `json:"routes"`
	// Transfers counts route entries, the initial boarding included.
	Transfers int          `json:"transfers"`
	TotalTime float64      `json:"totalTime"`
	Legs      []graph.Edge `json:"legs,omitempty"`
}

// Annotated returns the stops followed by the routes, e.g. [A B G 32 1Line]
func (it Itinerary) Annotated() []string {
	out := make([]string, 0, len(it.Stops)+len(it.Routes))
	out = append(out, it.Stops...)
	return append(out, it.Routes...)
}

// Replay costs path by walking it once. Each hop prefers the route currently
// ridden; a different route counts as a transfer.
func Replay(g Network, path []string) (Itinerary, error) {
	it := Itinerary{
		Stops:  append([]string(nil), path...),
		Routes: []string{},
	}
	current := ""
	for i := 0; i+1 < len(path); i++ {
		e, ok := g.EdgeBetween(path[i], path[i+1], current)
		if !ok {
			return Itinerary{}, fmt.Errorf("%s -> %s: %w", path[i], path[i+1], ErrMissingEdge)
		}
		if i == 0 || e.Route != current {
			current = e.Route
			it.Routes = append(it.Routes, current)
			it.Transfers++
		}
		it.TotalTime += e.Weight
		it.Legs = append(it.Legs, e)
	}
	return it, nil
}
