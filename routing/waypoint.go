package routing

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/slog"

	"github.com/theoremus-urban-solutions/transit-planner/graph"
)

var (
	// ErrNoWaypoints is returned by ShortestPathThrough for an empty waypoint set
	ErrNoWaypoints = errors.New("no waypoints given")
	// ErrNoRoute is returned when no waypoint is reachable from start and
	// reaches destination
	ErrNoRoute = errors.New("no route through any waypoint")
)

// ShortestPathThrough returns the minimum-time itinerary from start to
// destination that passes through at least one of waypoints.
//
// For each waypoint w the shortest paths start->w and w->destination are
// replayed separately, each boarding afresh, and w is scored by the sum of the
// two times. Waypoints that cannot be reached, or cannot reach destination, are
// skipped. Equal scores go to the lexically first waypoint.
//
// The winner's stops are joined at w. Stops, Routes and Transfers come from a
// Replay of the joined sequence, so riding one route through w is not a
// transfer. TotalTime is the winning score and Legs are the edges of the two
// leg replays, which sum to it.
func ShortestPathThrough(g Network, start, destination string, waypoints []string) (Itinerary, error) {
	candidates := uniqueSorted(waypoints)
	if len(candidates) == 0 {
		return Itinerary{}, ErrNoWaypoints
	}

	var bestWaypoint string
	var bestFirst, bestSecond Itinerary
	bestTime := math.Inf(1)
	for _, w := range candidates {
		first, ok := ShortestPath(g, start, w)
		if !ok {
			slog.Debug("waypoint unreachable from start", "waypoint", w, "from", start)
			continue
		}
		second, ok := ShortestPath(g, w, destination)
		if !ok {
			slog.Debug("destination unreachable from waypoint", "waypoint", w, "to", destination)
			continue
		}

		toWaypoint, err := Replay(g, first)
		if err != nil {
			return Itinerary{}, fmt.Errorf("waypoint %s: %w", w, err)
		}
		fromWaypoint, err := Replay(g, second)
		if err != nil {
			return Itinerary{}, fmt.Errorf("waypoint %s: %w", w, err)
		}
		if t := toWaypoint.TotalTime + fromWaypoint.TotalTime; t < bestTime {
			bestWaypoint, bestTime = w, t
			bestFirst, bestSecond = toWaypoint, fromWaypoint
		}
	}

	if math.IsInf(bestTime, 1) {
		return Itinerary{}, fmt.Errorf("%s -> %s: %w", start, destination, ErrNoRoute)
	}

	joined := make([]string, 0, len(bestFirst.Stops)+len(bestSecond.Stops)-1)
	joined = append(joined, bestFirst.Stops...)
	joined = append(joined, bestSecond.Stops[1:]...)
	it, err := Replay(g, joined)
	if err != nil {
		return Itinerary{}, fmt.Errorf("waypoint %s: %w", bestWaypoint, err)
	}
	it.TotalTime = bestTime
	it.Legs = append(append([]graph.Edge{}, bestFirst.Legs...), bestSecond.Legs...)
	return it, nil
}

func uniqueSorted(in []string) []string {
	set := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := set[s]; ok {
			continue
		}
		set[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
