package gtfs

import (
	"sort"
	"strings"

	"golang.org/x/exp/slog"
)

// Pattern is one ordered stop sequence served by a route, ready for AddRoute
type Pattern struct {
	RouteID     string
	RouteName   string
	Stops       []string
	TravelTimes []float64 // minutes, len(Stops)-1
	Trips       int       // number of trips sharing the pattern
}

// RouteAdder is satisfied by *graph.TransitGraph
type RouteAdder interface {
	AddRoute(stops []string, route string, travelTimes []float64) error
}

// Patterns derives the distinct stop patterns of the feed, ordered by route_id
// then by stop sequence. Problems are collected in warn when it is not nil.
func (g *GTFSIndex) Patterns(warn *WarningAggregator) []Pattern {
	if warn == nil {
		warn = NewWarningAggregator()
	}

	tripIDs := sortedKeys(g.tripStopTimes)
	byKey := map[string]*Pattern{}
	keys := []string{}
	for _, tripID := range tripIDs {
		routeID, ok := g.tripToRoute[tripID]
		if _, known := g.routeShortNames[routeID]; !ok || !known {
			warn.Add(WarningTripWithoutRoute, tripID)
			continue
		}
		times := g.tripStopTimes[tripID]
		if len(times) < 2 {
			warn.Add(WarningTripTooShort, tripID)
			continue
		}

		stops := make([]string, len(times))
		for i, st := range times {
			stops[i] = st.stop
			if _, ok := g.stops[st.stop]; !ok {
				warn.Add(WarningStopNotInStopsTxt, st.stop)
			}
		}
		key := routeID + "\x00" + strings.Join(stops, "\x00")
		if p, ok := byKey[key]; ok {
			p.Trips++
			continue
		}
		byKey[key] = &Pattern{
			RouteID:     routeID,
			RouteName:   g.RouteName(routeID),
			Stops:       stops,
			TravelTimes: segmentMinutes(tripID, times, warn),
			Trips:       1,
		}
		keys = append(keys, key)
	}

	sort.Strings(keys)
	out := make([]Pattern, 0, len(keys))
	for _, k := range keys {
		out = append(out, *byKey[k])
	}
	return out
}

func segmentMinutes(tripID string, times []stopTime, warn *WarningAggregator) []float64 {
	out := make([]float64, len(times)-1)
	for i := 0; i+1 < len(times); i++ {
		dep := times[i].departure
		if dep == "" {
			dep = times[i].arrival
		}
		arr := times[i+1].arrival
		if arr == "" {
			arr = times[i+1].departure
		}
		from, err1 := parseGTFSTime(dep)
		to, err2 := parseGTFSTime(arr)
		if err1 != nil || err2 != nil {
			warn.Add(WarningInvalidStopTime, tripID)
			continue
		}
		if to < from {
			warn.Add(WarningNegativeTravel, tripID)
			continue
		}
		out[i] = float64(to-from) / 60
	}
	return out
}

// AddToGraph adds every pattern of the feed to g and logs feed warnings. It
// returns the number of patterns added.
func (g *GTFSIndex) AddToGraph(dst RouteAdder) (int, error) {
	warn := NewWarningAggregator()
	patterns := g.Patterns(warn)
	for _, p := range patterns {
		if err := dst.AddRoute(p.Stops, p.RouteName, p.TravelTimes); err != nil {
			return 0, err
		}
	}
	warn.LogAll(g.agencyID)
	slog.Info("GTFS feed added to network",
		"agency", g.agencyID,
		"agencyName", g.agencyName,
		"patterns", len(patterns),
		"stops", len(g.stops),
	)
	return len(patterns), nil
}
