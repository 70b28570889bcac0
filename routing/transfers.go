package routing

import (
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// DefaultTransferPaths is the number of itineraries BestTransferPaths returns
const DefaultTransferPaths = 3

// BestTransferPaths returns up to DefaultTransferPaths itineraries from start
// to destination with the fewest transfers, shorter total time first on ties.
func BestTransferPaths(g Network, start, destination string) ([]Itinerary, error) {
	return BestTransferPathsN(g, start, destination, DefaultTransferPaths)
}

// BestTransferPathsN is BestTransferPaths with an explicit result limit. A
// limit <= 0 means DefaultTransferPaths.
//
// Itineraries with equal (transfers, time) are all kept and ordered by their
// stop sequence, so the cut at limit is deterministic.
func BestTransferPathsN(g Network, start, destination string, limit int) ([]Itinerary, error) {
	if limit <= 0 {
		limit = DefaultTransferPaths
	}
	paths := AllSimplePaths(g, start, destination)
	slog.Debug("enumerated simple paths", "from", start, "to", destination, "count", len(paths))

	ranked := make([]Itinerary, 0, len(paths))
	for _, p := range paths {
		it, err := Replay(g, p)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, it)
	}
	slices.SortStableFunc(ranked, compareItineraries)

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func compareItineraries(a, b Itinerary) int {
	switch {
	case a.Transfers < b.Transfers:
		return -1
	case a.Transfers > b.Transfers:
		return 1
	case a.TotalTime < b.TotalTime:
		return -1
	case a.TotalTime > b.TotalTime:
		return 1
	}
	return slices.Compare(a.Stops, b.Stops)
}
