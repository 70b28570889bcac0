package gtfs

import (
	"sort"

	"github.com/theoremus-urban-solutions/transit-planner/config"
)

// stopTime is one row of stop_times.txt
type stopTime struct {
	stop      string
	seq       int
	arrival   string
	departure string
}

// Location is a WGS84 stop position
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Stop is one row of stops.txt
type Stop struct {
	ID       string    `json:"id"`
	Name     string    `json:"name,omitempty"`
	Location *Location `json:"location,omitempty"`
}

// GTFSIndex stores the parts of a GTFS static feed needed to build routes
type GTFSIndex struct {
	agencyID        string
	agencyName      string
	routeShortNames map[string]string     // route_id -> short_name
	tripToRoute     map[string]string     // trip_id -> route_id
	stops           map[string]Stop       // stop_id -> stop
	tripStopTimes   map[string][]stopTime // trip_id -> stop times ordered by stop_sequence
}

// NewGTFSIndex creates a new empty GTFS index
func NewGTFSIndex(agencyID string) *GTFSIndex {
	return &GTFSIndex{
		agencyID:        agencyID,
		routeShortNames: map[string]string{},
		tripToRoute:     map[string]string{},
		stops:           map[string]Stop{},
		tripStopTimes:   map[string][]stopTime{},
	}
}

// NewGTFSIndexFromConfig loads a GTFS index from a local zip path or an
// http(s) URL
func NewGTFSIndexFromConfig(cfg config.GTFSConfig) (*GTFSIndex, error) {
	g := NewGTFSIndex(cfg.AgencyID)
	if cfg.Path == "" {
		return g, nil
	}
	if err := g.load(cfg.Path); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *GTFSIndex) GetAgencyID() string { return g.agencyID }

// GetAllStops returns the stops of stops.txt ordered by stop_id
func (g *GTFSIndex) GetAllStops() []Stop {
	ids := sortedKeys(g.stops)
	out := make([]Stop, len(ids))
	for i, id := range ids {
		out[i] = g.stops[id]
	}
	return out
}

// RouteName is the label used on graph edges for a route
func (g *GTFSIndex) RouteName(routeID string) string {
	if n := g.routeShortNames[routeID]; n != "" {
		return n
	}
	return routeID
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
