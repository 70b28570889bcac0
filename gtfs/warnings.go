package gtfs

import (
	"sort"
	"strings"

	"golang.org/x/exp/slog"
)

// Warning type constants
const (
	WarningTripWithoutRoute  = "trip_without_route"
	WarningTripTooShort      = "trip_too_short"
	WarningInvalidStopTime   = "invalid_stop_time"
	WarningNegativeTravel    = "negative_travel_time"
	WarningStopNotInStopsTxt = "stop_not_in_stops_txt"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects warnings while patterns are derived and logs one
// consolidated line per warning type
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns how often warningType was recorded
func (w *WarningAggregator) Count(warningType string) int {
	if info := w.warnings[warningType]; info != nil {
		return info.count
	}
	return 0
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(agencyID string) {
	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, warningType := range types {
		info := w.warnings[warningType]
		slog.Warn("GTFS feed issue",
			"agency", agencyID,
			"issue", describeWarning(warningType),
			"occurrences", info.count,
			"examples", strings.Join(info.examples, ", "),
		)
	}
}

func describeWarning(warningType string) string {
	switch warningType {
	case WarningTripWithoutRoute:
		return "trips whose route_id is not in routes.txt, skipped"
	case WarningTripTooShort:
		return "trips with fewer than two stop times, skipped"
	case WarningInvalidStopTime:
		return "stop times that do not parse, segment time set to 0"
	case WarningNegativeTravel:
		return "segments where arrival precedes departure, segment time set to 0"
	case WarningStopNotInStopsTxt:
		return "stop_ids missing from stops.txt, kept as opaque stops"
	default:
		return "unknown issue"
	}
}
