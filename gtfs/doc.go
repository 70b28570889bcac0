/*
Package gtfs turns a GTFS static feed into transit routes.

This package is data-source agnostic at its core: it accepts raw zip bytes or
an io.ReaderAt and builds an in-memory index. NewGTFSIndexFromConfig adds
local file and HTTP loading on top for CLI and server use.

# Basic Usage

	index, err := gtfs.NewGTFSIndexFromBytes(zipBytes, "AGENCY_ID")
	if err != nil {
	    log.Fatal(err)
	}

	g := graph.New()
	if _, err := index.AddToGraph(g); err != nil {
	    log.Fatal(err)
	}

# Patterns

Trips of a route that call at the same ordered stops form a pattern. Each
distinct pattern becomes one AddRoute call:

  - route name: route_short_name, or route_id when it is empty
  - stops: the stop_ids in stop_sequence order
  - travel times: minutes from the departure at one stop to the arrival at the
    next, taken from the pattern's first trip (lowest trip_id)

Stop times use GTFS HH:MM:SS notation where hours may exceed 23. Segments
whose times are missing or go backwards are added with a travel time of 0 and
reported once per feed through the warning aggregator.

# Files

Only agency.txt, routes.txt, trips.txt, stops.txt and stop_times.txt are read.
Stop names and positions from stops.txt are kept for display through
GetAllStops; they play no part in routing.
Calendars, frequencies and shapes are ignored: edge weights are static
travel times, not a timetable.
*/
package gtfs
