/*
Package graph holds the in-memory transit network.

Stops are opaque string identifiers. A route is not stored as an object: every
segment between two adjacent stops of a route becomes two directed edges, one
per direction, tagged with the route name and the segment travel time.

	g := graph.New()
	if err := g.AddRoute([]string{"A", "B", "C"}, "R1", []float64{1, 2}); err != nil {
	    log.Fatal(err)
	}
	e, ok := g.EdgeBetween("A", "B", "")

# Edge order

Outgoing edges keep their insertion order. EdgeBetween relies on it: when no
edge on the preferred route exists, the first registered edge between the two
stops wins. Path enumeration order depends on it as well.

# Weights

Travel times are not validated. Shortest path results are only correct for
non-negative weights; callers loading external data must check this themselves.

# Thread safety

Build the graph once, then query. Concurrent reads are safe, concurrent
AddRoute calls are not.
*/
package graph
