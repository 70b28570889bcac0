// Package network builds a transit graph from the configured sources: a YAML
// route file, a GTFS static zip, or both.
//
// Route file format:
//
//	routes:
//	  - name: R1
//	    stops: [A, B, C]
//	    travelTimes: [1, 2]
package network
