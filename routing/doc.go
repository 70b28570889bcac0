/*
Package routing implements the queries answered over a transit graph.

  - AllSimplePaths enumerates every simple path between two stops (DFS with
    backtracking). Cost is exponential in the worst case; it is meant for
    small transit networks and is never truncated.
  - ShortestPath runs Dijkstra from one stop and reconstructs the path to
    another.
  - Replay walks a stop sequence left to right, choosing edges with a bias
    towards the route currently ridden, and accumulates transfers, time and
    the route list of the result.
  - BestTransferPaths ranks all simple paths by (transfers, total time).
  - ShortestPathThrough composes two shortest paths over a set of waypoint
    candidates and keeps the cheapest composition.

Absent or unreachable stops never cause an error from the enumeration or the
shortest path search: they produce an empty result or a single-stop path.
Errors are reserved for contract violations (ErrMissingEdge) and for queries
that cannot produce an answer at all (ErrNoWaypoints, ErrNoRoute).

All functions only read the graph and are safe to call concurrently on a graph
that is no longer being modified.
*/
package routing
