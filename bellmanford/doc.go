// Package bellmanford implements single-source shortest paths over directed
// weighted graphs with arbitrary (including negative) integer weights, with
// explicit detection and reporting of negative cycles.
//
// What
//
//   - Build an immutable Graph once from caller-supplied vertex and edge lists.
//   - ShortestPaths relaxes every edge |V|−1 times, then performs one more
//     full edge scan: any edge that still relaxes proves a negative cycle
//     reachable from the source.
//   - Every vertex whose shortest distance is undercut by such a cycle is
//     reported as NegInf — never as a stale finite number.
//   - Unreachable vertices stay Unreachable (+∞) and never appear in cycle
//     reports.
//
// Why
//
//	Dijkstra rejects negative weights outright. Bellman–Ford is the
//	textbook answer when weights may be negative, and the subtle part —
//	the one this package exists to get right — is the failure mode:
//	a negative cycle must surface as a distinguished result variant, not
//	as an exception and not as silently corrupted distances.
//
// Result semantics
//
//	Each distance is a Dist value with three variants:
//	  - finite      — exact shortest-path length from the source
//	  - Unreachable — no path from the source exists (+∞)
//	  - NegInf      — a negative cycle reachable from the source can
//	    undercut any finite bound (-∞)
//	Result.NegativeCycle is true iff at least one vertex reports NegInf.
//	This is a normal success variant: callers must branch on it, and the
//	returned error stays nil.
//
// Determinism
//
//	Vertices are processed in the order supplied to NewGraph and edges in
//	the order supplied; for equal-length shortest paths the predecessor
//	map therefore depends only on the inputs.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V·E) worst case; rounds stop early once a full pass
//     changes nothing.
//   - Memory: O(V) for distances (+ O(V) for the predecessor map when
//     WithReturnPath is set).
//
// Usage
//
//	g, err := bellmanford.NewGraph(
//	    []string{"A", "B", "C"},
//	    []bellmanford.Edge{{From: "A", To: "B", Weight: 1},
//	                       {From: "B", To: "C", Weight: -3},
//	                       {From: "C", To: "A", Weight: 1}},
//	)
//	res, err := bellmanford.ShortestPaths(g, "A")
//	if res.NegativeCycle {
//	    // every vertex on or beyond the A→B→C→A cycle reports NegInf
//	}
//
// Errors
//
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrSourceNotFound  if the source vertex does not exist.
//   - NewGraph: ErrEmptyVertexID, ErrDuplicateVertex, ErrUnknownVertex.
package bellmanford
