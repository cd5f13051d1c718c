// Package path implements the path-search variants of the engine: plain
// breadth-first shortest paths, weighted (Dijkstra) shortest paths,
// resource-budgeted reachability, and ordered-waypoint routing.
//
// What:
//
//   - Unweighted: fewest-edges path between two vertices via BFS.
//   - Weighted: minimum total Route length via Dijkstra with a binary-heap
//     frontier and lazy decrease-key. Edges without a payload cannot be
//     relaxed and are invisible to the weighted search.
//   - Budgeted: BFS where an edge is traversable only if its Route length
//     fits under BOTH the wagon and boat budgets. The budgets are per-edge
//     thresholds: they are compared against the full value at every edge
//     and never decremented along the path.
//   - Waypoints: a vertex-disjoint path visiting the given waypoints in the
//     given relative order, stitched from BFS segments.
//
// Result policy:
//
//	Every search returns the vertex sequence from start to end. "No path"
//	is a normal outcome, reported as an EMPTY slice with a nil error —
//	callers check length, not errors. Absent endpoints behave like
//	unreachable ones. Errors are reserved for cancellation and for graphs
//	that violate preconditions (nil graph, negative route length).
//
// Complexity:
//
//   - Unweighted/Budgeted/Waypoints: O(V + E) per BFS sweep.
//   - Weighted: O((V + E) log V).
//
// Errors:
//
//   - ErrNilGraph: a nil *core.Graph was supplied.
//   - ErrNegativeLength: a payload reported a negative length during
//     weighted search.
package path
