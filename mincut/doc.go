// Package mincut computes a minimum blocking edge set: the smallest set of
// edges whose removal disconnects two given vertices, ignoring edge weights.
//
// What:
//
//   - MinBlockingEdgeSet(ctx, g, v1, v2) runs unit-capacity Edmonds–Karp
//     max-flow on the undirected multigraph (every parallel edge is its own
//     unit of capacity), then reads the cut off the residual reachability
//     split. By max-flow/min-cut duality the returned set has minimum
//     cardinality; ties between equally small cuts are broken arbitrarily.
//
// Why:
//
//   - "How many routes must an opponent claim to cut city A from city B"
//     is a cut question, not a path question: route lengths are irrelevant,
//     only the count of severed edges matters.
//
// Complexity:
//
//   - O(V · E²) worst case (Edmonds–Karp), O(V + E) memory. Unit capacities
//     bound the augmentation count by the cut size, so typical route
//     networks finish in a handful of sweeps.
//
// Errors:
//
//   - ErrVertexNotFound: either endpoint is absent from the graph.
//   - ErrSameVertex: v1 == v2 (no edge set can separate a vertex from
//     itself).
//
// Already-disconnected endpoints are not an error: the empty set is a valid
// minimum cut of size zero.
package mincut
