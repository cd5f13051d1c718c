// Package core defines the Edge and Graph types at the heart of routegraph:
// an undirected, weighted multigraph stored as a vertex→incidence-set map.
//
// What:
//
//   - Edge is an immutable value of two vertex ids plus an optional opaque
//     Route payload. Equality ignores endpoint order and is payload-aware,
//     so two parallel edges between the same pair with distinct payloads are
//     distinct entities (true multigraph semantics).
//   - Graph owns no vertex objects: a vertex exists iff it has an entry in
//     the incidence map, even with zero incident edges.
//   - Four constructors: New (empty), NewSized (vertices 0..n-1),
//     FromEdges (auto-creates endpoints), Induced (independent subgraph).
//   - Mutation: AddVertex, AddEdge, RemoveEdge, RemoveVertex,
//     MergeVertices (vertex contraction).
//   - Queries: Order, Size, Degree, MaxDegree, Neighbors, IsSimple,
//     IsComplete, AreAdjacent, ContainsVertex, ContainsEdge.
//
// Why:
//
//   - Route networks need parallel-edge identity: two routes between the
//     same cities are different game objects even at equal length.
//   - The incidence-set representation keeps every structural predicate and
//     path search a plain traversal over Neighbors / incident edges.
//
// Invariants:
//
//   - Symmetry: a non-loop edge {u,v} is present in both incidence[u] and
//     incidence[v]; a loop {v,v} is stored once in incidence[v].
//   - Order() counts incidence-map keys; Size() counts parallel edges and
//     loops individually.
//
// Concurrency:
//
//   - Graph is single-owner. One logical owner must serialize all mutating
//     calls; read-only queries may run concurrently with each other but
//     never with a mutation. There is no internal locking.
//
// Errors:
//
//   - ErrVertexNotFound: Degree and RemoveVertex on an absent vertex.
//     Neighbors and ContainsVertex are tolerant and never fail.
package core
