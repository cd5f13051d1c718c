// Package structure provides connectivity analysis and structural
// classification for core graphs.
//
// What:
//
//   - Component / Components: breadth-first connected-component extraction,
//     the single substrate every predicate below reuses.
//   - IsTree / IsForest / IsChain / IsCycle: shape classification with
//     multigraph-aware edge cases (parallel edges disqualify simple-path
//     and cycle shapes; the empty graph counts as both a chain and a cycle).
//   - IsBridge: isthmus detection by removal on a throwaway copy.
//   - DegreeSequence / SameDegreeSequence: degree-sequence extraction and a
//     necessary-but-not-sufficient isomorphism filter.
//   - IsGraphicalSequence: whether a vertex-visit sequence realizes a
//     simple graph.
//
// Why:
//
//   - Route networks are classified before rule checks: a player's claimed
//     routes forming a chain, a cycle, or a forest mean different things.
//
// Complexity:
//
//   - Component/Components: O(V + E).
//   - IsTree/IsForest/IsChain/IsCycle: O(V + E).
//   - IsBridge: O(V + E) per call (clone + two component counts).
//
// Limitations:
//
//   - SameDegreeSequence is a heuristic filter only: non-isomorphic graphs
//     can share order, size, and degree sequence. It must not be read as a
//     full isomorphism test.
package structure
