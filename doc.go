// Package routegraph is an in-memory engine for undirected, weighted
// multigraphs — built to model route networks (cities as vertices,
// transport routes as weighted parallel edges) and to answer the
// structural and path questions such networks raise.
//
// What you get:
//
//	• Core primitives: an incidence-map multigraph with true parallel-edge
//	  identity (unordered endpoints + payload), loops, contraction
//	• Structure: connectivity, chain/cycle/tree/forest classification,
//	  bridges, degree sequences, graphical-sequence validation
//	• Paths: unweighted BFS, weighted Dijkstra, resource-budgeted
//	  reachability, ordered-waypoint routing
//	• Cuts: minimum blocking edge set between two vertices (unit-capacity
//	  max-flow / min-cut)
//
// Everything is organized under five subpackages:
//
//	core/      — Edge and Graph types, constructors, mutation, basic queries
//	structure/ — connectivity & classification predicates, degree sequences
//	path/      — the three path-search variants plus waypoint routing
//	mincut/    — minimum blocking edge set
//	routes/    — reference payload types (land/sea routes with color & span)
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2   8───42
//
//	two components; (0,3) may carry several parallel routes at once.
//
// The Graph container is single-owner: one logical owner serializes all
// mutating calls. Read-only queries may run concurrently with each other,
// never with a mutation.
//
//	go get github.com/katalvlaran/routegraph
package routegraph
