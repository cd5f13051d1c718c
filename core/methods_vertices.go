// File: methods_vertices.go
// Role: vertex lifecycle and vertex-centric queries.
//
// Determinism:
//   - Vertices() returns ids sorted ascending; rely on it for stable output.

package core

import (
	"math"
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent).
func (g *Graph) AddVertex(v int) {
	if _, ok := g.incidence[v]; ok {
		return
	}
	g.incidence[v] = make(map[Edge]struct{})
}

// ContainsVertex reports whether v exists in the graph. Tolerant: an absent
// vertex yields false, never an error.
func (g *Graph) ContainsVertex(v int) bool {
	_, ok := g.incidence[v]

	return ok
}

// RemoveVertex deletes v and every edge incident to it.
//
// Removal iterates a snapshot of the incidence set: RemoveEdge mutates the
// very collection being walked, so the loop must not range over the live set.
// Returns ErrVertexNotFound if v is absent.
func (g *Graph) RemoveVertex(v int) error {
	set, ok := g.incidence[v]
	if !ok {
		return ErrVertexNotFound
	}

	snapshot := make([]Edge, 0, len(set))
	for e := range set {
		snapshot = append(snapshot, e)
	}
	for _, e := range snapshot {
		g.RemoveEdge(e)
	}
	delete(g.incidence, v)

	return nil
}

// Order returns the number of vertices, whether or not they carry edges.
func (g *Graph) Order() int {
	return len(g.incidence)
}

// Degree returns the size of v's incidence set (a loop counts once).
// Unlike Neighbors, degree is undefined for an absent vertex and fails
// with ErrVertexNotFound.
func (g *Graph) Degree(v int) (int, error) {
	set, ok := g.incidence[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(set), nil
}

// MaxDegree returns the maximum vertex degree, or math.MinInt when the
// graph has zero edges (vertices may still exist; the maximum is undefined
// without edges).
func (g *Graph) MaxDegree() int {
	if g.Size() == 0 {
		return math.MinInt
	}

	max := 0
	for _, set := range g.incidence {
		if len(set) > max {
			max = len(set)
		}
	}

	return max
}

// Neighbors returns the deduplicated set of opposite endpoints of all edges
// incident to v. Tolerant: an absent vertex yields an empty set, preserving
// the documented asymmetry with Degree.
func (g *Graph) Neighbors(v int) map[int]struct{} {
	out := make(map[int]struct{})
	for e := range g.incidence[v] {
		out[e.Other(v)] = struct{}{}
	}

	return out
}

// AreAdjacent reports whether at least one edge connects i and j.
func (g *Graph) AreAdjacent(i, j int) bool {
	_, ok := g.Neighbors(i)[j]

	return ok
}

// Vertices returns all vertex ids sorted ascending.
func (g *Graph) Vertices() []int {
	ids := make([]int, 0, len(g.incidence))
	for v := range g.incidence {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids
}

// VertexSet returns the vertex ids as an independent set; mutating it does
// not affect the graph.
func (g *Graph) VertexSet() map[int]struct{} {
	out := make(map[int]struct{}, len(g.incidence))
	for v := range g.incidence {
		out[v] = struct{}{}
	}

	return out
}
