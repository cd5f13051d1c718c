// File: methods_edges.go
// Role: edge lifecycle, edge-centric queries, simplicity/completeness tests.

package core

import (
	"sort"
	"strconv"
	"strings"
)

// AddEdge inserts e, auto-adding both endpoints if missing. Inserting an
// edge equal (unordered endpoints + payload) to an existing one is a no-op,
// so the operation is idempotent.
func (g *Graph) AddEdge(e Edge) {
	e = e.normalize()
	g.AddVertex(e.U)
	g.AddVertex(e.V)
	g.incidence[e.U][e] = struct{}{}
	g.incidence[e.V][e] = struct{}{}
}

// RemoveEdge deletes e from both endpoint incidence sets, or does nothing
// if e is not present. The removal is both-or-neither: the symmetric
// storage invariant always holds afterwards.
func (g *Graph) RemoveEdge(e Edge) {
	e = e.normalize()
	setU, okU := g.incidence[e.U]
	setV, okV := g.incidence[e.V]
	if !okU || !okV {
		return
	}
	if _, present := setU[e]; !present {
		return
	}
	if _, present := setV[e]; !present {
		return
	}
	delete(setU, e)
	delete(setV, e)
}

// ContainsEdge reports whether an edge equal to e is present.
func (g *Graph) ContainsEdge(e Edge) bool {
	e = e.normalize()
	_, ok := g.incidence[e.U][e]

	return ok
}

// Size returns the total edge count, counting parallel edges and loops
// individually. A non-loop edge appears in two incidence sets, a loop in
// one, so loops are tallied apart from the halved sum.
func (g *Graph) Size() int {
	incidences, loops := 0, 0
	for _, set := range g.incidence {
		for e := range set {
			if e.IsLoop() {
				loops++
			} else {
				incidences++
			}
		}
	}

	return incidences/2 + loops
}

// IncidentEdges returns a snapshot of the edges touching v (empty for an
// absent vertex). Unlike Neighbors, parallel edges stay distinct, which is
// what per-edge traversability decisions need.
func (g *Graph) IncidentEdges(v int) []Edge {
	out := make([]Edge, 0, len(g.incidence[v]))
	for e := range g.incidence[v] {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// Edges returns every distinct edge of the graph, ordered by endpoints
// (ties between parallel edges are in unspecified order).
func (g *Graph) Edges() []Edge {
	seen := make(map[Edge]struct{})
	out := make([]Edge, 0)
	for _, set := range g.incidence {
		for e := range set {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// IsSimple reports whether the graph is simple: no loops and no two
// distinct edges sharing the same unordered endpoint pair.
func (g *Graph) IsSimple() bool {
	pairs := make(map[[2]int]struct{})
	for _, e := range g.Edges() {
		if e.IsLoop() {
			return false
		}
		key := [2]int{e.U, e.V}
		if _, dup := pairs[key]; dup {
			return false
		}
		pairs[key] = struct{}{}
	}

	return true
}

// IsComplete reports whether every unordered pair of distinct vertices is
// connected by at least one edge.
func (g *Graph) IsComplete() bool {
	vertices := g.Vertices()
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			if !g.AreAdjacent(vertices[i], vertices[j]) {
				return false
			}
		}
	}

	return true
}

// String renders one line per vertex with its incident edges, sorted for
// stable output.
func (g *Graph) String() string {
	var sb strings.Builder
	for _, v := range g.Vertices() {
		sb.WriteString("vertex ")
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString(":")
		incident := make([]Edge, 0, len(g.incidence[v]))
		for e := range g.incidence[v] {
			incident = append(incident, e)
		}
		sort.Slice(incident, func(i, j int) bool {
			if incident[i].U != incident[j].U {
				return incident[i].U < incident[j].U
			}

			return incident[i].V < incident[j].V
		})
		for _, e := range incident {
			sb.WriteString(" ")
			sb.WriteString(e.String())
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
