package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation assumed a vertex that does
	// not exist in the graph. Returned by Degree and RemoveVertex; the
	// tolerant queries (Neighbors, ContainsVertex) never return it.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Graph is an undirected, weighted multigraph over non-negative integer
// vertex ids, stored as an incidence map: incidence[v] is the set of edges
// touching v. Parallel edges and loops are representable; edge identity
// follows Edge equality (unordered endpoints + payload).
//
// Graph is not safe for concurrent mutation; see the package documentation.
type Graph struct {
	incidence map[int]map[Edge]struct{}
}

// New creates an empty graph: no vertices, no edges.
func New() *Graph {
	return &Graph{incidence: make(map[int]map[Edge]struct{})}
}

// NewSized creates a graph with vertices 0..n-1 and no edges.
func NewSized(n int) *Graph {
	g := &Graph{incidence: make(map[int]map[Edge]struct{}, n)}
	for v := 0; v < n; v++ {
		g.incidence[v] = make(map[Edge]struct{})
	}

	return g
}

// FromEdges creates a graph containing every edge of the collection,
// auto-creating endpoint vertices as needed. Duplicate edges (per Edge
// equality) collapse to one.
func FromEdges(edges []Edge) *Graph {
	g := New()
	for _, e := range edges {
		g.AddEdge(e)
	}

	return g
}

// Induced builds the subgraph of src induced by the given vertex subset:
// for every subset vertex, only edges whose BOTH endpoints lie in the
// subset are copied. Vertices outside the subset are excluded entirely.
// The result is a new, independent graph; src is never mutated.
//
// Subset vertices absent from src are ignored.
func Induced(src *Graph, subset []int) *Graph {
	keep := make(map[int]struct{}, len(subset))
	for _, v := range subset {
		if src.ContainsVertex(v) {
			keep[v] = struct{}{}
		}
	}

	g := New()
	var e Edge
	for v := range keep {
		g.AddVertex(v)
		for e = range src.incidence[v] {
			if _, okU := keep[e.U]; !okU {
				continue
			}
			if _, okV := keep[e.V]; !okV {
				continue
			}
			g.AddEdge(e)
		}
	}

	return g
}
