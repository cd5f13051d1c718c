package structure

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/routegraph/core"
)

// Component returns the full vertex set reachable from v (including v
// itself), sorted ascending. An absent vertex yields an empty slice.
//
// Breadth-first over core.Graph.Neighbors; the reachable set accumulates in
// an ordered set so callers get a stable enumeration.
func Component(g *core.Graph, v int) []int {
	if !g.ContainsVertex(v) {
		return []int{}
	}

	reached := treeset.NewWithIntComparator(v)
	queue := []int{v}
	var cur int
	for len(queue) > 0 {
		cur, queue = queue[0], queue[1:]
		for nbr := range g.Neighbors(cur) {
			if reached.Contains(nbr) {
				continue
			}
			reached.Add(nbr)
			queue = append(queue, nbr)
		}
	}

	out := make([]int, 0, reached.Size())
	for _, x := range reached.Values() {
		out = append(out, x.(int))
	}

	return out
}

// Components returns every connected component of g, each sorted ascending,
// ordered by smallest member. Identical vertex sets arise only once since
// each vertex is claimed by exactly one sweep.
func Components(g *core.Graph) [][]int {
	seen := make(map[int]struct{}, g.Order())
	out := make([][]int, 0)
	for _, v := range g.Vertices() {
		if _, done := seen[v]; done {
			continue
		}
		comp := Component(g, v)
		for _, m := range comp {
			seen[m] = struct{}{}
		}
		out = append(out, comp)
	}

	return out
}

// connected reports whether g is a single connected component.
// The empty graph is vacuously connected.
func connected(g *core.Graph) bool {
	if g.Order() == 0 {
		return true
	}

	return len(Component(g, g.Vertices()[0])) == g.Order()
}
