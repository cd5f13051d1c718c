package structure

import "github.com/katalvlaran/routegraph/core"

// IsTree reports whether g is a tree: connected and cycle-free.
//
// The empty graph is not a tree; a single vertex is; more than one vertex
// with no edges cannot be connected. Otherwise a single breadth-first sweep
// from an arbitrary start both detects cycles (two discovery paths meeting
// on a vertex still waiting in the queue) and checks coverage of the whole
// vertex set.
func IsTree(g *core.Graph) bool {
	switch {
	case g.Order() == 0:
		return false
	case g.Order() == 1:
		return true
	case g.Size() == 0:
		return false
	}

	start := g.Vertices()[0]
	visited := make(map[int]struct{}, g.Order())
	pending := map[int]struct{}{start: {}}
	queue := []int{start}
	var cur int
	for len(queue) > 0 {
		cur, queue = queue[0], queue[1:]
		delete(pending, cur)
		visited[cur] = struct{}{}
		for nbr := range g.Neighbors(cur) {
			if _, waiting := pending[nbr]; waiting {
				// a second discovery path reached nbr: cycle
				return false
			}
			if _, seen := visited[nbr]; seen {
				continue
			}
			pending[nbr] = struct{}{}
			queue = append(queue, nbr)
		}
	}

	return len(visited) == g.Order()
}

// IsForest reports whether every connected component of g, taken as an
// induced subgraph, is independently a tree. Degenerate graphs (zero or one
// vertex, or no edges at all) count as forests.
func IsForest(g *core.Graph) bool {
	if g.Order() <= 1 || g.Size() == 0 {
		return true
	}

	for _, comp := range Components(g) {
		if !IsTree(core.Induced(g, comp)) {
			return false
		}
	}

	return true
}

// IsChain reports whether g is a simple path graph: exactly two degree-1
// endpoints, every other vertex of degree exactly 2, single connectivity,
// and no parallel shortcut anywhere. The empty graph and edgeless graphs
// count as chains.
func IsChain(g *core.Graph) bool {
	if g.Order() == 0 || g.Size() == 0 {
		return true
	}
	if !g.IsSimple() {
		return false
	}

	endpoints := make([]int, 0, 2)
	for _, v := range g.Vertices() {
		d, _ := g.Degree(v)
		switch {
		case d == 0 || d > 2:
			return false
		case d == 1:
			endpoints = append(endpoints, v)
			if len(endpoints) > 2 {
				return false
			}
		}
	}
	if len(endpoints) != 2 {
		return false
	}

	// Walk from one endpoint. With all degrees <= 2 each step has at most
	// one way forward; any revisit other than the immediate predecessor is
	// a shortcut back into the walk (the lollipop shape).
	prev, cur := -1, endpoints[0]
	visited := map[int]struct{}{cur: {}}
	for {
		next := -1
		for nbr := range g.Neighbors(cur) {
			if nbr == prev {
				continue
			}
			if _, seen := visited[nbr]; seen {
				return false
			}
			next = nbr
		}
		if next == -1 {
			break
		}
		visited[next] = struct{}{}
		prev, cur = cur, next
	}

	// The walk must have covered everything: leftover vertices belong to
	// other components.
	return len(visited) == g.Order()
}

// IsCycle reports whether g is a simple cycle: connected with every vertex
// of degree exactly 2. Simplicity is verified first — the degree profile
// alone would wrongly accept two vertices joined by two parallel edges.
// The empty graph counts as a cycle.
func IsCycle(g *core.Graph) bool {
	if g.Order() == 0 {
		return true
	}
	if !g.IsSimple() || !connected(g) {
		return false
	}

	for _, v := range g.Vertices() {
		if d, _ := g.Degree(v); d != 2 {
			return false
		}
	}

	return true
}

// IsBridge reports whether e is an isthmus: removing it strictly increases
// the number of connected components. An absent edge is never a bridge.
// The test runs on a throwaway copy; g is left untouched.
func IsBridge(g *core.Graph, e core.Edge) bool {
	if !g.ContainsEdge(e) {
		return false
	}

	trial := g.Clone()
	trial.RemoveEdge(e)

	return len(Components(trial)) > len(Components(g))
}
