package core

// Clone returns a deep, independent copy of the graph: mutating the clone
// never affects the original. Edge values are copied as-is, so payloads
// remain shared with the domain model (edges never own their Route).
func (g *Graph) Clone() *Graph {
	out := &Graph{incidence: make(map[int]map[Edge]struct{}, len(g.incidence))}
	for v, set := range g.incidence {
		copySet := make(map[Edge]struct{}, len(set))
		for e := range set {
			copySet[e] = struct{}{}
		}
		out.incidence[v] = copySet
	}

	return out
}
