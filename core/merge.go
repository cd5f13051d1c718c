package core

// MergeVertices contracts i and j into a single vertex min(i,j).
//
// Every direct edge between i and j is removed first, so no loop is ever
// created. Each remaining edge incident to the non-surviving vertex is then
// re-attached to the survivor (deduplicated per edge equality), and the
// non-surviving vertex is deleted together with its now-redundant original
// edges. The survivor's neighborhood ends up as the union of both original
// neighborhoods minus {i, j}.
//
// No-op if either vertex is absent or i == j.
func (g *Graph) MergeVertices(i, j int) {
	if i == j || !g.ContainsVertex(i) || !g.ContainsVertex(j) {
		return
	}

	survivor, loser := i, j
	if survivor > loser {
		survivor, loser = loser, survivor
	}

	// Drop mutual edges over a snapshot: removal mutates the set being walked.
	mutual := make([]Edge, 0)
	for e := range g.incidence[loser] {
		if e.IncidentTo(survivor) {
			mutual = append(mutual, e)
		}
	}
	for _, e := range mutual {
		g.RemoveEdge(e)
	}

	// Re-attach the loser's remaining edges to the survivor.
	rewired := make([]Edge, 0, len(g.incidence[loser]))
	for e := range g.incidence[loser] {
		rewired = append(rewired, NewEdgeWithRoute(survivor, e.Other(loser), e.Route))
	}
	for _, e := range rewired {
		g.AddEdge(e)
	}

	// Deleting the loser also removes its original, now-redundant edges.
	_ = g.RemoveVertex(loser)
}
