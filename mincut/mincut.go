package mincut

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/routegraph/core"
)

// Sentinel errors for cut computation.
var (
	// ErrVertexNotFound indicates that one of the endpoints is absent.
	ErrVertexNotFound = errors.New("mincut: endpoint vertex not found")

	// ErrSameVertex indicates v1 == v2; no edge removal can separate them.
	ErrSameVertex = errors.New("mincut: endpoints must differ")
)

// MinBlockingEdgeSet returns a smallest-cardinality set of edges whose
// removal disconnects v1 from v2. Weights are ignored: every edge, loop
// excepted, contributes one unit of capacity, and parallel edges count
// individually. When several minimum cuts exist one of them is returned.
//
// An already-disconnected pair yields an empty set and no error.
func MinBlockingEdgeSet(ctx context.Context, g *core.Graph, v1, v2 int) ([]core.Edge, error) {
	if !g.ContainsVertex(v1) {
		return nil, pkgerrors.Wrapf(ErrVertexNotFound, "vertex %d", v1)
	}
	if !g.ContainsVertex(v2) {
		return nil, pkgerrors.Wrapf(ErrVertexNotFound, "vertex %d", v2)
	}
	if v1 == v2 {
		return nil, ErrSameVertex
	}

	// Net flow per edge, oriented U→V: -1, 0, or +1. Residual capacity from
	// u across e is 1-flow when u is e.U and 1+flow otherwise, so pushing a
	// unit one way opens a unit the other way — the classic residual trick,
	// just folded into the undirected edge itself.
	flow := make(map[core.Edge]int, g.Size())

	// Saturate: augment one unit along the fewest-edges residual path until
	// none remains. Unit capacities cap the iteration count at the cut size.
	for {
		select {
		case <-ctx.Done():
			return nil, pkgerrors.Wrap(ctx.Err(), "mincut: aborted")
		default:
		}

		steps := augmentingPath(g, flow, v1, v2)
		if steps == nil {
			break
		}
		for _, s := range steps {
			if s.from == s.edge.U {
				flow[s.edge]++
			} else {
				flow[s.edge]--
			}
		}
	}

	// The cut is every edge leaving the residual-reachable side of v1.
	sourceSide := residualReach(g, flow, v1)
	cut := make([]core.Edge, 0)
	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		_, uIn := sourceSide[e.U]
		_, vIn := sourceSide[e.V]
		if uIn != vIn {
			cut = append(cut, e)
		}
	}

	return cut, nil
}

// step records one hop of an augmenting path: the edge crossed and the
// vertex it was crossed from (needed to orient the flow update).
type step struct {
	edge core.Edge
	from int
}

// residualCap is the remaining capacity from u across e.
func residualCap(e core.Edge, flow map[core.Edge]int, u int) int {
	if u == e.U {
		return 1 - flow[e]
	}

	return 1 + flow[e]
}

// augmentingPath finds a fewest-edges v1→v2 path with positive residual
// capacity and returns its steps, or nil when the flow is maximal.
func augmentingPath(g *core.Graph, flow map[core.Edge]int, v1, v2 int) []step {
	parent := map[int]step{v1: {}}
	queue := []int{v1}
	var cur int
	for len(queue) > 0 {
		cur, queue = queue[0], queue[1:]
		for _, e := range g.IncidentEdges(cur) {
			if e.IsLoop() || residualCap(e, flow, cur) <= 0 {
				continue
			}
			nbr := e.Other(cur)
			if _, seen := parent[nbr]; seen {
				continue
			}
			parent[nbr] = step{edge: e, from: cur}
			if nbr == v2 {
				// reconstruct backwards from the sink
				var steps []step
				for at := v2; at != v1; {
					s := parent[at]
					steps = append(steps, s)
					at = s.from
				}

				return steps
			}
			queue = append(queue, nbr)
		}
	}

	return nil
}

// residualReach returns the set of vertices reachable from v1 through
// edges with positive residual capacity.
func residualReach(g *core.Graph, flow map[core.Edge]int, v1 int) map[int]struct{} {
	reach := map[int]struct{}{v1: {}}
	queue := []int{v1}
	var cur int
	for len(queue) > 0 {
		cur, queue = queue[0], queue[1:]
		for _, e := range g.IncidentEdges(cur) {
			if e.IsLoop() || residualCap(e, flow, cur) <= 0 {
				continue
			}
			nbr := e.Other(cur)
			if _, seen := reach[nbr]; seen {
				continue
			}
			reach[nbr] = struct{}{}
			queue = append(queue, nbr)
		}
	}

	return reach
}
