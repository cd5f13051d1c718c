package path

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/routegraph/core"
)

// Unweighted returns a fewest-edges path from start to end as the vertex
// sequence start..end, or an empty slice when no path exists (including
// absent endpoints). Parallel edges and payloads are irrelevant here:
// every edge costs one hop.
func Unweighted(g *core.Graph, start, end int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	if !g.ContainsVertex(start) || !g.ContainsVertex(end) {
		return []int{}, nil
	}

	parent, err := bfsParents(o, g, start, anyEdge, nil)
	if err != nil {
		return nil, errors.Wrap(err, "path: unweighted search aborted")
	}

	return rebuild(parent, start, end), nil
}

// anyEdge is the traversability predicate of the unweighted search.
func anyEdge(core.Edge) bool { return true }

// bfsParents runs a breadth-first sweep from start and returns the parent
// map of the discovery tree (start maps to itself). Only edges accepted by
// usable are followed; vertices in blocked are never entered.
func bfsParents(
	o Options,
	g *core.Graph,
	start int,
	usable func(core.Edge) bool,
	blocked map[int]struct{},
) (map[int]int, error) {
	parent := map[int]int{start: start}
	queue := []int{start}
	var cur int
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		cur, queue = queue[0], queue[1:]
		o.OnVisit(cur)
		for _, e := range g.IncidentEdges(cur) {
			if !usable(e) {
				continue
			}
			nbr := e.Other(cur)
			if _, off := blocked[nbr]; off {
				continue
			}
			if _, seen := parent[nbr]; seen {
				continue
			}
			parent[nbr] = cur
			queue = append(queue, nbr)
		}
	}

	return parent, nil
}

// rebuild walks parent links backward from end and reverses the result.
// Unreached ends yield an empty slice; start == end yields [start].
func rebuild(parent map[int]int, start, end int) []int {
	if _, reached := parent[end]; !reached {
		return []int{}
	}

	seq := []int{end}
	for cur := end; cur != start; {
		cur = parent[cur]
		seq = append(seq, cur)
	}
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	return seq
}
