package path

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/pkg/errors"

	"github.com/katalvlaran/routegraph/core"
)

// frontierItem is one heap entry of the weighted search: a vertex and the
// distance it was pushed with. Stale entries are skipped on pop rather than
// re-keyed (lazy decrease-key).
type frontierItem struct {
	v    int
	dist int64
}

// byDistance orders frontier items by ascending pushed distance.
func byDistance(a, b interface{}) int {
	fa, fb := a.(frontierItem), b.(frontierItem)
	switch {
	case fa.dist < fb.dist:
		return -1
	case fa.dist > fb.dist:
		return 1
	default:
		return 0
	}
}

// Weighted returns a minimum-total-length path from start to end, where an
// edge's weight is its Route length. Edges carrying no payload cannot be
// relaxed: they are invisible to the weighted search even though the
// unweighted variants traverse them freely.
//
// Returns an empty slice when no relaxation ever reached end (or when an
// endpoint is absent); reconstruction is only attempted for a reached end.
// A payload reporting a negative length aborts with ErrNegativeLength.
func Weighted(g *core.Graph, start, end int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	if !g.ContainsVertex(start) || !g.ContainsVertex(end) {
		return []int{}, nil
	}

	// Per-vertex search state: +infinity distance, no predecessor.
	state := make(map[int]*pathState, g.Order())
	for _, v := range g.Vertices() {
		state[v] = &pathState{prev: -1, dist: core.Infinity}
	}
	state[start].dist = 0

	settled := make(map[int]struct{}, g.Order())
	frontier := binaryheap.NewWith(byDistance)
	frontier.Push(frontierItem{v: start, dist: 0})

	for !frontier.Empty() {
		select {
		case <-o.Ctx.Done():
			return nil, errors.Wrap(o.Ctx.Err(), "path: weighted search aborted")
		default:
		}

		raw, _ := frontier.Pop()
		item := raw.(frontierItem)
		if _, done := settled[item.v]; done {
			continue // stale entry superseded by a shorter push
		}
		settled[item.v] = struct{}{}
		o.OnVisit(item.v)

		for _, e := range g.IncidentEdges(item.v) {
			if e.Route == nil {
				continue
			}
			w := e.Route.Length()
			if w < 0 {
				return nil, errors.Wrapf(ErrNegativeLength, "edge %s", e)
			}
			nbr := e.Other(item.v)
			if _, done := settled[nbr]; done {
				continue
			}
			candidate := state[item.v].dist + w
			if candidate >= state[nbr].dist {
				continue
			}
			state[nbr].dist = candidate
			state[nbr].prev = item.v
			frontier.Push(frontierItem{v: nbr, dist: candidate})
		}
	}

	if state[end].dist == core.Infinity {
		return []int{}, nil
	}

	// Follow predecessor links backward from end to start.
	seq := []int{end}
	for cur := end; cur != start; {
		cur = state[cur].prev
		seq = append(seq, cur)
	}
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	return seq, nil
}
