package path

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/routegraph/core"
)

// Waypoints returns a path visiting every listed vertex exactly once, in
// the given relative order, with no vertex repeated anywhere along the way.
// The result is the full vertex sequence from the first waypoint to the
// last; the input list appears in it as an in-order subsequence.
//
// The path is stitched from breadth-first segments between consecutive
// waypoints. Each segment must avoid every vertex already used and every
// other waypoint, so a segment that can only reach its target through a
// later waypoint fails the whole request. Returns an empty slice when the
// list is empty, mentions an absent vertex, repeats a vertex, or cannot be
// realized.
func Waypoints(g *core.Graph, waypoints []int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)

	if len(waypoints) == 0 {
		return []int{}, nil
	}
	seen := make(map[int]struct{}, len(waypoints))
	for _, w := range waypoints {
		if !g.ContainsVertex(w) {
			return []int{}, nil
		}
		if _, dup := seen[w]; dup {
			return []int{}, nil
		}
		seen[w] = struct{}{}
	}
	if len(waypoints) == 1 {
		return []int{waypoints[0]}, nil
	}

	// blocked starts as "all waypoints": a segment may enter only its own
	// two ends, which are unblocked just for its sweep.
	blocked := make(map[int]struct{}, len(waypoints))
	for _, w := range waypoints {
		blocked[w] = struct{}{}
	}

	out := []int{waypoints[0]}
	for i := 0; i+1 < len(waypoints); i++ {
		from, to := waypoints[i], waypoints[i+1]
		delete(blocked, from)
		delete(blocked, to)

		parent, err := bfsParents(o, g, from, anyEdge, blocked)
		if err != nil {
			return nil, errors.Wrap(err, "path: waypoint search aborted")
		}
		segment := rebuild(parent, from, to)
		if len(segment) == 0 {
			return []int{}, nil
		}

		// Consume the segment: everything on it is off-limits from now on,
		// including from; to stays open as the next segment's origin.
		for _, v := range segment {
			blocked[v] = struct{}{}
		}
		delete(blocked, to)

		out = append(out, segment[1:]...)
	}

	return out, nil
}
