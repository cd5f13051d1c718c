package path

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/routegraph/core"
)

// Budgeted returns a path from start to end using only edges whose Route
// length fits under both resource budgets, or an empty slice when none
// exists. An edge is traversable iff it carries a payload and its length
// is at most wagons AND at most boats.
//
// The budgets are thresholds, not a consumable stock: every edge along the
// path is compared against the full, un-decremented values. A ten-edge path
// of length-3 routes therefore fits a budget of 3.
func Budgeted(g *core.Graph, start, end int, wagons, boats int64, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)
	if !g.ContainsVertex(start) || !g.ContainsVertex(end) {
		return []int{}, nil
	}

	withinBudgets := func(e core.Edge) bool {
		if e.Route == nil {
			return false
		}
		span := e.Route.Length()

		return span <= wagons && span <= boats
	}

	parent, err := bfsParents(o, g, start, withinBudgets, nil)
	if err != nil {
		return nil, errors.Wrap(err, "path: budgeted search aborted")
	}

	return rebuild(parent, start, end), nil
}
