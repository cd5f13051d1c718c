package core

import (
	"fmt"
	"math"
)

// Route is the capability the engine consumes from the domain payload.
// Everything else about a payload (name, color, category) passes through
// the graph opaquely.
//
// Length must be non-negative. It is read only by weighted and budgeted
// path search; an edge with a nil Route is still usable for unweighted
// search and every structural predicate.
type Route interface {
	// Length reports the cost of traversing the route.
	Length() int64
}

// Infinity is the distance assigned to vertices no relaxation has reached.
const Infinity = int64(math.MaxInt64)

// Edge is an immutable value identifying two endpoint vertex ids plus an
// optional opaque payload.
//
// Equality (and therefore map-key identity) is endpoint-order-independent
// and payload-aware: two edges are equal iff their unordered endpoint pairs
// match AND their Route values are identical (including both being nil).
// NewEdge canonicalizes U <= V so plain Go == delivers exactly that
// contract. Payload identity is the identity of the Route value itself;
// two distinct Route objects with equal fields still yield distinct edges.
//
// An Edge does not own its payload: the Route is shared from the domain
// model for the edge's lifetime in the graph.
type Edge struct {
	// U and V are the endpoint vertex ids, canonicalized so that U <= V.
	U, V int

	// Route is the optional domain payload; nil is allowed.
	Route Route
}

// NewEdge builds an Edge with canonical endpoint order and no payload.
func NewEdge(u, v int) Edge {
	return NewEdgeWithRoute(u, v, nil)
}

// NewEdgeWithRoute builds an Edge with canonical endpoint order carrying
// the given payload.
func NewEdgeWithRoute(u, v int, r Route) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v, Route: r}
}

// normalize returns the canonical form of e (U <= V). Graph methods call it
// defensively so literal Edge{U: 3, V: 1} values behave like NewEdge(3, 1).
func (e Edge) normalize() Edge {
	if e.U > e.V {
		e.U, e.V = e.V, e.U
	}

	return e
}

// IncidentTo reports whether v is one of e's endpoints.
func (e Edge) IncidentTo(v int) bool {
	return e.U == v || e.V == v
}

// Other returns the endpoint opposite to v. For a loop it returns v itself.
// The caller must ensure e is incident to v.
func (e Edge) Other(v int) int {
	if v == e.U {
		return e.V
	}

	return e.U
}

// IsLoop reports whether both endpoints coincide.
func (e Edge) IsLoop() bool {
	return e.U == e.V
}

// String renders the edge as {u,v} or {u,v|len} when a payload is present.
func (e Edge) String() string {
	if e.Route == nil {
		return fmt.Sprintf("{%d,%d}", e.U, e.V)
	}

	return fmt.Sprintf("{%d,%d|%d}", e.U, e.V, e.Route.Length())
}
