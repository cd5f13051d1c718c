package path

import (
	"context"
	"errors"
)

// Sentinel errors for path searches.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("path: graph is nil")

	// ErrNegativeLength is returned when a Route reports a negative length
	// during weighted search; lengths must be non-negative.
	ErrNegativeLength = errors.New("path: negative route length encountered")
)

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters shared by all searches.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per dequeue.
	Ctx context.Context

	// OnVisit, if set, is called for every vertex the search settles,
	// in settlement order.
	OnVisit func(v int)
}

// DefaultOptions returns Options with a background context and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked per settled vertex.
func WithOnVisit(fn func(v int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// pathState is the per-vertex record of the weighted search: best known
// distance and the predecessor it came from. Instances live only for the
// duration of a single Weighted call and are never stored on the graph.
type pathState struct {
	prev int   // predecessor vertex id; -1 when none
	dist int64 // best known distance; core.Infinity until relaxed
}
