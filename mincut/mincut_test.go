package mincut_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/mincut"
	"github.com/katalvlaran/routegraph/structure"
)

type fakeRoute struct {
	span int64
}

func (r *fakeRoute) Length() int64 { return r.span }

// MinCutSuite groups tests for MinBlockingEdgeSet.
type MinCutSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *MinCutSuite) SetupTest() {
	s.ctx = context.Background()
}

// requireSeparates removes the cut from a copy and checks v1 and v2 land in
// different components.
func (s *MinCutSuite) requireSeparates(g *core.Graph, cut []core.Edge, v1, v2 int) {
	trial := g.Clone()
	for _, e := range cut {
		trial.RemoveEdge(e)
	}
	reach := map[int]bool{}
	for _, v := range structure.Component(trial, v1) {
		reach[v] = true
	}
	require.False(s.T(), reach[v2], "cut must disconnect %d from %d", v1, v2)
}

// TestBridge: a lone connecting edge is the whole cut.
func (s *MinCutSuite) TestBridge() {
	g := core.FromEdges([]core.Edge{
		core.NewEdge(0, 1),
		core.NewEdge(1, 2),
		core.NewEdge(0, 2),
		core.NewEdge(2, 3), // bridge to the far side
		core.NewEdge(3, 4),
		core.NewEdge(4, 5),
		core.NewEdge(3, 5),
	})
	cut, err := mincut.MinBlockingEdgeSet(s.ctx, g, 0, 5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []core.Edge{core.NewEdge(2, 3)}, cut)
	s.requireSeparates(g, cut, 0, 5)
}

// TestSquare: opposite corners of a 4-ring need both directions severed.
func (s *MinCutSuite) TestSquare() {
	g := core.FromEdges([]core.Edge{
		core.NewEdge(0, 1),
		core.NewEdge(1, 2),
		core.NewEdge(2, 3),
		core.NewEdge(3, 0),
	})
	cut, err := mincut.MinBlockingEdgeSet(s.ctx, g, 0, 2)
	require.NoError(s.T(), err)
	require.Len(s.T(), cut, 2)
	s.requireSeparates(g, cut, 0, 2)
}

// TestParallelEdgesCountIndividually: both parallel routes must fall.
func (s *MinCutSuite) TestParallelEdgesCountIndividually() {
	g := core.New()
	g.AddEdge(core.NewEdgeWithRoute(0, 1, &fakeRoute{span: 2}))
	g.AddEdge(core.NewEdgeWithRoute(0, 1, &fakeRoute{span: 7}))
	cut, err := mincut.MinBlockingEdgeSet(s.ctx, g, 0, 1)
	require.NoError(s.T(), err)
	require.Len(s.T(), cut, 2)
	s.requireSeparates(g, cut, 0, 1)
}

// TestCompleteGraph: separating one vertex of K4 costs its three edges.
func (s *MinCutSuite) TestCompleteGraph() {
	g := core.FromEdges([]core.Edge{
		core.NewEdge(0, 1), core.NewEdge(0, 2), core.NewEdge(0, 3),
		core.NewEdge(1, 2), core.NewEdge(1, 3), core.NewEdge(2, 3),
	})
	cut, err := mincut.MinBlockingEdgeSet(s.ctx, g, 0, 3)
	require.NoError(s.T(), err)
	require.Len(s.T(), cut, 3)
	s.requireSeparates(g, cut, 0, 3)
}

// TestWeightsAreIgnored: a single long route cuts cheaper than two short
// ones; cardinality, not length, decides.
func (s *MinCutSuite) TestWeightsAreIgnored() {
	g := core.New()
	// v1=0, v2=3. Left side: one heavy edge. Right side: two light edges.
	g.AddEdge(core.NewEdgeWithRoute(0, 1, &fakeRoute{span: 100}))
	g.AddEdge(core.NewEdgeWithRoute(1, 2, &fakeRoute{span: 1}))
	g.AddEdge(core.NewEdgeWithRoute(1, 3, &fakeRoute{span: 1}))
	g.AddEdge(core.NewEdgeWithRoute(2, 3, &fakeRoute{span: 1}))
	cut, err := mincut.MinBlockingEdgeSet(s.ctx, g, 0, 3)
	require.NoError(s.T(), err)
	require.Len(s.T(), cut, 1, "the single 100-span edge is the smallest cut")
	s.requireSeparates(g, cut, 0, 3)
}

// TestAlreadyDisconnected: the empty set is a valid zero-cut.
func (s *MinCutSuite) TestAlreadyDisconnected() {
	g := core.FromEdges([]core.Edge{
		core.NewEdge(0, 1),
		core.NewEdge(5, 6),
	})
	cut, err := mincut.MinBlockingEdgeSet(s.ctx, g, 0, 6)
	require.NoError(s.T(), err)
	require.Empty(s.T(), cut)
}

// TestEndpointErrors covers the typed failure modes.
func (s *MinCutSuite) TestEndpointErrors() {
	g := core.FromEdges([]core.Edge{core.NewEdge(0, 1)})

	_, err := mincut.MinBlockingEdgeSet(s.ctx, g, 99, 1)
	require.ErrorIs(s.T(), err, mincut.ErrVertexNotFound)

	_, err = mincut.MinBlockingEdgeSet(s.ctx, g, 0, 99)
	require.ErrorIs(s.T(), err, mincut.ErrVertexNotFound)

	_, err = mincut.MinBlockingEdgeSet(s.ctx, g, 1, 1)
	require.ErrorIs(s.T(), err, mincut.ErrSameVertex)
}

// TestCancellation aborts with the context error.
func (s *MinCutSuite) TestCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := core.FromEdges([]core.Edge{core.NewEdge(0, 1)})
	_, err := mincut.MinBlockingEdgeSet(ctx, g, 0, 1)
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestMinCutSuite(t *testing.T) {
	suite.Run(t, new(MinCutSuite))
}
