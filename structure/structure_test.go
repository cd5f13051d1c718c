package structure_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routegraph/core"
	"github.com/katalvlaran/routegraph/structure"
)

type fakeRoute struct {
	span int64
}

func (r *fakeRoute) Length() int64 { return r.span }

// pathGraph builds 0-1-2-...-(n-1).
func pathGraph(n int) *core.Graph {
	g := core.NewSized(n)
	for i := 0; i+1 < n; i++ {
		g.AddEdge(core.NewEdge(i, i+1))
	}

	return g
}

func baseGraph() *core.Graph {
	return core.FromEdges([]core.Edge{
		core.NewEdge(0, 1),
		core.NewEdge(0, 3),
		core.NewEdge(1, 2),
		core.NewEdge(2, 3),
		core.NewEdge(8, 42),
	})
}

func TestComponent(t *testing.T) {
	g := baseGraph()
	require.Equal(t, []int{0, 1, 2, 3}, structure.Component(g, 2))
	require.Equal(t, []int{8, 42}, structure.Component(g, 42))
	require.Empty(t, structure.Component(g, 999), "absent vertex has no component")

	g.AddVertex(7)
	require.Equal(t, []int{7}, structure.Component(g, 7), "isolated vertex is its own component")
}

func TestComponents(t *testing.T) {
	g := baseGraph()
	g.AddVertex(5)
	require.Equal(t, [][]int{{0, 1, 2, 3}, {5}, {8, 42}}, structure.Components(g))
	require.Empty(t, structure.Components(core.New()))
}

func TestIsTree(t *testing.T) {
	require.False(t, structure.IsTree(core.New()), "empty graph is not a tree")
	require.True(t, structure.IsTree(core.NewSized(1)), "single vertex is a tree")
	require.False(t, structure.IsTree(core.NewSized(3)), "edgeless graph cannot be connected")
	require.True(t, structure.IsTree(pathGraph(6)))

	star := core.FromEdges([]core.Edge{
		core.NewEdge(0, 1), core.NewEdge(0, 2), core.NewEdge(0, 3),
	})
	require.True(t, structure.IsTree(star))

	cyc := pathGraph(4)
	cyc.AddEdge(core.NewEdge(3, 0))
	require.False(t, structure.IsTree(cyc), "a cycle is not a tree")

	require.False(t, structure.IsTree(baseGraph()), "disconnected graph is not a tree")
}

func TestIsForest(t *testing.T) {
	require.True(t, structure.IsForest(core.New()))
	require.True(t, structure.IsForest(core.NewSized(4)), "edgeless graph is a forest")

	twoTrees := core.FromEdges([]core.Edge{
		core.NewEdge(0, 1), core.NewEdge(1, 2), // tree one
		core.NewEdge(5, 6), // tree two
	})
	require.True(t, structure.IsForest(twoTrees))

	require.False(t, structure.IsForest(baseGraph()), "the 0-1-2-3 square is a cycle component")
}

func TestIsChain(t *testing.T) {
	require.True(t, structure.IsChain(core.New()), "empty graph counts as a chain")
	require.True(t, structure.IsChain(core.NewSized(3)), "edgeless graph counts as a chain")

	ten := pathGraph(10)
	require.True(t, structure.IsChain(ten))

	ten.AddEdge(core.NewEdge(9, 0)) // close it into a ring
	require.False(t, structure.IsChain(ten))

	parallel := pathGraph(3)
	parallel.AddEdge(core.NewEdgeWithRoute(0, 1, &fakeRoute{span: 1}))
	require.False(t, structure.IsChain(parallel), "parallel shortcut disqualifies a chain")

	// Lollipop: tail 0-1 into triangle 1-2-3-1. Degree profile alone would
	// not reject it without the endpoint walk.
	lolli := core.FromEdges([]core.Edge{
		core.NewEdge(0, 1),
		core.NewEdge(1, 2), core.NewEdge(2, 3), core.NewEdge(3, 1),
	})
	require.False(t, structure.IsChain(lolli))

	// A path plus a detached ring shares the chain degree profile.
	split := pathGraph(3)
	split.AddEdge(core.NewEdge(10, 11))
	split.AddEdge(core.NewEdge(11, 12))
	split.AddEdge(core.NewEdge(12, 10))
	require.False(t, structure.IsChain(split))
}

func TestIsCycle(t *testing.T) {
	require.True(t, structure.IsCycle(core.New()), "empty graph counts as a cycle")
	require.False(t, structure.IsCycle(core.NewSized(1)))

	triangle := core.FromEdges([]core.Edge{
		core.NewEdge(0, 1), core.NewEdge(1, 2), core.NewEdge(2, 0),
	})
	require.True(t, structure.IsCycle(triangle))

	// Two vertices joined by two parallel edges satisfy the degree profile
	// but are not a cycle.
	twin := core.New()
	twin.AddEdge(core.NewEdge(0, 1))
	twin.AddEdge(core.NewEdgeWithRoute(0, 1, &fakeRoute{span: 2}))
	require.False(t, structure.IsCycle(twin))

	require.False(t, structure.IsCycle(pathGraph(4)), "a path is not a cycle")

	ring := pathGraph(4)
	ring.AddEdge(core.NewEdge(3, 0))
	require.True(t, structure.IsCycle(ring))

	ring.AddVertex(99)
	require.False(t, structure.IsCycle(ring), "stray vertex breaks connectivity")
}

func TestIsBridge(t *testing.T) {
	g := baseGraph()
	require.True(t, structure.IsBridge(g, core.NewEdge(8, 42)))
	require.False(t, structure.IsBridge(g, core.NewEdge(0, 1)), "square edges have an alternative")
	require.False(t, structure.IsBridge(g, core.NewEdge(5, 6)), "absent edge is never a bridge")

	// The probe must not mutate the graph.
	require.Equal(t, 5, g.Size())
	require.Equal(t, 6, g.Order())
}

func TestDegreeSequence(t *testing.T) {
	require.Equal(t, []int{2, 2, 2, 2, 1, 1}, structure.DegreeSequence(baseGraph()))
	require.Empty(t, structure.DegreeSequence(core.New()))
}

func TestSameDegreeSequence(t *testing.T) {
	square := core.FromEdges([]core.Edge{
		core.NewEdge(0, 1), core.NewEdge(1, 2), core.NewEdge(2, 3), core.NewEdge(3, 0),
	})
	shifted := core.FromEdges([]core.Edge{
		core.NewEdge(10, 11), core.NewEdge(11, 12), core.NewEdge(12, 13), core.NewEdge(13, 10),
	})
	require.True(t, structure.SameDegreeSequence(square, shifted))

	require.False(t, structure.SameDegreeSequence(square, pathGraph(4)),
		"edge counts differ: reject before comparing sequences")
	require.False(t, structure.SameDegreeSequence(square, pathGraph(5)),
		"vertex counts differ")

	star := core.FromEdges([]core.Edge{
		core.NewEdge(0, 1), core.NewEdge(0, 2), core.NewEdge(0, 3),
	})
	require.False(t, structure.SameDegreeSequence(star, pathGraph(4)),
		"same order and size, different degree profile")
}

func TestIsGraphicalSequence(t *testing.T) {
	require.True(t, structure.IsGraphicalSequence(nil))
	require.True(t, structure.IsGraphicalSequence([]int{0}))
	require.True(t, structure.IsGraphicalSequence([]int{0, 1, 2, 0}), "triangle walk")
	require.False(t, structure.IsGraphicalSequence([]int{0, 0}), "loop step")
	require.False(t, structure.IsGraphicalSequence([]int{0, 1, 0, 1}), "repeated pair")
	require.False(t, structure.IsGraphicalSequence([]int{0, 3}), "index out of range")
	require.False(t, structure.IsGraphicalSequence([]int{0, -1}), "negative index")
}
