package core_test

import (
	"fmt"

	"github.com/katalvlaran/routegraph/core"
)

// ExampleFromEdges builds a small network and inspects its shape.
func ExampleFromEdges() {
	g := core.FromEdges([]core.Edge{
		core.NewEdge(0, 1),
		core.NewEdge(0, 3),
		core.NewEdge(1, 2),
		core.NewEdge(2, 3),
		core.NewEdge(8, 42),
	})

	fmt.Println("order:", g.Order())
	fmt.Println("size:", g.Size())
	fmt.Println("adjacent 0-3:", g.AreAdjacent(0, 3))
	// Output:
	// order: 6
	// size: 5
	// adjacent 0-3: true
}
