// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ConnectedComponents shows how a wall column splits a grid into
// two regions.
//
// Complexity: O(n²·4), Memory: O(n²)
func ExampleGrid_ConnectedComponents() {
	g, _, _ := gridgraph.ParseRows([]string{
		".#.",
		".#.",
		".#.",
	})

	comps := g.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			r, c := g.Coordinate(idx)
			fmt.Printf(" (%d,%d)", r, c)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (0,0) (1,0) (2,0)
	// component 1: (0,2) (1,2) (2,2)
}

// ExampleWrap wraps caller-owned flags without copying.
func ExampleWrap() {
	blocked := []int{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}
	g, _ := gridgraph.Wrap(3, blocked)
	fmt.Print(g)
	fmt.Println("walls:", g.Walls())

	// Output:
	// ...
	// .#.
	// ...
	// walls: 1
}
