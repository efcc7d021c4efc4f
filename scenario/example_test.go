package scenario_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/scenario"
)

// ExampleLoad reads an HCL scenario and solves it.
func ExampleLoad() {
	sc, err := scenario.Load("testdata/corridor.hcl")
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := sc.Solve()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(sc.Grid)
	fmt.Println("cells:", res.Len(), "capacity:", sc.MaxLen)

	// Output:
	// ..#..
	// ..#..
	// .....
	// .###.
	// #..#.
	// cells: 9 capacity: 10
}
