package solver_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/solver"
)

// ExampleSolve routes around a walled center cell. No diagonal shortcut
// exists, so the path has 5 cells rather than 3.
func ExampleSolve() {
	walls := []int{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}
	out := make([]int, 9)
	k := solver.Solve(3, 0, 0, 2, 2, walls, out, len(out))
	fmt.Println(k, out[:k])

	// Output:
	// 5 [0 3 6 7 8]
}

// ExampleFind distinguishes a missing path from a short buffer.
func ExampleFind() {
	walls := []int{
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	}
	start, goal := solver.Cell{Row: 0, Col: 0}, solver.Cell{Row: 2, Col: 2}

	_, err := solver.Find(3, start, goal, walls, 4)
	fmt.Println(errors.Is(err, solver.ErrBufferTooSmall), solver.Reason(err))

	res, _ := solver.Find(3, start, goal, walls, 0)
	fmt.Println(res.Cells())

	// Output:
	// true buffer_too_small
	// [0,0 1,0 2,0 2,1 2,2]
}
