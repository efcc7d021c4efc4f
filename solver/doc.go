// Package solver finds a shortest 4-directional path between two cells of a
// square occupancy grid using uninformed breadth-first search.
//
// What
//
//   - Solve: the flat integer contract. Writes the path (row-major cell
//     indices, start→goal inclusive) into a caller-owned buffer and returns
//     its length, or 0 on any failure.
//   - Find / FindOnGrid: the same search returning a *Result and a
//     distinguishable sentinel error.
//   - Stepper: drives the search one dequeued cell at a time, exposing the
//     frontier and closed sets after each step.
//   - Supports functional hooks in two stages:
//   - OnEnqueue (when a cell is first discovered)
//   - OnDequeue (when a cell leaves the frontier)
//
// Determinism
//
//	Neighbors are examined in the fixed order up, down, left, right and the
//	frontier is strictly FIFO. A cell's parent is set once, at first
//	discovery. Among several shortest paths the one returned is therefore
//	always the same, and repeated calls with identical input agree exactly.
//
// Concurrency
//
//	All scratch state (parent links and frontier) is allocated per call and
//	dropped on return. The blocked flags are only read, so one grid may be
//	shared by concurrent searches.
//
// Complexity (n = grid side)
//
//   - Time:   O(n²)
//   - Memory: O(n²) (parent links + frontier)
//
// Usage
//
//	out := make([]int, n*n)
//	if k := solver.Solve(n, 0, 0, n-1, n-1, walls, out, len(out)); k > 0 {
//	    path := out[:k]
//	}
//
//	res, err := solver.Find(n, solver.Cell{Row: 0, Col: 0}, solver.Cell{Row: 2, Col: 2}, walls, 0)
//	switch {
//	case errors.Is(err, solver.ErrUnreachable):
//	case errors.Is(err, solver.ErrBufferTooSmall):
//	}
//
// Errors
//
//   - ErrInvalidInput     non-positive size, short blocked slice, or an
//     endpoint outside [0, n).
//   - ErrBlockedEndpoint  start or goal is itself a wall.
//   - ErrUnreachable      the frontier emptied before the goal was dequeued.
//   - ErrBufferTooSmall   a path exists but is longer than maxLen.
//
// Solve collapses all four into a return value of 0.
package solver
