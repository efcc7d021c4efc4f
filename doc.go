// Package gridpath computes shortest paths on square occupancy grids with
// breadth-first search.
//
// What is gridpath?
//
//	A small toolkit built around one pure computation:
//		• gridgraph/: n×n blocked-flag grids, neighbor order, regions, text mazes
//		• solver/   : BFS shortest path: flat Solve contract, Find with typed
//		               failures, and a Stepper for watching the frontier
//		• scenario/ : HCL scenario files (grid, walls, start, goal, max_len)
//		• cmd/gridpath: CLI: solve, components, serve
//
// Quick ASCII example (S start, G goal, # wall, * path):
//
//	S . .
//	* # .
//	* * G
//
// The center wall forces a 5-cell path; diagonal moves are never taken.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
