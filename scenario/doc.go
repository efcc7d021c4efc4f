// Package scenario loads grid pathfinding queries from HCL files.
//
// A scenario names a square grid, its walls, a start and a goal cell and an
// optional path capacity:
//
//	grid {
//	  size  = 5
//	  rows  = ["..#..", "..#..", ".....", ".###.", "....."]
//	  walls = [[4, 0], [size - 1, size - 2]]
//	}
//	start { row = 0  col = 0 }
//	goal  { row = 4  col = 4 }
//	max_len = size * size
//
// rows and walls are both optional and are merged; rows uses the gridgraph
// text alphabet. The variable size is available inside walls and max_len.
// max_len defaults to size².
package scenario
