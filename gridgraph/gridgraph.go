package gridgraph

import (
	"fmt"
	"strings"
)

// NeighborOffsets lists the (dRow, dCol) steps to the 4 orthogonal neighbors
// in the order every traversal in this module visits them: up, down, left, right.
// Ties between equal-length paths are broken by this order, so it must not change.
var NeighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Cell is a (row, column) coordinate on the grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats the cell as "row,col".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Grid is a square occupancy grid of Size×Size cells. It is never mutated by
// this package, so one Grid may be read by any number of goroutines.
type Grid struct {
	Size  int
	cells []int
}

// Area returns n², or false if n is non-positive or n² overflows int.
func Area(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	a := n * n
	if a/n != n {
		return 0, false
	}
	return a, true
}

// Wrap builds a Grid view over caller-owned flags without copying them.
// The caller must not modify blocked while the Grid is in use.
// Entries beyond n² are ignored.
// Complexity: O(1).
func Wrap(n int, blocked []int) (*Grid, error) {
	area, ok := Area(n)
	if !ok {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyGrid, n)
	}
	if len(blocked) < area {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrShortBlocked, len(blocked), area)
	}

	return &Grid{Size: n, cells: blocked[:area:area]}, nil
}

// New returns an n×n grid with every cell free.
func New(n int) (*Grid, error) {
	area, ok := Area(n)
	if !ok {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyGrid, n)
	}
	return &Grid{Size: n, cells: make([]int, area)}, nil
}

// FromRows deep-copies a square [][]int (values[row][col]) into a new Grid.
// Returns ErrEmptyGrid if values has no rows and ErrNonSquare if any row
// length differs from the number of rows.
// Complexity: O(n²) time and memory.
func FromRows(values [][]int) (*Grid, error) {
	n := len(values)
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]int, 0, n*n)
	for r, row := range values {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, r, len(row), n)
		}
		cells = append(cells, row...)
	}

	return &Grid{Size: n, cells: cells}, nil
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Size && col >= 0 && col < g.Size
}

// Index maps (row, col) to its row-major index row*Size + col.
func (g *Grid) Index(row, col int) int {
	return row*g.Size + col
}

// Coordinate converts a row-major index back to (row, col).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Size, idx % g.Size
}

// Len returns the number of cells, Size².
func (g *Grid) Len() int {
	return len(g.cells)
}

// Blocked reports whether the cell at idx is impassable.
func (g *Grid) Blocked(idx int) bool {
	return g.cells[idx] != 0
}

// BlockedAt reports whether (row, col) is impassable. Out-of-range
// coordinates count as blocked.
func (g *Grid) BlockedAt(row, col int) bool {
	if !g.InBounds(row, col) {
		return true
	}
	return g.cells[g.Index(row, col)] != 0
}

// Cells returns the row-major blocked flags backing the grid.
// The slice is shared; callers must treat it as read-only.
func (g *Grid) Cells() []int {
	return g.cells
}

// Walls counts blocked cells.
func (g *Grid) Walls() int {
	walls := 0
	for _, v := range g.cells {
		if v != 0 {
			walls++
		}
	}
	return walls
}

// String renders the grid with '#' for walls and '.' for free cells,
// one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Size)
	for i, v := range g.cells {
		if v != 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
		if (i+1)%g.Size == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
