package gridgraph

import (
	"fmt"
	"strings"
)

// Markers records the 'S' and 'G' cells found by ParseRows.
type Markers struct {
	Start, Goal       Cell
	HasStart, HasGoal bool
}

// ParseRows builds a Grid from text rows. '#' and 'X' mark walls,
// '.' and ' ' mark free cells, 'S' and 'G' mark free start and goal cells.
// Trailing '\r' is ignored so CRLF files parse cleanly.
// Returns ErrEmptyGrid, ErrNonSquare or ErrBadCell on malformed input.
// Complexity: O(n²).
func ParseRows(rows []string) (*Grid, Markers, error) {
	var mk Markers
	for len(rows) > 0 && strings.TrimSuffix(rows[len(rows)-1], "\r") == "" {
		rows = rows[:len(rows)-1]
	}
	n := len(rows)
	if n == 0 {
		return nil, mk, ErrEmptyGrid
	}

	cells := make([]int, n*n)
	for r, line := range rows {
		line = strings.TrimSuffix(line, "\r")
		if len(line) != n {
			return nil, mk, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, r, len(line), n)
		}
		for c := 0; c < n; c++ {
			switch ch := line[c]; ch {
			case '#', 'X':
				cells[r*n+c] = 1
			case '.', ' ':
			case 'S':
				mk.Start, mk.HasStart = Cell{Row: r, Col: c}, true
			case 'G':
				mk.Goal, mk.HasGoal = Cell{Row: r, Col: c}, true
			default:
				return nil, mk, fmt.Errorf("%w: %q at %d,%d", ErrBadCell, ch, r, c)
			}
		}
	}

	return &Grid{Size: n, cells: cells}, mk, nil
}
