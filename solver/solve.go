package solver

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Solve finds a shortest path from (sr, sc) to (gr, gc) on the n×n grid
// whose walls are the nonzero entries of blocked (row-major).
//
// On success the path's cell indices, start→goal inclusive, are written to
// out[:k] and k ≥ 1 is returned. On any failure Solve returns 0 and the
// contents of out are unspecified: invalid size or coordinates, a blocked
// endpoint, an unreachable goal, or a path longer than the capacity.
// The capacity is min(maxLen, len(out)).
//
// Solve keeps no state between calls and only reads blocked.
// Complexity: O(n²) time and memory.
func Solve(n, sr, sc, gr, gc int, blocked, out []int, maxLen int) int {
	capacity := maxLen
	if len(out) < capacity {
		capacity = len(out)
	}
	g, err := gridgraph.Wrap(n, blocked)
	if err != nil {
		return 0
	}
	s, err := locate(g, Cell{Row: sr, Col: sc}, Cell{Row: gr, Col: gc}, DefaultOptions())
	if err != nil {
		return 0
	}
	k := s.pathLen()
	if k > capacity {
		return 0
	}
	s.emit(out)

	return k
}

// Find runs the same search as Solve but reports the cause of failure.
// maxLen > 0 caps the path length (ErrBufferTooSmall beyond it);
// maxLen <= 0 means no cap. Returns ErrInvalidInput, ErrBlockedEndpoint,
// ErrUnreachable or ErrBufferTooSmall, each wrapped with detail.
func Find(n int, start, goal Cell, blocked []int, maxLen int, opts ...Option) (*Result, error) {
	g, err := gridgraph.Wrap(n, blocked)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return FindOnGrid(g, start, goal, maxLen, opts...)
}

// FindOnGrid is Find over an existing Grid.
func FindOnGrid(g *gridgraph.Grid, start, goal Cell, maxLen int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", ErrInvalidInput)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s, err := locate(g, start, goal, o)
	if err != nil {
		return nil, err
	}
	k := s.pathLen()
	if maxLen > 0 && k > maxLen {
		return nil, fmt.Errorf("%w: path has %d cells, capacity %d", ErrBufferTooSmall, k, maxLen)
	}

	return s.result(), nil
}

// result packages a successful search.
func (s *search) result() *Result {
	path := make([]int, s.pathLen())
	s.emit(path)

	return &Result{
		Size:       s.grid.Size,
		Path:       path,
		Expanded:   s.head,
		Discovered: len(s.queue),
	}
}

// locate validates the endpoints and runs the search to completion.
// Returns the finished search only if the goal was reached.
func locate(g *gridgraph.Grid, start, goal Cell, o Options) (*search, error) {
	si, gi, err := endpoints(g, start, goal)
	if err != nil {
		return nil, err
	}
	s := newSearch(g, si, gi, o)
	if !s.run() {
		return nil, fmt.Errorf("%w: from %v to %v", ErrUnreachable, start, goal)
	}
	return s, nil
}

// endpoints checks both cells before any scratch state is allocated and
// returns their indices.
func endpoints(g *gridgraph.Grid, start, goal Cell) (si, gi int, err error) {
	if !g.InBounds(start.Row, start.Col) {
		return 0, 0, fmt.Errorf("%w: start %v outside [0,%d)", ErrInvalidInput, start, g.Size)
	}
	if !g.InBounds(goal.Row, goal.Col) {
		return 0, 0, fmt.Errorf("%w: goal %v outside [0,%d)", ErrInvalidInput, goal, g.Size)
	}
	si, gi = g.Index(start.Row, start.Col), g.Index(goal.Row, goal.Col)
	if g.Blocked(si) {
		return 0, 0, fmt.Errorf("%w: start %v", ErrBlockedEndpoint, start)
	}
	if g.Blocked(gi) {
		return 0, 0, fmt.Errorf("%w: goal %v", ErrBlockedEndpoint, goal)
	}
	return si, gi, nil
}
