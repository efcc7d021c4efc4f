package solver

import "github.com/katalvlaran/gridpath/gridgraph"

// link is a cell's entry in the parent relation. seen is set exactly once,
// at first discovery, and prev/depth never change afterwards.
type link struct {
	prev  int
	depth int
	seen  bool
}

// search encapsulates mutable BFS state for one call.
type search struct {
	grid  *gridgraph.Grid
	opts  Options
	start int
	goal  int
	links []link
	queue []int // queue[:head] is closed, queue[head:] is the frontier
	head  int
	found bool
}

// newSearch seeds the frontier with start. Endpoints must already be validated.
func newSearch(g *gridgraph.Grid, start, goal int, o Options) *search {
	s := &search{
		grid:  g,
		opts:  o,
		start: start,
		goal:  goal,
		links: make([]link, g.Len()),
		queue: make([]int, 0, g.Len()),
	}
	s.links[start] = link{prev: start, seen: true}
	s.enqueue(start, 0)

	return s
}

// enqueue appends idx to the frontier and calls OnEnqueue.
func (s *search) enqueue(idx, depth int) {
	s.queue = append(s.queue, idx)
	s.opts.OnEnqueue(idx, depth)
}

// done reports whether the goal was dequeued or the frontier is exhausted.
func (s *search) done() bool {
	return s.found || s.head >= len(s.queue)
}

// step dequeues the oldest frontier cell and expands it. Returns the
// dequeued index. Must not be called once done() is true.
func (s *search) step() int {
	cur := s.queue[s.head]
	s.head++
	depth := s.links[cur].depth
	s.opts.OnDequeue(cur, depth)

	if cur == s.goal {
		s.found = true
		return cur
	}

	row, col := s.grid.Coordinate(cur)
	for _, d := range gridgraph.NeighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !s.grid.InBounds(nr, nc) {
			continue
		}
		ni := s.grid.Index(nr, nc)
		if s.grid.Blocked(ni) || s.links[ni].seen {
			continue
		}
		s.links[ni] = link{prev: cur, depth: depth + 1, seen: true}
		s.enqueue(ni, depth+1)
	}
	return cur
}

// run steps until done and reports whether the goal was reached.
func (s *search) run() bool {
	for !s.done() {
		s.step()
	}
	return s.found
}

// pathLen returns the number of cells on the path to the goal,
// endpoints included. Valid only after the goal was found.
func (s *search) pathLen() int {
	return s.links[s.goal].depth + 1
}

// emit walks the parent relation back from the goal, writing the path into
// out[:pathLen()] so it reads start→goal. len(out) must be at least pathLen().
func (s *search) emit(out []int) {
	cur := s.goal
	for i := s.pathLen() - 1; i >= 0; i-- {
		out[i] = cur
		cur = s.links[cur].prev
	}
}
