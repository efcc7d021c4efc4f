package gridgraph

// ConnectedComponents finds all 4-connected regions of free cells.
// Returns a slice of components; each component lists cell indices
// (row-major) in discovery order, and components are ordered by their
// first cell in row-major scan.
//
// To convert an index back to (row, col), use Coordinate(idx).
//
// Time:   O(n²·4).
// Memory: O(n²) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, g.Len())
	var comps [][]int

	for i0 := range g.cells {
		if g.Blocked(i0) || seen[i0] {
			continue
		}
		comps = append(comps, g.flood(i0, seen))
	}
	return comps
}

// ComponentOf returns the region containing idx in BFS discovery order,
// starting with idx. A blocked or out-of-range index yields nil.
func (g *Grid) ComponentOf(idx int) []int {
	if idx < 0 || idx >= g.Len() || g.Blocked(idx) {
		return nil
	}
	return g.flood(idx, make([]bool, g.Len()))
}

// Connected reports whether free cells a and b lie in the same region.
// A blocked or out-of-range index is connected to nothing.
func (g *Grid) Connected(a, b int) bool {
	if b < 0 || b >= g.Len() || g.Blocked(b) {
		return false
	}
	for _, u := range g.ComponentOf(a) {
		if u == b {
			return true
		}
	}
	return false
}

// flood collects the region containing the free cell i0, marking seen.
func (g *Grid) flood(i0 int, seen []bool) []int {
	queue := []int{i0}
	seen[i0] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ur, uc := g.Coordinate(u)
		for _, d := range NeighborOffsets {
			vr, vc := ur+d[0], uc+d[1]
			if !g.InBounds(vr, vc) {
				continue
			}
			vi := g.Index(vr, vc)
			if g.Blocked(vi) || seen[vi] {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}
	return queue
}
