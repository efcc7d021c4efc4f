// Package render draws grids, search overlays and paths as text or JSON.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/solver"
)

// Cell glyphs, highest precedence first.
const (
	GlyphStart    = 'S'
	GlyphGoal     = 'G'
	GlyphWall     = '#'
	GlyphPath     = '*'
	GlyphFrontier = 'o'
	GlyphClosed   = 'x'
	GlyphFree     = '.'
)

// Scene is a grid with its query endpoints and optional overlays.
type Scene struct {
	Grid     *gridgraph.Grid
	Start    solver.Cell
	Goal     solver.Cell
	Path     []int
	Frontier []int
	Closed   []int
}

// WithSnapshot returns a copy of sc overlaid with a Stepper snapshot.
func (sc Scene) WithSnapshot(snap solver.Snapshot) Scene {
	sc.Frontier = snap.Frontier
	sc.Closed = snap.Closed
	sc.Path = snap.Path
	return sc
}

// glyphs lays out one byte per cell in row-major order.
func (sc Scene) glyphs() []byte {
	g := sc.Grid
	out := make([]byte, g.Len())
	for i := range out {
		if g.Blocked(i) {
			out[i] = GlyphWall
		} else {
			out[i] = GlyphFree
		}
	}
	paint := func(cells []int, ch byte) {
		for _, idx := range cells {
			if idx >= 0 && idx < len(out) && out[idx] != GlyphWall {
				out[idx] = ch
			}
		}
	}
	paint(sc.Closed, GlyphClosed)
	paint(sc.Frontier, GlyphFrontier)
	paint(sc.Path, GlyphPath)
	if g.InBounds(sc.Start.Row, sc.Start.Col) {
		out[g.Index(sc.Start.Row, sc.Start.Col)] = GlyphStart
	}
	if g.InBounds(sc.Goal.Row, sc.Goal.Col) {
		out[g.Index(sc.Goal.Row, sc.Goal.Col)] = GlyphGoal
	}
	return out
}

// Text writes the scene as n lines of n glyphs.
func Text(w io.Writer, sc Scene) error {
	n := sc.Grid.Size
	cells := sc.glyphs()
	var sb strings.Builder
	sb.Grow(len(cells) + n)
	for r := 0; r < n; r++ {
		sb.Write(cells[r*n : (r+1)*n])
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Status formats the one-line summary shown under a rendered grid.
func Status(sc Scene, extra string) string {
	s := fmt.Sprintf("Start=(%d,%d)  Goal=(%d,%d)  Walls=%d",
		sc.Start.Row, sc.Start.Col, sc.Goal.Row, sc.Goal.Col, sc.Grid.Walls())
	if extra != "" {
		s += "  |  " + extra
	}
	return s
}
