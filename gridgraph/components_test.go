package gridgraph_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// TestConnectedComponents_Simple tests ConnectedComponents on a 4×4 grid.
//
// Grid (# = wall, . = free):
//
//	. . # .
//	. # # .
//	# # . .
//	. # . .
//
// Expected: 3 regions of sizes 3, 6 and 1.
func TestConnectedComponents_Simple(t *testing.T) {
	g, _, err := gridgraph.ParseRows([]string{
		"..#.",
		".##.",
		"##..",
		".#..",
	})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}

	comps := g.ConnectedComponents()
	if len(comps) != 3 {
		t.Fatalf("got %d components; want 3", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1]), len(comps[2])}
	sort.Ints(sizes)
	if want := []int{1, 3, 6}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
	// first component is seeded at index 0 and discovered down before right
	if want := []int{0, 4, 1}; !reflect.DeepEqual(comps[0], want) {
		t.Errorf("comps[0] = %v; want %v", comps[0], want)
	}
}

// TestConnectedComponents_NoDiagonals checks that corner-touching cells stay apart.
func TestConnectedComponents_NoDiagonals(t *testing.T) {
	g, _, err := gridgraph.ParseRows([]string{
		".#",
		"#.",
	})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	if comps := g.ConnectedComponents(); len(comps) != 2 {
		t.Errorf("got %d components; want 2", len(comps))
	}
	if g.Connected(0, 3) {
		t.Error("Connected(0,3) = true across a diagonal")
	}
}

// TestConnectedComponents_AllWalls returns no regions.
func TestConnectedComponents_AllWalls(t *testing.T) {
	g, err := gridgraph.Wrap(2, []int{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}
	if comps := g.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("got %d components; want 0", len(comps))
	}
}

func TestConnected(t *testing.T) {
	g, _, err := gridgraph.ParseRows([]string{
		"...",
		"##.",
		"...",
	})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	cases := []struct {
		a, b int
		want bool
	}{
		{0, 6, true},
		{0, 0, true},
		{0, 3, false}, // wall
		{-1, 0, false},
		{0, 9, false},
	}
	for _, tc := range cases {
		if got := g.Connected(tc.a, tc.b); got != tc.want {
			t.Errorf("Connected(%d,%d) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestComponentOf checks discovery order from the queried cell and the
// empty result for walls and out-of-range indices.
func TestComponentOf(t *testing.T) {
	g, _, err := gridgraph.ParseRows([]string{
		"..#.",
		".##.",
		"##..",
		".#..",
	})
	if err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	cases := []struct {
		idx  int
		want []int
	}{
		{0, []int{0, 4, 1}},
		{12, []int{12}},
		{13, nil}, // wall
		{-1, nil},
		{16, nil},
	}
	for _, tc := range cases {
		if got := g.ComponentOf(tc.idx); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ComponentOf(%d) = %v; want %v", tc.idx, got, tc.want)
		}
	}

	right := g.ComponentOf(3)
	if len(right) != 6 || right[0] != 3 {
		t.Errorf("ComponentOf(3) = %v; want 6 cells starting at 3", right)
	}
}
