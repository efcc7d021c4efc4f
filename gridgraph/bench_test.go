package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkConnectedComponents measures ConnectedComponents on a 1000×1000
// grid with roughly 30% walls.
// Complexity: O(n²·4)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 1000
	rnd := rand.New(rand.NewSource(42))
	blocked := make([]int, n*n)
	for i := range blocked {
		if rnd.Intn(10) < 3 {
			blocked[i] = 1
		}
	}
	g, err := gridgraph.Wrap(n, blocked)
	if err != nil {
		b.Fatalf("setup Wrap failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}
