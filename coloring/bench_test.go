package coloring_test

import (
	"testing"

	"github.com/katalvlaran/polysched/coloring"
)

// BenchmarkColorEdge_Dense60 colors a dense 60-participant network from scratch.
func BenchmarkColorEdge_Dense60(b *testing.B) {
	m := randomMatrix(42, 60, 0.5, 1000)
	edges := m.Edges()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cm := coloring.NewColorMap(m)
		for _, e := range edges {
			if err := coloring.ColorEdge(cm, e.I, e.J); err != nil {
				b.Fatal(err)
			}
		}
	}
}
