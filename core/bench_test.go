package core_test

import (
	"testing"

	"github.com/katalvlaran/pathfind/core"
)

// BenchmarkDigraph_AddEdge measures building a chain edge by edge.
func BenchmarkDigraph_AddEdge(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := core.NewDigraph[int]()
		for v := 1; v < 1000; v++ {
			_ = g.AddEdge(v, v+1, 1)
		}
	}
}

// BenchmarkDigraph_Successors measures one full successor sweep of a
// high-degree vertex, including the per-call sort.
func BenchmarkDigraph_Successors(b *testing.B) {
	g := core.NewDigraph[int]()
	for v := 2; v <= 256; v++ {
		_ = g.AddEdge(1, v, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range g.Successors(1) {
		}
	}
}

// BenchmarkStores_WriteRead compares the two store layouts on the same
// write-then-read pattern.
func BenchmarkStores_WriteRead(b *testing.B) {
	const n = 1024

	b.Run("MapStore", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			st := core.NewMapStore[int](nil)
			for v := 1; v <= n; v++ {
				st.SetWeight(v, float64(v))
				_ = st.Weight(v)
			}
		}
	})

	b.Run("DenseStore", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			st, _ := core.NewDenseStore(n, nil)
			for v := 1; v <= n; v++ {
				st.SetWeight(v, float64(v))
				_ = st.Weight(v)
			}
		}
	})
}
